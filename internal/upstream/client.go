// Package upstream is the read-only HTTP client for the remote traffic
// service that produces cameras, pre-bucketed counts and raw detections.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"traffic-dashboard/internal/model"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type cameraRow struct {
	CameraID int    `json:"camera_id"`
	Name     string `json:"name"`
}

// countRow mirrors one element of the /counts response, which carries the
// five category columns flat rather than nested.
type countRow struct {
	StartTS          time.Time `json:"start_ts"`
	MotorcycleTukTuk int64     `json:"motorcycle_tuk_tuk"`
	SedanPickupSuv   int64     `json:"sedan_pickup_suv"`
	Van              int64     `json:"van"`
	MinibusBus       int64     `json:"minibus_bus"`
	TruckTrailer     int64     `json:"truck6_truck10_trailer"`
}

type detectionRow struct {
	TS           time.Time `json:"ts"`
	VehicleClass string    `json:"vehicle_class"`
	Conf         *float64  `json:"conf"`
	Direction    string    `json:"direction"`
}

func (c *Client) Cameras(ctx context.Context) ([]model.Camera, error) {
	var rows []cameraRow
	if err := c.getJSON(ctx, "/cameras", nil, &rows); err != nil {
		return nil, err
	}

	cameras := make([]model.Camera, 0, len(rows))
	for _, row := range rows {
		cameras = append(cameras, model.Camera{ID: row.CameraID, Name: row.Name})
	}
	return cameras, nil
}

func (c *Client) Counts(ctx context.Context, window model.TimeWindow, cameraID *int) ([]model.CountBucket, error) {
	query := windowQuery(window, cameraID)

	var rows []countRow
	if err := c.getJSON(ctx, "/counts", query, &rows); err != nil {
		return nil, err
	}

	buckets := make([]model.CountBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, model.CountBucket{
			BucketStart: row.StartTS,
			Counts: model.AggregateCounts{
				model.CategoryMotorcycleTukTuk: row.MotorcycleTukTuk,
				model.CategorySedanPickupSuv:   row.SedanPickupSuv,
				model.CategoryVan:              row.Van,
				model.CategoryMinibusBus:       row.MinibusBus,
				model.CategoryTruckTrailer:     row.TruckTrailer,
			},
		})
	}
	return buckets, nil
}

func (c *Client) Detections(ctx context.Context, window model.TimeWindow, cameraID *int, limit int) ([]model.DetectionEvent, error) {
	query := windowQuery(window, cameraID)
	query.Set("limit", strconv.Itoa(limit))

	var rows []detectionRow
	if err := c.getJSON(ctx, "/detections", query, &rows); err != nil {
		return nil, err
	}

	events := make([]model.DetectionEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, model.DetectionEvent{
			Timestamp:  row.TS,
			Class:      row.VehicleClass,
			Confidence: row.Conf,
			Direction:  row.Direction,
		})
	}
	return events, nil
}

func windowQuery(window model.TimeWindow, cameraID *int) url.Values {
	query := url.Values{}
	// RFC3339Nano keeps the .999 millisecond on end-of-day windows.
	query.Set("from_time", window.From.Format(time.RFC3339Nano))
	query.Set("to_time", window.To.Format(time.RFC3339Nano))
	if cameraID != nil {
		query.Set("camera_id", strconv.Itoa(*cameraID))
	}
	return query
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("upstream returned non-200")
		return fmt.Errorf("request %s: upstream returned %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
