package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"traffic-dashboard/internal/model"
)

// Fetcher is the read-only upstream traffic service. Implementations must
// already scope results to the given window and camera.
type Fetcher interface {
	Cameras(ctx context.Context) ([]model.Camera, error)
	Counts(ctx context.Context, window model.TimeWindow, cameraID *int) ([]model.CountBucket, error)
	Detections(ctx context.Context, window model.TimeWindow, cameraID *int, limit int) ([]model.DetectionEvent, error)
}

type TrafficService struct {
	upstream       Fetcher
	detectionLimit int
	log            zerolog.Logger
}

func NewTrafficService(upstream Fetcher, detectionLimit int, log zerolog.Logger) *TrafficService {
	return &TrafficService{
		upstream:       upstream,
		detectionLimit: detectionLimit,
		log:            log,
	}
}

// Resolve runs one full resolution cycle: window from the selection and the
// supplied now, then counts plus (in live mode) detections, then aggregation
// and the chart series. Upstream failures degrade to empty data and a single
// human-readable error on the snapshot; only a malformed selection aborts.
func (s *TrafficService) Resolve(ctx context.Context, sel model.Selection, now time.Time) (model.Snapshot, error) {
	window, err := ResolveWindow(sel, now)
	if err != nil {
		return model.Snapshot{}, err
	}

	snapshot := model.Snapshot{
		Selection:   sel,
		Window:      window,
		GeneratedAt: now,
	}

	buckets, err := s.upstream.Counts(ctx, window, sel.CameraID)
	if err != nil {
		s.log.Error().Err(err).Time("from", window.From).Time("to", window.To).Msg("counts fetch failed")
		snapshot.LastError = fmt.Sprintf("counts fetch failed: %v", err)
		buckets = nil
	}
	snapshot.Series = BuildSeries(buckets)

	if sel.IsLive() {
		events, err := s.upstream.Detections(ctx, window, sel.CameraID, s.detectionLimit)
		if err != nil {
			s.log.Error().Err(err).Time("from", window.From).Time("to", window.To).Msg("detections fetch failed")
			snapshot.LastError = fmt.Sprintf("detections fetch failed: %v", err)
			events = nil
		}
		snapshot.Metrics = AggregateDetections(events)
	} else {
		snapshot.Metrics = AggregateBuckets(buckets)
	}

	return snapshot, nil
}

// ListCameras proxies the upstream camera inventory.
func (s *TrafficService) ListCameras(ctx context.Context) ([]model.Camera, error) {
	cameras, err := s.upstream.Cameras(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("cameras fetch failed")
		return nil, err
	}
	return cameras, nil
}
