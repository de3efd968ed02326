package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-dashboard/internal/model"
)

func testWindow() model.TimeWindow {
	return model.TimeWindow{
		From: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zerolog.Nop())
}

func TestCameras(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cameras", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"camera_id":1,"name":"north gate"},{"camera_id":2,"name":"market junction"}]`))
	})

	cameras, err := client.Cameras(context.Background())
	require.NoError(t, err)
	require.Len(t, cameras, 2)
	assert.Equal(t, model.Camera{ID: 1, Name: "north gate"}, cameras[0])
}

func TestCountsQueryAndDecode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/counts", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "2024-01-01T11:00:00Z", query.Get("from_time"))
		assert.Equal(t, "2024-01-01T12:00:00Z", query.Get("to_time"))
		assert.Equal(t, "3", query.Get("camera_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"start_ts":"2024-01-01T11:15:00Z","motorcycle_tuk_tuk":2,"sedan_pickup_suv":5,"van":0,"minibus_bus":1,"truck6_truck10_trailer":3}]`))
	})

	camera := 3
	buckets, err := client.Counts(context.Background(), testWindow(), &camera)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	assert.Equal(t, time.Date(2024, 1, 1, 11, 15, 0, 0, time.UTC), buckets[0].BucketStart)
	assert.Equal(t, int64(2), buckets[0].Counts[model.CategoryMotorcycleTukTuk])
	assert.Equal(t, int64(5), buckets[0].Counts[model.CategorySedanPickupSuv])
	assert.Equal(t, int64(3), buckets[0].Counts[model.CategoryTruckTrailer])
}

func TestCountsOmitsCameraWhenUnset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["camera_id"]
		assert.False(t, present)
		w.Write([]byte(`[]`))
	})

	buckets, err := client.Counts(context.Background(), testWindow(), nil)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestEndOfDayWindowKeepsMilliseconds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01T23:59:59.999Z", r.URL.Query().Get("to_time"))
		w.Write([]byte(`[]`))
	})

	window := model.TimeWindow{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC),
	}
	_, err := client.Counts(context.Background(), window, nil)
	require.NoError(t, err)
}

func TestDetections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detections", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"ts":"2024-01-01T11:30:00Z","vehicle_class":"tuk-tuk","conf":0.92,"direction":"inbound"}]`))
	})

	events, err := client.Detections(context.Background(), testWindow(), nil, 500)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "tuk-tuk", events[0].Class)
	assert.Equal(t, "inbound", events[0].Direction)
	require.NotNil(t, events[0].Confidence)
	assert.InDelta(t, 0.92, *events[0].Confidence, 1e-9)
}

func TestNon200IsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Counts(context.Background(), testWindow(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestConnectionErrorIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, zerolog.Nop())
	_, err := client.Cameras(context.Background())
	assert.Error(t, err)
}
