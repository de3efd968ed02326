package service

import (
	"sort"

	"traffic-dashboard/internal/model"
)

// AggregateDetections sums raw detection events into per-category counters.
// Total counts every event received, unrecognized classes included, while the
// per-category map only accumulates recognized ones. The asymmetry matches
// what the category cards display and is intentional.
func AggregateDetections(events []model.DetectionEvent) model.Metrics {
	perCategory := model.NewAggregateCounts()
	for _, event := range events {
		if category := model.Categorize(event.Class); category != model.CategoryUnknown {
			perCategory[category]++
		}
	}
	return model.Metrics{PerCategory: perCategory, Total: int64(len(events))}
}

// AggregateBuckets re-sums pre-bucketed counts over the whole window. Buckets
// carry no unknown column, so here Total equals the sum of the category sums.
func AggregateBuckets(buckets []model.CountBucket) model.Metrics {
	perCategory := model.NewAggregateCounts()
	var total int64
	for _, bucket := range buckets {
		for _, category := range model.Categories {
			count := bucket.Counts[category]
			perCategory[category] += count
			total += count
		}
	}
	return model.Metrics{PerCategory: perCategory, Total: total}
}

// BuildSeries reshapes buckets into chart points sorted ascending by bucket
// start. The sort is stable so ties keep their fetch order; no aggregation
// happens across buckets.
func BuildSeries(buckets []model.CountBucket) []model.TimeSeriesPoint {
	ordered := make([]model.CountBucket, len(buckets))
	copy(ordered, buckets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].BucketStart.Before(ordered[j].BucketStart)
	})

	points := make([]model.TimeSeriesPoint, 0, len(ordered))
	for _, bucket := range ordered {
		counts := model.NewAggregateCounts()
		for _, category := range model.Categories {
			counts[category] = bucket.Counts[category]
		}
		points = append(points, model.TimeSeriesPoint{
			Label:       bucket.BucketStart.Format("15:04"),
			BucketStart: bucket.BucketStart,
			Counts:      counts,
		})
	}
	return points
}
