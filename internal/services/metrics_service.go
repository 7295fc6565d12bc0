package services

import "context"

type MatchingMetrics struct {
	AverageScore     float64 `json:"average_score"`
	CacheHitRate     float64 `json:"cache_hit_rate"`
	AverageLatencyMS float64 `json:"average_latency_ms"`
	TotalMatches     int64   `json:"total_matches"`
}

// MetricsService reports matching performance. Nothing is collected yet, so
// every figure is zero.
type MetricsService interface {
	Matching(ctx context.Context) (*MatchingMetrics, error)
}

type metricsService struct{}

func NewMetricsService() MetricsService { return metricsService{} }

func (metricsService) Matching(context.Context) (*MatchingMetrics, error) {
	return &MatchingMetrics{}, nil
}
