package analytics

import "context"

// AnalyticsService computes the dashboard summary from the live record set.
// Every call recomputes from a fresh snapshot; there is no caching.
type AnalyticsService interface {
	GetSummary(ctx context.Context) (*SummaryResponse, error)
}
