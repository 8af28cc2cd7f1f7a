package ports

import (
	"context"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
)

type MetricsFilter struct {
	Organization string

	// Empty slices mean unrestricted.
	Projects     []string
	Applications []string
	Environments []string

	// Nil bounds mean unbounded; the caller infers the effective window
	// from the rows that come back.
	From *time.Time
	To   *time.Time
}

// MetricsSourcePort is the warehouse. Rows are day-bucketed (UTC) and
// ordered by date ascending.
type MetricsSourcePort interface {
	QueryDeploymentFrequency(ctx context.Context, f MetricsFilter) ([]domain.DeploymentRow, error)
	QueryChangeFailureRate(ctx context.Context, f MetricsFilter) ([]domain.FailureRow, error)
	QueryLeadTime(ctx context.Context, f MetricsFilter) ([]domain.LeadTimeRow, error)
	QueryTimeToRestore(ctx context.Context, f MetricsFilter) ([]domain.RestoreRow, error)
}
