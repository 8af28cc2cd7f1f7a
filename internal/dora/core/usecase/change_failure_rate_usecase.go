package usecase

import (
	"context"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/ports"
)

type ChangeFailureRateUseCase struct {
	source ports.MetricsSourcePort
	plan   *Planner
}

func NewChangeFailureRateUseCase(source ports.MetricsSourcePort, plan *Planner) *ChangeFailureRateUseCase {
	return &ChangeFailureRateUseCase{source: source, plan: plan}
}

// Execute computes the change-failure-rate series and summary. The
// overall rate is the ratio of summed failures to summed deployments;
// per-day rates are rounded independently for display and never averaged
// into the aggregate.
func (uc *ChangeFailureRateUseCase) Execute(ctx context.Context, in MetricsQueryInput) (*domain.ChangeFailureRateResult, error) {
	p, err := uc.plan.plan(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.executeWithPlan(ctx, p)
}

func (uc *ChangeFailureRateUseCase) executeWithPlan(ctx context.Context, p queryPlan) (*domain.ChangeFailureRateResult, error) {
	rows, err := uc.source.QueryChangeFailureRate(ctx, p.filter)
	if err != nil {
		return nil, &DataSourceError{Metric: "change_failure_rate", Err: err}
	}
	if rows == nil {
		rows = []domain.FailureRow{}
	}

	var totalDeployments, totalFailed int64
	dates := make([]time.Time, 0, len(rows))

	for i, r := range rows {
		totalDeployments += r.TotalDeployments
		totalFailed += r.FailedDeployments
		rows[i].FailureRatePercent = ratePercent(r.FailedDeployments, r.TotalDeployments)
		dates = append(dates, r.Date)
	}

	return &domain.ChangeFailureRateResult{
		Days: rows,
		Summary: domain.ChangeFailureRateSummary{
			TotalDeployments:   totalDeployments,
			FailedDeployments:  totalFailed,
			OverallRatePercent: ratePercent(totalFailed, totalDeployments),
			DateRange:          effectiveRange(p.resolved, dates, p.now),
			FiltersApplied:     p.applied,
		},
	}, nil
}
