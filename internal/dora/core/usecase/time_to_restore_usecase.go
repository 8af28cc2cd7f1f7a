package usecase

import (
	"context"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/ports"
)

type TimeToRestoreUseCase struct {
	source ports.MetricsSourcePort
	plan   *Planner
}

func NewTimeToRestoreUseCase(source ports.MetricsSourcePort, plan *Planner) *TimeToRestoreUseCase {
	return &TimeToRestoreUseCase{source: source, plan: plan}
}

// Execute computes the time-to-restore series and summary, weighting
// each day's median by its incident count, same rule as lead time.
func (uc *TimeToRestoreUseCase) Execute(ctx context.Context, in MetricsQueryInput) (*domain.TimeToRestoreResult, error) {
	p, err := uc.plan.plan(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.executeWithPlan(ctx, p)
}

func (uc *TimeToRestoreUseCase) executeWithPlan(ctx context.Context, p queryPlan) (*domain.TimeToRestoreResult, error) {
	rows, err := uc.source.QueryTimeToRestore(ctx, p.filter)
	if err != nil {
		return nil, &DataSourceError{Metric: "time_to_restore", Err: err}
	}
	if rows == nil {
		rows = []domain.RestoreRow{}
	}

	var totalIncidents int64
	medians := make([]float64, 0, len(rows))
	weights := make([]int64, 0, len(rows))
	dates := make([]time.Time, 0, len(rows))

	for _, r := range rows {
		totalIncidents += r.IncidentCount
		medians = append(medians, r.MedianHoursToRestore)
		weights = append(weights, r.IncidentCount)
		dates = append(dates, r.Date)
	}

	return &domain.TimeToRestoreResult{
		Days: rows,
		Summary: domain.TimeToRestoreSummary{
			TotalIncidents:     totalIncidents,
			OverallMedianHours: weightedMean(medians, weights),
			DateRange:          effectiveRange(p.resolved, dates, p.now),
			FiltersApplied:     p.applied,
		},
	}, nil
}
