package usecase

import (
	"context"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/ports"
)

type LeadTimeUseCase struct {
	source ports.MetricsSourcePort
	plan   *Planner
}

func NewLeadTimeUseCase(source ports.MetricsSourcePort, plan *Planner) *LeadTimeUseCase {
	return &LeadTimeUseCase{source: source, plan: plan}
}

// Execute computes the lead-time-for-changes series and summary. Only
// day-level medians are available here, so the overall figure is the
// change-count-weighted mean of those medians; high-volume days weigh
// more than quiet ones.
func (uc *LeadTimeUseCase) Execute(ctx context.Context, in MetricsQueryInput) (*domain.LeadTimeResult, error) {
	p, err := uc.plan.plan(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.executeWithPlan(ctx, p)
}

func (uc *LeadTimeUseCase) executeWithPlan(ctx context.Context, p queryPlan) (*domain.LeadTimeResult, error) {
	rows, err := uc.source.QueryLeadTime(ctx, p.filter)
	if err != nil {
		return nil, &DataSourceError{Metric: "lead_time", Err: err}
	}
	if rows == nil {
		rows = []domain.LeadTimeRow{}
	}

	var totalChanges int64
	medians := make([]float64, 0, len(rows))
	weights := make([]int64, 0, len(rows))
	dates := make([]time.Time, 0, len(rows))

	for _, r := range rows {
		totalChanges += r.ChangeCount
		medians = append(medians, r.MedianLeadTimeHours)
		weights = append(weights, r.ChangeCount)
		dates = append(dates, r.Date)
	}

	return &domain.LeadTimeResult{
		Days: rows,
		Summary: domain.LeadTimeSummary{
			TotalChanges:       totalChanges,
			OverallMedianHours: weightedMean(medians, weights),
			DateRange:          effectiveRange(p.resolved, dates, p.now),
			FiltersApplied:     p.applied,
		},
	}, nil
}
