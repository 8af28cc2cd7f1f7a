package usecase

import (
	"context"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/ports"
)

type DeploymentFrequencyUseCase struct {
	source ports.MetricsSourcePort
	plan   *Planner
}

func NewDeploymentFrequencyUseCase(source ports.MetricsSourcePort, plan *Planner) *DeploymentFrequencyUseCase {
	return &DeploymentFrequencyUseCase{source: source, plan: plan}
}

// Execute computes the deployment-frequency series and summary. The
// average divides by the number of distinct days that actually have
// data, not by the calendar span of the window.
func (uc *DeploymentFrequencyUseCase) Execute(ctx context.Context, in MetricsQueryInput) (*domain.DeploymentFrequencyResult, error) {
	p, err := uc.plan.plan(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.executeWithPlan(ctx, p)
}

func (uc *DeploymentFrequencyUseCase) executeWithPlan(ctx context.Context, p queryPlan) (*domain.DeploymentFrequencyResult, error) {
	rows, err := uc.source.QueryDeploymentFrequency(ctx, p.filter)
	if err != nil {
		return nil, &DataSourceError{Metric: "deployment_frequency", Err: err}
	}
	if rows == nil {
		rows = []domain.DeploymentRow{}
	}

	var total int64
	days := make(map[string]struct{}, len(rows))
	dates := make([]time.Time, 0, len(rows))

	for _, r := range rows {
		total += r.DeploymentCount
		days[r.Date.UTC().Format("2006-01-02")] = struct{}{}
		dates = append(dates, r.Date)
	}

	var average float64
	if len(days) > 0 {
		average = round2(float64(total) / float64(len(days)))
	}

	return &domain.DeploymentFrequencyResult{
		Days: rows,
		Summary: domain.DeploymentFrequencySummary{
			TotalDeployments: total,
			AveragePerDay:    average,
			DateRange:        effectiveRange(p.resolved, dates, p.now),
			FiltersApplied:   p.applied,
		},
	}, nil
}
