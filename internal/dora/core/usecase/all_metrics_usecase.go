package usecase

import (
	"context"

	"dora-metrics-service/internal/dora/core/domain"

	"golang.org/x/sync/errgroup"
)

type GetAllMetricsUseCase struct {
	plan      *Planner
	frequency *DeploymentFrequencyUseCase
	failures  *ChangeFailureRateUseCase
	leadTime  *LeadTimeUseCase
	restore   *TimeToRestoreUseCase
}

func NewGetAllMetricsUseCase(
	plan *Planner,
	frequency *DeploymentFrequencyUseCase,
	failures *ChangeFailureRateUseCase,
	leadTime *LeadTimeUseCase,
	restore *TimeToRestoreUseCase,
) *GetAllMetricsUseCase {
	return &GetAllMetricsUseCase{
		plan:      plan,
		frequency: frequency,
		failures:  failures,
		leadTime:  leadTime,
		restore:   restore,
	}
}

// Execute plans the query once and runs the four metric computations
// concurrently against that single plan, so every branch sees the same
// filter selection, cascade outcome and reference instant. All or
// nothing: the first failure cancels the remaining branches and fails
// the whole call. A dashboard silently missing one metric is worse than
// an explicit error.
func (uc *GetAllMetricsUseCase) Execute(ctx context.Context, in MetricsQueryInput) (*domain.AllMetricsResult, error) {
	p, err := uc.plan.plan(ctx, in)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	var out domain.AllMetricsResult

	g.Go(func() error {
		res, err := uc.frequency.executeWithPlan(ctx, p)
		if err != nil {
			return err
		}
		out.DeploymentFrequency = *res
		return nil
	})
	g.Go(func() error {
		res, err := uc.failures.executeWithPlan(ctx, p)
		if err != nil {
			return err
		}
		out.ChangeFailureRate = *res
		return nil
	})
	g.Go(func() error {
		res, err := uc.leadTime.executeWithPlan(ctx, p)
		if err != nil {
			return err
		}
		out.LeadTime = *res
		return nil
	})
	g.Go(func() error {
		res, err := uc.restore.executeWithPlan(ctx, p)
		if err != nil {
			return err
		}
		out.TimeToRestore = *res
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}
