package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/ports"
	"dora-metrics-service/internal/dora/core/usecase"
	filtersdomain "dora-metrics-service/internal/filters/core/domain"
	filtersusecase "dora-metrics-service/internal/filters/core/usecase"

	"go.uber.org/zap"
)

func newComposedUseCase(source ports.MetricsSourcePort, plan *usecase.Planner) *usecase.GetAllMetricsUseCase {
	return usecase.NewGetAllMetricsUseCase(
		plan,
		usecase.NewDeploymentFrequencyUseCase(source, plan),
		usecase.NewChangeFailureRateUseCase(source, plan),
		usecase.NewLeadTimeUseCase(source, plan),
		usecase.NewTimeToRestoreUseCase(source, plan),
	)
}

func newAllMetricsUseCase(source ports.MetricsSourcePort) *usecase.GetAllMetricsUseCase {
	return newComposedUseCase(source, usecase.NewPlanner(nil))
}

// ------------------------------------------------------------
// ALL FOUR METRICS COMPOSED
// ------------------------------------------------------------

func TestGetAllMetrics_Success(t *testing.T) {
	source := &fakeMetricsSource{
		DeployFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.DeploymentRow, error) {
			return []domain.DeploymentRow{{Date: day(t, "2024-01-15"), DeploymentCount: 5}}, nil
		},
		FailureFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.FailureRow, error) {
			return []domain.FailureRow{{Date: day(t, "2024-01-15"), TotalDeployments: 5, FailedDeployments: 1}}, nil
		},
		LeadFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.LeadTimeRow, error) {
			return []domain.LeadTimeRow{{Date: day(t, "2024-01-15"), MedianLeadTimeHours: 6, ChangeCount: 5}}, nil
		},
		RestoreFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.RestoreRow, error) {
			return []domain.RestoreRow{{Date: day(t, "2024-01-15"), MedianHoursToRestore: 1.5, IncidentCount: 2}}, nil
		},
	}

	uc := newAllMetricsUseCase(source)

	out, err := uc.Execute(context.Background(), orgQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DeploymentFrequency.Summary.TotalDeployments != 5 {
		t.Fatalf("unexpected deployment summary: %+v", out.DeploymentFrequency.Summary)
	}
	if out.ChangeFailureRate.Summary.OverallRatePercent != 20.0 {
		t.Fatalf("unexpected failure rate: %+v", out.ChangeFailureRate.Summary)
	}
	if out.LeadTime.Summary.OverallMedianHours != 6.0 {
		t.Fatalf("unexpected lead time: %+v", out.LeadTime.Summary)
	}
	if out.TimeToRestore.Summary.OverallMedianHours != 1.5 {
		t.Fatalf("unexpected restore time: %+v", out.TimeToRestore.Summary)
	}
}

// ------------------------------------------------------------
// ALL OR NOTHING
// ------------------------------------------------------------

func TestGetAllMetrics_OneBranchFailsAll(t *testing.T) {
	source := &fakeMetricsSource{
		FailureFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.FailureRow, error) {
			return nil, errors.New("warehouse timeout")
		},
	}

	uc := newAllMetricsUseCase(source)

	out, err := uc.Execute(context.Background(), orgQuery())
	if err == nil {
		t.Fatalf("expected error when one branch fails")
	}
	if out != nil {
		t.Fatalf("expected no partial results, got %+v", out)
	}

	var dsErr *usecase.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
	if dsErr.Metric != "change_failure_rate" {
		t.Fatalf("expected failing metric name, got %q", dsErr.Metric)
	}
}

// ------------------------------------------------------------
// VALIDATION FAILS THE WHOLE COMPOSITION
// ------------------------------------------------------------

func TestGetAllMetrics_InvalidQuery(t *testing.T) {
	source := &fakeMetricsSource{}
	uc := newAllMetricsUseCase(source)

	out, err := uc.Execute(context.Background(), usecase.MetricsQueryInput{})
	if !errors.Is(err, usecase.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}

// ------------------------------------------------------------
// ONE PLAN SHARED BY ALL FOUR BRANCHES
// ------------------------------------------------------------

func TestGetAllMetrics_SingleSharedPlan(t *testing.T) {
	// The first, narrowed lookup fails; the fallback succeeds. Planning
	// once means the cascade is resolved once and every branch queries
	// under the same application scope, flake or not.
	var lookups int
	options := &fakeFilterOptions{
		Fn: func(ctx context.Context, organization string, projects []string) ([]string, error) {
			lookups++
			if lookups == 1 {
				return nil, errors.New("options store flaked")
			}
			return []string{"app-a", "app-b", "app-c"}, nil
		},
	}
	cascade := filtersusecase.NewCascadeApplicationsUseCase(options, zap.NewNop())

	at := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	plan := usecase.NewPlannerAt(cascade, func() time.Time { return at })

	var deployScope, failScope, leadScope, restoreScope []string
	source := &fakeMetricsSource{
		DeployFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.DeploymentRow, error) {
			deployScope = f.Applications
			return nil, nil
		},
		FailureFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.FailureRow, error) {
			failScope = f.Applications
			return nil, nil
		},
		LeadFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.LeadTimeRow, error) {
			leadScope = f.Applications
			return nil, nil
		},
		RestoreFn: func(ctx context.Context, f ports.MetricsFilter) ([]domain.RestoreRow, error) {
			restoreScope = f.Applications
			return nil, nil
		},
	}

	uc := newComposedUseCase(source, plan)

	out, err := uc.Execute(context.Background(), usecase.MetricsQueryInput{
		Organization: "acme",
		TimeRange:    "30d",
		Projects:     filtersdomain.Scalar("checkout"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One cascade resolution: the narrowed attempt plus its fallback.
	if lookups != 2 {
		t.Fatalf("expected 2 option lookups for one composed call, got %d", lookups)
	}

	want := []string{"app-a", "app-b", "app-c"}
	for name, scope := range map[string][]string{
		"deployment_frequency": deployScope,
		"change_failure_rate":  failScope,
		"lead_time":            leadScope,
		"time_to_restore":      restoreScope,
	} {
		if !reflect.DeepEqual(scope, want) {
			t.Fatalf("%s queried under scope %v, want %v", name, scope, want)
		}
	}

	// A single reference instant: every branch echoes the same window.
	wantRange := filtersdomain.DateRange{Start: at.Add(-30 * 24 * time.Hour), End: at}
	for name, got := range map[string]filtersdomain.DateRange{
		"deployment_frequency": out.DeploymentFrequency.Summary.DateRange,
		"change_failure_rate":  out.ChangeFailureRate.Summary.DateRange,
		"lead_time":            out.LeadTime.Summary.DateRange,
		"time_to_restore":      out.TimeToRestore.Summary.DateRange,
	} {
		if !got.Start.Equal(wantRange.Start) || !got.End.Equal(wantRange.End) {
			t.Fatalf("%s echoed window %v..%v, want %v..%v", name, got.Start, got.End, wantRange.Start, wantRange.End)
		}
	}
}
