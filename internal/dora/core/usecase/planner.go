package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dora-metrics-service/internal/dora/core/ports"
	filtersdomain "dora-metrics-service/internal/filters/core/domain"
	filtersusecase "dora-metrics-service/internal/filters/core/usecase"
)

var ErrInvalidQuery = errors.New("invalid metrics query")

// MetricsQueryInput is the raw, unnormalized query as the controller
// layer received it.
type MetricsQueryInput struct {
	Organization string

	StartDate string
	EndDate   string
	TimeRange string

	Projects     filtersdomain.Value
	Applications filtersdomain.Value
	Environments filtersdomain.Value
}

// Planner turns raw query input into a warehouse filter: it normalizes
// the filter values, resolves the date window and, when projects are
// selected without explicit applications, narrows the application
// dimension through the cascade. The cascade is never consulted for an
// empty project selection.
type Planner struct {
	normalize *filtersusecase.NormalizeFiltersUseCase
	dates     *filtersusecase.ResolveDateRangeUseCase
	cascade   *filtersusecase.CascadeApplicationsUseCase
	now       func() time.Time
}

func NewPlanner(cascade *filtersusecase.CascadeApplicationsUseCase) *Planner {
	return NewPlannerAt(cascade, time.Now)
}

// NewPlannerAt pins the reference instant used for named ranges and the
// default lookback window. Production callers pass time.Now.
func NewPlannerAt(cascade *filtersusecase.CascadeApplicationsUseCase, now func() time.Time) *Planner {
	return &Planner{
		normalize: filtersusecase.NewNormalizeFiltersUseCase(),
		dates:     filtersusecase.NewResolveDateRangeUseCaseAt(now),
		cascade:   cascade,
		now:       now,
	}
}

type queryPlan struct {
	filter ports.MetricsFilter

	// applied holds only the user-set filters; cascaded applications are
	// part of the query, not of the filters_applied echo.
	applied  filtersdomain.Selection
	resolved filtersusecase.ResolvedDateRange

	// now is the instant the plan was made; deferred windows that end up
	// empty fall back to the default lookback ending here.
	now time.Time
}

func (p *Planner) plan(ctx context.Context, in MetricsQueryInput) (queryPlan, error) {
	if strings.TrimSpace(in.Organization) == "" {
		return queryPlan{}, ErrInvalidQuery
	}

	sel := p.normalize.Execute(filtersusecase.NormalizeFiltersInput{
		Projects:     in.Projects,
		Applications: in.Applications,
		Environments: in.Environments,
	})

	resolved, err := p.dates.Execute(filtersusecase.ResolveDateRangeInput{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		TimeRange: in.TimeRange,
	})
	if err != nil {
		return queryPlan{}, err
	}

	effective := sel
	if sel.HasProjects() && !sel.HasApplications() && p.cascade != nil {
		effective.Applications = p.cascade.Execute(ctx, in.Organization, sel.Projects)
	}

	f := ports.MetricsFilter{
		Organization: in.Organization,
		Projects:     effective.Projects,
		Applications: effective.Applications,
		Environments: effective.Environments,
	}
	if !resolved.Deferred {
		from, to := resolved.Range.Start, resolved.Range.End
		f.From, f.To = &from, &to
	}

	return queryPlan{filter: f, applied: sel, resolved: resolved, now: p.now().UTC()}, nil
}
