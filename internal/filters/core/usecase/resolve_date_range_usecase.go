package usecase

import (
	"errors"
	"fmt"
	"time"

	"dora-metrics-service/internal/filters/core/domain"
)

var ErrInvalidDateRange = errors.New("invalid date range")

const dayLayout = "2006-01-02"

var namedRanges = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
}

type ResolveDateRangeInput struct {
	StartDate string // "2006-01-02" or RFC3339
	EndDate   string
	TimeRange string // "7d" / "30d" / "90d" / "1y"
}

// ResolvedDateRange is the outcome of date resolution. When Deferred is
// true no bounds were supplied: the caller queries unbounded and infers
// the effective window from the rows it gets back.
type ResolvedDateRange struct {
	Range    domain.DateRange
	Deferred bool
}

type ResolveDateRangeUseCase struct {
	now func() time.Time
}

func NewResolveDateRangeUseCase() *ResolveDateRangeUseCase {
	return NewResolveDateRangeUseCaseAt(time.Now)
}

// NewResolveDateRangeUseCaseAt pins the reference instant named ranges
// are anchored to. Production callers pass time.Now.
func NewResolveDateRangeUseCaseAt(now func() time.Time) *ResolveDateRangeUseCase {
	return &ResolveDateRangeUseCase{now: now}
}

// Execute resolves in order: explicit dates, then the named range token,
// then deferred inference. Explicit dates must come as a pair.
func (uc *ResolveDateRangeUseCase) Execute(in ResolveDateRangeInput) (ResolvedDateRange, error) {
	if in.StartDate != "" || in.EndDate != "" {
		if in.StartDate == "" || in.EndDate == "" {
			return ResolvedDateRange{}, fmt.Errorf("%w: startDate and endDate must be supplied together", ErrInvalidDateRange)
		}

		start, err := parseDate(in.StartDate, false)
		if err != nil {
			return ResolvedDateRange{}, fmt.Errorf("%w: startDate %q", ErrInvalidDateRange, in.StartDate)
		}
		end, err := parseDate(in.EndDate, true)
		if err != nil {
			return ResolvedDateRange{}, fmt.Errorf("%w: endDate %q", ErrInvalidDateRange, in.EndDate)
		}

		if start.After(end) {
			return ResolvedDateRange{}, fmt.Errorf("%w: startDate after endDate", ErrInvalidDateRange)
		}

		return ResolvedDateRange{Range: domain.DateRange{Start: start, End: end}}, nil
	}

	if in.TimeRange != "" {
		dur, ok := namedRanges[in.TimeRange]
		if !ok {
			return ResolvedDateRange{}, fmt.Errorf("%w: unknown time range %q", ErrInvalidDateRange, in.TimeRange)
		}

		end := uc.now().UTC()
		return ResolvedDateRange{Range: domain.DateRange{Start: end.Add(-dur), End: end}}, nil
	}

	return ResolvedDateRange{Deferred: true}, nil
}

// parseDate accepts a bare day or a full RFC3339 instant. A bare day used
// as an end bound is extended to the last instant of that day so the
// interval stays inclusive.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		t = t.UTC()
		if endOfDay {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
