package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/usecase"
	filtersdomain "dora-metrics-service/internal/filters/core/domain"
	filtersusecase "dora-metrics-service/internal/filters/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const dayLayout = "2006-01-02"

type DeploymentFrequencyUseCase interface {
	Execute(ctx context.Context, in usecase.MetricsQueryInput) (*domain.DeploymentFrequencyResult, error)
}

type ChangeFailureRateUseCase interface {
	Execute(ctx context.Context, in usecase.MetricsQueryInput) (*domain.ChangeFailureRateResult, error)
}

type LeadTimeUseCase interface {
	Execute(ctx context.Context, in usecase.MetricsQueryInput) (*domain.LeadTimeResult, error)
}

type TimeToRestoreUseCase interface {
	Execute(ctx context.Context, in usecase.MetricsQueryInput) (*domain.TimeToRestoreResult, error)
}

type GetAllMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.MetricsQueryInput) (*domain.AllMetricsResult, error)
}

type MetricsHandler struct {
	frequencyUC DeploymentFrequencyUseCase
	failuresUC  ChangeFailureRateUseCase
	leadTimeUC  LeadTimeUseCase
	restoreUC   TimeToRestoreUseCase
	allUC       GetAllMetricsUseCase
}

func NewMetricsHandler(
	frequencyUC DeploymentFrequencyUseCase,
	failuresUC ChangeFailureRateUseCase,
	leadTimeUC LeadTimeUseCase,
	restoreUC TimeToRestoreUseCase,
	allUC GetAllMetricsUseCase,
) *MetricsHandler {
	return &MetricsHandler{
		frequencyUC: frequencyUC,
		failuresUC:  failuresUC,
		leadTimeUC:  leadTimeUC,
		restoreUC:   restoreUC,
		allUC:       allUC,
	}
}

// GetDeploymentFrequency godoc
// @Summary Deployment frequency
// @Description Day-bucketed deployment counts plus a summary averaged over days with data
// @Tags Metrics
// @Produce json
// @Param organizationName query string true "Organization"
// @Param startDate query string false "Start date (2006-01-02 or RFC3339)"
// @Param endDate query string false "End date"
// @Param timeRange query string false "Named range: 7d | 30d | 90d | 1y"
// @Param projectName query []string false "Project filter (repeatable)"
// @Param applicationName query []string false "Application filter (repeatable)"
// @Param environmentType query []string false "Environment filter (repeatable)"
// @Success 200 {object} DeploymentFrequencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/deployment-frequency [get]
func (h *MetricsHandler) GetDeploymentFrequency(c *fiber.Ctx) error {
	res, err := h.frequencyUC.Execute(c.UserContext(), queryInput(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDeploymentFrequencyResponse(res))
}

// GetChangeFailureRate godoc
// @Summary Change failure rate
// @Description Day-bucketed deployment failure counts; the overall rate is failed/total over the whole window
// @Tags Metrics
// @Produce json
// @Param organizationName query string true "Organization"
// @Param startDate query string false "Start date (2006-01-02 or RFC3339)"
// @Param endDate query string false "End date"
// @Param timeRange query string false "Named range: 7d | 30d | 90d | 1y"
// @Param projectName query []string false "Project filter (repeatable)"
// @Param applicationName query []string false "Application filter (repeatable)"
// @Param environmentType query []string false "Environment filter (repeatable)"
// @Success 200 {object} ChangeFailureRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/change-failure-rate [get]
func (h *MetricsHandler) GetChangeFailureRate(c *fiber.Ctx) error {
	res, err := h.failuresUC.Execute(c.UserContext(), queryInput(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toChangeFailureRateResponse(res))
}

// GetLeadTime godoc
// @Summary Lead time for changes
// @Description Per-day lead-time medians; the overall figure is the change-count-weighted mean
// @Tags Metrics
// @Produce json
// @Param organizationName query string true "Organization"
// @Param startDate query string false "Start date (2006-01-02 or RFC3339)"
// @Param endDate query string false "End date"
// @Param timeRange query string false "Named range: 7d | 30d | 90d | 1y"
// @Param projectName query []string false "Project filter (repeatable)"
// @Param applicationName query []string false "Application filter (repeatable)"
// @Param environmentType query []string false "Environment filter (repeatable)"
// @Success 200 {object} LeadTimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/lead-time [get]
func (h *MetricsHandler) GetLeadTime(c *fiber.Ctx) error {
	res, err := h.leadTimeUC.Execute(c.UserContext(), queryInput(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toLeadTimeResponse(res))
}

// GetTimeToRestore godoc
// @Summary Mean time to restore
// @Description Per-day restore-time medians; the overall figure is the incident-count-weighted mean
// @Tags Metrics
// @Produce json
// @Param organizationName query string true "Organization"
// @Param startDate query string false "Start date (2006-01-02 or RFC3339)"
// @Param endDate query string false "End date"
// @Param timeRange query string false "Named range: 7d | 30d | 90d | 1y"
// @Param projectName query []string false "Project filter (repeatable)"
// @Param applicationName query []string false "Application filter (repeatable)"
// @Param environmentType query []string false "Environment filter (repeatable)"
// @Success 200 {object} TimeToRestoreResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/time-to-restore [get]
func (h *MetricsHandler) GetTimeToRestore(c *fiber.Ctx) error {
	res, err := h.restoreUC.Execute(c.UserContext(), queryInput(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTimeToRestoreResponse(res))
}

// GetAllMetrics godoc
// @Summary All four DORA metrics
// @Description Computes the four metrics concurrently; any failure fails the whole response
// @Tags Metrics
// @Produce json
// @Param organizationName query string true "Organization"
// @Param startDate query string false "Start date (2006-01-02 or RFC3339)"
// @Param endDate query string false "End date"
// @Param timeRange query string false "Named range: 7d | 30d | 90d | 1y"
// @Param projectName query []string false "Project filter (repeatable)"
// @Param applicationName query []string false "Application filter (repeatable)"
// @Param environmentType query []string false "Environment filter (repeatable)"
// @Success 200 {object} AllMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetAllMetrics(c *fiber.Ctx) error {
	res, err := h.allUC.Execute(c.UserContext(), queryInput(c))
	if err != nil {
		return respondError(c, err)
	}

	resp := AllMetricsResponse{
		DeploymentFrequency: toDeploymentFrequencyResponse(&res.DeploymentFrequency),
		ChangeFailureRate:   toChangeFailureRateResponse(&res.ChangeFailureRate),
		LeadTime:            toLeadTimeResponse(&res.LeadTime),
		TimeToRestore:       toTimeToRestoreResponse(&res.TimeToRestore),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// queryInput carries the raw query values over as-is; normalization is
// the usecase's job.
func queryInput(c *fiber.Ctx) usecase.MetricsQueryInput {
	return usecase.MetricsQueryInput{
		Organization: c.Query("organizationName", ""),
		StartDate:    c.Query("startDate", ""),
		EndDate:      c.Query("endDate", ""),
		TimeRange:    c.Query("timeRange", ""),
		Projects:     queryValue(c, "projectName"),
		Applications: queryValue(c, "applicationName"),
		Environments: queryValue(c, "environmentType"),
	}
}

// queryValue tags a query param as absent, scalar, or list so the
// normalizer can treat single-select and multi-select identically.
func queryValue(c *fiber.Ctx, key string) filtersdomain.Value {
	vals := c.Context().QueryArgs().PeekMulti(key)
	switch len(vals) {
	case 0:
		return filtersdomain.Absent()
	case 1:
		return filtersdomain.Scalar(string(vals[0]))
	default:
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			out = append(out, string(v))
		}
		return filtersdomain.List(out)
	}
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, filtersusecase.ErrInvalidDateRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_date_range",
			Message: err.Error(),
		})
	}

	var dsErr *usecase.DataSourceError
	if errors.As(err, &dsErr) {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "data_source_error",
		})
	}

	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func toDateRangeResponse(r filtersdomain.DateRange) DateRangeResponse {
	return DateRangeResponse{
		StartDate: r.Start.UTC().Format(time.RFC3339),
		EndDate:   r.End.UTC().Format(time.RFC3339),
	}
}

func toFiltersAppliedResponse(s filtersdomain.Selection) FiltersAppliedResponse {
	resp := FiltersAppliedResponse{}
	if len(s.Projects) > 0 {
		resp.Projects = s.Projects
	}
	if len(s.Applications) > 0 {
		resp.Applications = s.Applications
	}
	if len(s.Environments) > 0 {
		resp.Environments = s.Environments
	}
	return resp
}

func toDeploymentFrequencyResponse(res *domain.DeploymentFrequencyResult) DeploymentFrequencyResponse {
	days := make([]DeploymentDayResponse, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, DeploymentDayResponse{
			Date:            d.Date.UTC().Format(dayLayout),
			DeploymentCount: d.DeploymentCount,
		})
	}
	return DeploymentFrequencyResponse{
		Days: days,
		Summary: DeploymentFrequencySummaryResponse{
			TotalDeployments: res.Summary.TotalDeployments,
			AveragePerDay:    res.Summary.AveragePerDay,
			DateRange:        toDateRangeResponse(res.Summary.DateRange),
			FiltersApplied:   toFiltersAppliedResponse(res.Summary.FiltersApplied),
		},
	}
}

func toChangeFailureRateResponse(res *domain.ChangeFailureRateResult) ChangeFailureRateResponse {
	days := make([]FailureDayResponse, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, FailureDayResponse{
			Date:               d.Date.UTC().Format(dayLayout),
			TotalDeployments:   d.TotalDeployments,
			FailedDeployments:  d.FailedDeployments,
			FailureRatePercent: d.FailureRatePercent,
		})
	}
	return ChangeFailureRateResponse{
		Days: days,
		Summary: ChangeFailureRateSummaryResponse{
			TotalDeployments:   res.Summary.TotalDeployments,
			FailedDeployments:  res.Summary.FailedDeployments,
			OverallRatePercent: res.Summary.OverallRatePercent,
			DateRange:          toDateRangeResponse(res.Summary.DateRange),
			FiltersApplied:     toFiltersAppliedResponse(res.Summary.FiltersApplied),
		},
	}
}

func toLeadTimeResponse(res *domain.LeadTimeResult) LeadTimeResponse {
	days := make([]LeadTimeDayResponse, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, LeadTimeDayResponse{
			Date:                d.Date.UTC().Format(dayLayout),
			MedianLeadTimeHours: d.MedianLeadTimeHours,
			ChangeCount:         d.ChangeCount,
		})
	}
	return LeadTimeResponse{
		Days: days,
		Summary: LeadTimeSummaryResponse{
			TotalChanges:       res.Summary.TotalChanges,
			OverallMedianHours: res.Summary.OverallMedianHours,
			DateRange:          toDateRangeResponse(res.Summary.DateRange),
			FiltersApplied:     toFiltersAppliedResponse(res.Summary.FiltersApplied),
		},
	}
}

func toTimeToRestoreResponse(res *domain.TimeToRestoreResult) TimeToRestoreResponse {
	days := make([]RestoreDayResponse, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, RestoreDayResponse{
			Date:                 d.Date.UTC().Format(dayLayout),
			MedianHoursToRestore: d.MedianHoursToRestore,
			IncidentCount:        d.IncidentCount,
		})
	}
	return TimeToRestoreResponse{
		Days: days,
		Summary: TimeToRestoreSummaryResponse{
			TotalIncidents:     res.Summary.TotalIncidents,
			OverallMedianHours: res.Summary.OverallMedianHours,
			DateRange:          toDateRangeResponse(res.Summary.DateRange),
			FiltersApplied:     toFiltersAppliedResponse(res.Summary.FiltersApplied),
		},
	}
}
