package fiber

type DateRangeResponse struct {
	StartDate string `json:"start_date" example:"2024-01-01T00:00:00Z"`
	EndDate   string `json:"end_date" example:"2024-01-31T23:59:59Z"`
}

// FiltersAppliedResponse echoes only the filters the caller actually
// set; unrestricted dimensions are omitted, not null.
type FiltersAppliedResponse struct {
	Projects     []string `json:"projects,omitempty"`
	Applications []string `json:"applications,omitempty"`
	Environments []string `json:"environments,omitempty"`
}

type DeploymentDayResponse struct {
	Date            string `json:"date" example:"2024-01-15"`
	DeploymentCount int64  `json:"deployment_count"`
}

type DeploymentFrequencySummaryResponse struct {
	TotalDeployments int64                  `json:"total_deployments"`
	AveragePerDay    float64                `json:"average_per_day"`
	DateRange        DateRangeResponse      `json:"date_range"`
	FiltersApplied   FiltersAppliedResponse `json:"filters_applied"`
}

type DeploymentFrequencyResponse struct {
	Days    []DeploymentDayResponse            `json:"days"`
	Summary DeploymentFrequencySummaryResponse `json:"summary"`
}

type FailureDayResponse struct {
	Date               string  `json:"date" example:"2024-01-15"`
	TotalDeployments   int64   `json:"total_deployments"`
	FailedDeployments  int64   `json:"failed_deployments"`
	FailureRatePercent float64 `json:"failure_rate_percent"`
}

type ChangeFailureRateSummaryResponse struct {
	TotalDeployments   int64                  `json:"total_deployments"`
	FailedDeployments  int64                  `json:"failed_deployments"`
	OverallRatePercent float64                `json:"overall_rate_percent"`
	DateRange          DateRangeResponse      `json:"date_range"`
	FiltersApplied     FiltersAppliedResponse `json:"filters_applied"`
}

type ChangeFailureRateResponse struct {
	Days    []FailureDayResponse             `json:"days"`
	Summary ChangeFailureRateSummaryResponse `json:"summary"`
}

type LeadTimeDayResponse struct {
	Date                string  `json:"date" example:"2024-01-15"`
	MedianLeadTimeHours float64 `json:"median_lead_time_hours"`
	ChangeCount         int64   `json:"change_count"`
}

type LeadTimeSummaryResponse struct {
	TotalChanges       int64                  `json:"total_changes"`
	OverallMedianHours float64                `json:"overall_median_hours"`
	DateRange          DateRangeResponse      `json:"date_range"`
	FiltersApplied     FiltersAppliedResponse `json:"filters_applied"`
}

type LeadTimeResponse struct {
	Days    []LeadTimeDayResponse   `json:"days"`
	Summary LeadTimeSummaryResponse `json:"summary"`
}

type RestoreDayResponse struct {
	Date                 string  `json:"date" example:"2024-01-15"`
	MedianHoursToRestore float64 `json:"median_hours_to_restore"`
	IncidentCount        int64   `json:"incident_count"`
}

type TimeToRestoreSummaryResponse struct {
	TotalIncidents     int64                  `json:"total_incidents"`
	OverallMedianHours float64                `json:"overall_median_hours"`
	DateRange          DateRangeResponse      `json:"date_range"`
	FiltersApplied     FiltersAppliedResponse `json:"filters_applied"`
}

type TimeToRestoreResponse struct {
	Days    []RestoreDayResponse         `json:"days"`
	Summary TimeToRestoreSummaryResponse `json:"summary"`
}

type AllMetricsResponse struct {
	DeploymentFrequency DeploymentFrequencyResponse `json:"deployment_frequency"`
	ChangeFailureRate   ChangeFailureRateResponse   `json:"change_failure_rate"`
	LeadTime            LeadTimeResponse            `json:"lead_time"`
	TimeToRestore       TimeToRestoreResponse       `json:"time_to_restore"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_date_range"`
	Message string `json:"message,omitempty" example:"invalid date range: startDate after endDate"`
}
