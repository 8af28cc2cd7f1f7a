package domain

import (
	"time"

	filters "dora-metrics-service/internal/filters/core/domain"
)

// Rows arrive from the warehouse already bucketed by UTC calendar day;
// nothing in this service re-groups them.

type DeploymentRow struct {
	Date            time.Time
	DeploymentCount int64
}

type FailureRow struct {
	Date              time.Time
	TotalDeployments  int64
	FailedDeployments int64

	// FailureRatePercent is the per-day display figure, rounded
	// independently of the aggregate ratio.
	FailureRatePercent float64
}

type LeadTimeRow struct {
	Date                time.Time
	MedianLeadTimeHours float64
	ChangeCount         int64
}

type RestoreRow struct {
	Date                 time.Time
	MedianHoursToRestore float64
	IncidentCount        int64
}

type DeploymentFrequencySummary struct {
	TotalDeployments int64
	AveragePerDay    float64
	DateRange        filters.DateRange
	FiltersApplied   filters.Selection
}

type ChangeFailureRateSummary struct {
	TotalDeployments   int64
	FailedDeployments  int64
	OverallRatePercent float64
	DateRange          filters.DateRange
	FiltersApplied     filters.Selection
}

type LeadTimeSummary struct {
	TotalChanges       int64
	OverallMedianHours float64
	DateRange          filters.DateRange
	FiltersApplied     filters.Selection
}

type TimeToRestoreSummary struct {
	TotalIncidents     int64
	OverallMedianHours float64
	DateRange          filters.DateRange
	FiltersApplied     filters.Selection
}

type DeploymentFrequencyResult struct {
	Days    []DeploymentRow
	Summary DeploymentFrequencySummary
}

type ChangeFailureRateResult struct {
	Days    []FailureRow
	Summary ChangeFailureRateSummary
}

type LeadTimeResult struct {
	Days    []LeadTimeRow
	Summary LeadTimeSummary
}

type TimeToRestoreResult struct {
	Days    []RestoreRow
	Summary TimeToRestoreSummary
}

// AllMetricsResult is the composed response: all four metrics or none.
type AllMetricsResult struct {
	DeploymentFrequency DeploymentFrequencyResult
	ChangeFailureRate   ChangeFailureRateResult
	LeadTime            LeadTimeResult
	TimeToRestore       TimeToRestoreResult
}
