package postgres

import (
	"context"
	"fmt"
	"time"

	"dora-metrics-service/internal/dora/core/domain"
	"dora-metrics-service/internal/dora/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// MetricsRepository reads day-bucketed DORA rows from the warehouse
// tables. All bucketing happens in SQL; Go code only scans.
type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

var _ ports.MetricsSourcePort = (*MetricsRepository)(nil)

// buildWhere assembles the shared filter clause. Set-valued filters go
// through pq.Array + ANY so one statement covers any selection size.
func buildWhere(f ports.MetricsFilter, timeColumn string) (string, []any) {
	where := "organization = $1"
	args := []any{f.Organization}
	argIndex := 2

	if len(f.Projects) > 0 {
		where += fmt.Sprintf(" AND project = ANY($%d)", argIndex)
		args = append(args, pq.Array(f.Projects))
		argIndex++
	}
	if len(f.Applications) > 0 {
		where += fmt.Sprintf(" AND application = ANY($%d)", argIndex)
		args = append(args, pq.Array(f.Applications))
		argIndex++
	}
	if len(f.Environments) > 0 {
		where += fmt.Sprintf(" AND environment = ANY($%d)", argIndex)
		args = append(args, pq.Array(f.Environments))
		argIndex++
	}
	if f.From != nil {
		where += fmt.Sprintf(" AND %s >= $%d", timeColumn, argIndex)
		args = append(args, *f.From)
		argIndex++
	}
	if f.To != nil {
		where += fmt.Sprintf(" AND %s <= $%d", timeColumn, argIndex)
		args = append(args, *f.To)
		argIndex++
	}

	return where, args
}

func (r *MetricsRepository) QueryDeploymentFrequency(ctx context.Context, f ports.MetricsFilter) ([]domain.DeploymentRow, error) {
	where, args := buildWhere(f, "deployed_at")
	query := `
SELECT
    date_trunc('day', deployed_at) AS day,
    COUNT(*) AS deployment_count
FROM deployments
WHERE ` + where + `
GROUP BY day
ORDER BY day`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DeploymentRow
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		out = append(out, domain.DeploymentRow{Date: day.UTC(), DeploymentCount: count})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MetricsRepository) QueryChangeFailureRate(ctx context.Context, f ports.MetricsFilter) ([]domain.FailureRow, error) {
	where, args := buildWhere(f, "deployed_at")
	query := `
SELECT
    date_trunc('day', deployed_at) AS day,
    COUNT(*) AS total_deployments,
    COUNT(*) FILTER (WHERE failed) AS failed_deployments
FROM deployments
WHERE ` + where + `
GROUP BY day
ORDER BY day`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FailureRow
	for rows.Next() {
		var day time.Time
		var total, failed int64
		if err := rows.Scan(&day, &total, &failed); err != nil {
			return nil, err
		}
		out = append(out, domain.FailureRow{
			Date:              day.UTC(),
			TotalDeployments:  total,
			FailedDeployments: failed,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MetricsRepository) QueryLeadTime(ctx context.Context, f ports.MetricsFilter) ([]domain.LeadTimeRow, error) {
	where, args := buildWhere(f, "deployed_at")
	query := `
SELECT
    date_trunc('day', deployed_at) AS day,
    percentile_cont(0.5) WITHIN GROUP (ORDER BY lead_time_hours) AS median_lead_time_hours,
    COUNT(*) AS change_count
FROM deployments
WHERE ` + where + `
    AND lead_time_hours IS NOT NULL
GROUP BY day
ORDER BY day`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LeadTimeRow
	for rows.Next() {
		var day time.Time
		var median float64
		var count int64
		if err := rows.Scan(&day, &median, &count); err != nil {
			return nil, err
		}
		out = append(out, domain.LeadTimeRow{
			Date:                day.UTC(),
			MedianLeadTimeHours: median,
			ChangeCount:         count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MetricsRepository) QueryTimeToRestore(ctx context.Context, f ports.MetricsFilter) ([]domain.RestoreRow, error) {
	where, args := buildWhere(f, "resolved_at")
	query := `
SELECT
    date_trunc('day', resolved_at) AS day,
    percentile_cont(0.5) WITHIN GROUP (ORDER BY hours_to_restore) AS median_hours_to_restore,
    COUNT(*) AS incident_count
FROM incidents
WHERE ` + where + `
    AND hours_to_restore IS NOT NULL
GROUP BY day
ORDER BY day`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RestoreRow
	for rows.Next() {
		var day time.Time
		var median float64
		var count int64
		if err := rows.Scan(&day, &median, &count); err != nil {
			return nil, err
		}
		out = append(out, domain.RestoreRow{
			Date:                 day.UTC(),
			MedianHoursToRestore: median,
			IncidentCount:        count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
