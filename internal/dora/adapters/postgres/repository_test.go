package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dora-metrics-service/internal/dora/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *float64:
			v, ok := row.values[i].(float64)
			if !ok {
				return errors.New("type assertion to float64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, nil
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad day literal %q: %v", s, err)
	}
	return d.UTC()
}

// ------------------------------------------------------------
// DEPLOYMENT FREQUENCY: SCAN + BASE FILTER
// ------------------------------------------------------------

func TestQueryDeploymentFrequency_ScansRows(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{mustDay(t, "2024-01-15"), int64(5)}},
				{values: []any{mustDay(t, "2024-01-16"), int64(3)}},
			}}, nil
		},
	}
	repo := NewMetricsRepository(db)

	rows, err := repo.QueryDeploymentFrequency(context.Background(), ports.MetricsFilter{Organization: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].DeploymentCount != 5 || rows[1].DeploymentCount != 3 {
		t.Fatalf("unexpected counts: %+v", rows)
	}

	if !strings.Contains(db.lastQuery, "FROM deployments") {
		t.Fatalf("expected deployments table, query: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "organization = $1") {
		t.Fatalf("expected organization filter, query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 1 || db.lastArgs[0] != "acme" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

// ------------------------------------------------------------
// FILTER CLAUSES ONLY FOR RESTRICTED DIMENSIONS
// ------------------------------------------------------------

func TestQueryDeploymentFrequency_SetAndRangeFilters(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{}, nil
		},
	}
	repo := NewMetricsRepository(db)

	from := mustDay(t, "2024-01-01")
	to := mustDay(t, "2024-01-31")

	_, err := repo.QueryDeploymentFrequency(context.Background(), ports.MetricsFilter{
		Organization: "acme",
		Projects:     []string{"checkout", "billing"},
		Environments: []string{"production"},
		From:         &from,
		To:           &to,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := db.lastQuery
	if !strings.Contains(q, "project = ANY($2)") {
		t.Fatalf("expected project clause, query: %s", q)
	}
	if strings.Contains(q, "application = ANY") {
		t.Fatalf("unexpected application clause for unrestricted dimension, query: %s", q)
	}
	if !strings.Contains(q, "environment = ANY($3)") {
		t.Fatalf("expected environment clause, query: %s", q)
	}
	if !strings.Contains(q, "deployed_at >= $4") || !strings.Contains(q, "deployed_at <= $5") {
		t.Fatalf("expected date bounds, query: %s", q)
	}
	if len(db.lastArgs) != 5 {
		t.Fatalf("expected 5 args, got %d", len(db.lastArgs))
	}
}

// ------------------------------------------------------------
// CHANGE FAILURE RATE
// ------------------------------------------------------------

func TestQueryChangeFailureRate_ScansRows(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{mustDay(t, "2024-01-15"), int64(10), int64(2)}},
			}}, nil
		},
	}
	repo := NewMetricsRepository(db)

	rows, err := repo.QueryChangeFailureRate(context.Background(), ports.MetricsFilter{Organization: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].TotalDeployments != 10 || rows[0].FailedDeployments != 2 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if !strings.Contains(db.lastQuery, "FILTER (WHERE failed)") {
		t.Fatalf("expected failed filter, query: %s", db.lastQuery)
	}
}

// ------------------------------------------------------------
// LEAD TIME AND TIME TO RESTORE: MEDIAN QUERIES
// ------------------------------------------------------------

func TestQueryLeadTime_ScansRows(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{mustDay(t, "2024-01-15"), 6.5, int64(4)}},
			}}, nil
		},
	}
	repo := NewMetricsRepository(db)

	rows, err := repo.QueryLeadTime(context.Background(), ports.MetricsFilter{Organization: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].MedianLeadTimeHours != 6.5 || rows[0].ChangeCount != 4 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if !strings.Contains(db.lastQuery, "percentile_cont(0.5)") {
		t.Fatalf("expected median query, query: %s", db.lastQuery)
	}
}

func TestQueryTimeToRestore_UsesIncidentsTable(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{mustDay(t, "2024-01-15"), 1.5, int64(2)}},
			}}, nil
		},
	}
	repo := NewMetricsRepository(db)

	rows, err := repo.QueryTimeToRestore(context.Background(), ports.MetricsFilter{Organization: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].MedianHoursToRestore != 1.5 || rows[0].IncidentCount != 2 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if !strings.Contains(db.lastQuery, "FROM incidents") {
		t.Fatalf("expected incidents table, query: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "resolved_at") {
		t.Fatalf("expected resolved_at bucketing, query: %s", db.lastQuery)
	}
}

// ------------------------------------------------------------
// ERROR PROPAGATION
// ------------------------------------------------------------

func TestQueryDeploymentFrequency_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("connection refused")
		},
	}
	repo := NewMetricsRepository(db)

	_, err := repo.QueryDeploymentFrequency(context.Background(), ports.MetricsFilter{Organization: "acme"})
	if err == nil || err.Error() != "connection refused" {
		t.Fatalf("expected query error to propagate, got %v", err)
	}
}

func TestQueryDeploymentFrequency_RowsErr(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("read timeout")}, nil
		},
	}
	repo := NewMetricsRepository(db)

	_, err := repo.QueryDeploymentFrequency(context.Background(), ports.MetricsFilter{Organization: "acme"})
	if err == nil || err.Error() != "read timeout" {
		t.Fatalf("expected rows error to propagate, got %v", err)
	}
}
