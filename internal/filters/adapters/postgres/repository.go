package postgres

import (
	"context"

	"dora-metrics-service/internal/filters/core/ports"

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

// FilterOptionsRepository reads the distinct child-dimension values used
// to populate cascading filter dropdowns.
type FilterOptionsRepository struct {
	db DB
}

func NewFilterOptionsRepository(db DB) *FilterOptionsRepository {
	return &FilterOptionsRepository{db: db}
}

var _ ports.FilterOptionsPort = (*FilterOptionsRepository)(nil)

func (r *FilterOptionsRepository) DistinctApplications(ctx context.Context, organization string, projects []string) ([]string, error) {
	query := `
SELECT DISTINCT application
FROM deployments
WHERE organization = $1
    AND application IS NOT NULL
    AND application <> ''`
	args := []any{organization}

	if len(projects) > 0 {
		query += `
    AND project = ANY($2)`
		args = append(args, pq.Array(projects))
	}

	query += `
ORDER BY application`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var app string
		if err := rows.Scan(&app); err != nil {
			return nil, err
		}
		out = append(out, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
