package ports

import "context"

type FilterOptionsPort interface {
	// DistinctApplications returns the distinct application names seen for
	// the organization, restricted to the given projects. An empty or nil
	// projects slice means unrestricted.
	DistinctApplications(ctx context.Context, organization string, projects []string) ([]string, error)
}
