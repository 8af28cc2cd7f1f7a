package usecase

import (
	"context"

	"dora-metrics-service/internal/filters/core/ports"

	"go.uber.org/zap"
)

type CascadeApplicationsUseCase struct {
	options ports.FilterOptionsPort
	log     *zap.Logger
}

func NewCascadeApplicationsUseCase(options ports.FilterOptionsPort, log *zap.Logger) *CascadeApplicationsUseCase {
	return &CascadeApplicationsUseCase{options: options, log: log}
}

// Execute returns the distinct applications for the selected projects as
// an ordered, duplicate-free list. Lookup failures never surface: the
// result degrades to the unrestricted list, and if that lookup fails too
// the empty list (no restriction) is returned. A wider option set keeps
// the UI usable; a failed request would not.
func (uc *CascadeApplicationsUseCase) Execute(ctx context.Context, organization string, projects []string) []string {
	if len(projects) > 0 {
		apps, err := uc.options.DistinctApplications(ctx, organization, projects)
		if err == nil {
			return dedupeNonEmpty(apps)
		}

		uc.log.Warn("application cascade lookup failed, serving unrestricted list",
			zap.String("organization", organization),
			zap.Strings("projects", projects),
			zap.Error(err))
	}

	apps, err := uc.options.DistinctApplications(ctx, organization, nil)
	if err != nil {
		uc.log.Warn("unrestricted application lookup failed, serving empty option set",
			zap.String("organization", organization),
			zap.Error(err))
		return []string{}
	}

	return dedupeNonEmpty(apps)
}
