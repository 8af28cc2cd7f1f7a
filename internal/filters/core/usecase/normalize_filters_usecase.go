package usecase

import (
	"strings"

	"dora-metrics-service/internal/filters/core/domain"
)

type NormalizeFiltersInput struct {
	Projects     domain.Value
	Applications domain.Value
	Environments domain.Value
}

type NormalizeFiltersUseCase struct{}

func NewNormalizeFiltersUseCase() *NormalizeFiltersUseCase {
	return &NormalizeFiltersUseCase{}
}

// Execute canonicalizes the raw filter values into a Selection. A scalar
// and a one-element list come out identical, blank entries are dropped,
// and absent or empty inputs become the empty set (no restriction).
func (uc *NormalizeFiltersUseCase) Execute(in NormalizeFiltersInput) domain.Selection {
	return domain.Selection{
		Projects:     normalizeValue(in.Projects),
		Applications: normalizeValue(in.Applications),
		Environments: normalizeValue(in.Environments),
	}
}

func normalizeValue(v domain.Value) []string {
	if v.IsAbsent() {
		return []string{}
	}
	return dedupeNonEmpty(v.Values())
}

// dedupeNonEmpty keeps first occurrences in order and drops blank entries.
func dedupeNonEmpty(vs []string) []string {
	out := make([]string, 0, len(vs))
	seen := make(map[string]struct{}, len(vs))

	for _, v := range vs {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
