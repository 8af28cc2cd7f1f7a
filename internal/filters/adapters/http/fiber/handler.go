package fiber

import (
	"context"
	"net/http"

	"dora-metrics-service/internal/filters/core/domain"
	"dora-metrics-service/internal/filters/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type CascadeApplicationsUseCase interface {
	Execute(ctx context.Context, organization string, projects []string) []string
}

// FiltersHandler serves the cascading filter option sets for the
// dashboard dropdowns.
type FiltersHandler struct {
	cascadeUC CascadeApplicationsUseCase
	normalize *usecase.NormalizeFiltersUseCase
}

func NewFiltersHandler(cascadeUC CascadeApplicationsUseCase) *FiltersHandler {
	return &FiltersHandler{
		cascadeUC: cascadeUC,
		normalize: usecase.NewNormalizeFiltersUseCase(),
	}
}

// GetApplicationOptions godoc
// @Summary Application filter options
// @Description Distinct applications, narrowed to the selected projects when given. Degrades to the unrestricted list on lookup failure.
// @Tags Filters
// @Produce json
// @Param organizationName query string true "Organization"
// @Param projectName query []string false "Project filter (repeatable)"
// @Success 200 {object} ApplicationOptionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /filters/applications [get]
func (h *FiltersHandler) GetApplicationOptions(c *fiber.Ctx) error {
	organization := c.Query("organizationName", "")
	if organization == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "organizationName is required",
		})
	}

	raw := c.Context().QueryArgs().PeekMulti("projectName")
	projects := make([]string, 0, len(raw))
	for _, v := range raw {
		projects = append(projects, string(v))
	}

	sel := h.normalize.Execute(usecase.NormalizeFiltersInput{
		Projects:     domain.List(projects),
		Applications: domain.Absent(),
		Environments: domain.Absent(),
	})

	apps := h.cascadeUC.Execute(c.UserContext(), organization, sel.Projects)

	return c.Status(http.StatusOK).JSON(ApplicationOptionsResponse{Applications: apps})
}
