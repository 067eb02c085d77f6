package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/investor-insight/internal/api/dto"
	"github.com/spec-kit/investor-insight/internal/startups"
	apperrors "github.com/spec-kit/investor-insight/pkg/util"
)

// StartupsHandler serves the portfolio browsing endpoints.
type StartupsHandler struct {
	provider startups.Provider
}

// NewStartupsHandler constructs the handler.
func NewStartupsHandler(provider startups.Provider) *StartupsHandler {
	return &StartupsHandler{provider: provider}
}

// List handles GET /api/startups with optional category/country/year filters.
func (h *StartupsHandler) List(c *fiber.Ctx) error {
	filters := startups.Filters{
		Category: c.Query("category"),
		Country:  c.Query("country"),
	}
	if year := c.Query("year"); year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid year filter")
		}
		filters.Year = parsed
	}

	records, err := h.provider.List(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(dto.StartupListResponse{
		Startups: records,
		Source:   h.provider.Source(),
	})
}

// Get handles GET /api/startups/:name.
func (h *StartupsHandler) Get(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return fiber.NewError(http.StatusBadRequest, "startup name required")
	}

	record, err := h.provider.GetByName(c.Context(), name)
	if err != nil {
		if errors.Is(err, startups.ErrNotFound) {
			return apperrors.NewNotFound("startup", map[string]any{"name": name})
		}
		return err
	}
	return c.JSON(dto.StartupResponse{
		Startup: *record,
		Source:  h.provider.Source(),
	})
}
