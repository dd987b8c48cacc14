// Package handler contains the handlers for the admin API.
package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for store inspection and repair
// handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// InspectKeys lists raw store keys matching the pattern query with their
// value types.
func (h *AdminHandler) InspectKeys(c echo.Context) error {
	keys, err := h.uc.InspectKeys(c.Request().Context(), c.QueryParam("pattern"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, keys, "Keys listed successfully")
}

// DumpBusiness returns the raw records for one business.
func (h *AdminHandler) DumpBusiness(c echo.Context) error {
	dump, err := h.uc.DumpBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dump, "Business dumped successfully")
}

// PurgeBusiness removes every trace of a business and returns the repair
// report.
func (h *AdminHandler) PurgeBusiness(c echo.Context) error {
	report, err := h.uc.PurgeBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Business purged successfully")
}

// StripCategory removes a business from every key variant of one
// category.
func (h *AdminHandler) StripCategory(c echo.Context) error {
	removedFrom, err := h.uc.StripCategory(c.Request().Context(), c.Param("id"), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"removed_from": removedFrom,
	}, "Category stripped successfully")
}

// HealthCheck is a simple handler to check if the admin server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
