// Package handler contains the HTTP handlers for the public directory API.
package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/domain/category"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderXViewID carries the opaque view key for the stale-response
// guard. Requests without it are resolved unguarded.
const HeaderXViewID = "X-View-Id"

// CategoryHandler holds dependencies for category page handlers.
type CategoryHandler struct {
	uc     usecase.BrowseUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.BrowseUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Browse handles the category page request: the category in the URL,
// optional zip and path query filters, and the optional view key header.
func (h *CategoryHandler) Browse(c echo.Context) error {
	categoryID := c.Param("category")
	if path := c.QueryParam("path"); path != "" {
		categoryID = path
	}

	input := &usecase.ResolveCategoryInput{
		CategoryID: categoryID,
		Zip:        c.QueryParam("zip"),
	}

	page, err := h.uc.Browse(c.Request().Context(), c.Request().Header.Get(HeaderXViewID), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Category resolved successfully")
}

// Normalize echoes how a category identifier resolves: its canonical
// display name and every raw key variant that would be checked.
func (h *CategoryHandler) Normalize(c echo.Context) error {
	normalization := category.Normalize(c.Param("category"))

	return response.Success(c, http.StatusOK, map[string]any{
		"canonical_name": normalization.CanonicalName,
		"key_variants":   normalization.KeyVariants,
	}, "Category normalized successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
