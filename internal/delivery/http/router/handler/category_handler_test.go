package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBrowse struct {
	viewKey string
	input   *usecase.ResolveCategoryInput
	page    *usecase.CategoryPage
	err     error
}

func (s *stubBrowse) Browse(_ context.Context, viewKey string, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
	s.viewKey = viewKey
	s.input = input

	return s.page, s.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCategoryHandler_Browse(t *testing.T) {
	stub := &stubBrowse{page: &usecase.CategoryPage{CanonicalName: "Mortuary Services"}}
	handler := NewCategoryHandler(stub, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories/funeral-services/businesses?zip=83702", nil)
	req.Header.Set(HeaderXViewID, "view-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("funeral-services")

	require.NoError(t, handler.Browse(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "view-1", stub.viewKey)
	assert.Equal(t, "funeral-services", stub.input.CategoryID)
	assert.Equal(t, "83702", stub.input.Zip)
	assert.Contains(t, rec.Body.String(), "Mortuary Services")
}

func TestCategoryHandler_Browse_PathQueryOverridesCategory(t *testing.T) {
	stub := &stubBrowse{page: &usecase.CategoryPage{CanonicalName: "Home, Lawn, and Manual Labor"}}
	handler := NewCategoryHandler(stub, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/categories/home-services/businesses?path=Home%20Services%20%3E%20Flooring", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("home-services")

	require.NoError(t, handler.Browse(c))

	assert.Equal(t, "Home Services > Flooring", stub.input.CategoryID)
	// No view header means the stale guard is off for this call.
	assert.Empty(t, stub.viewKey)
}

func TestCategoryHandler_Normalize(t *testing.T) {
	handler := NewCategoryHandler(&stubBrowse{}, newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories/funeral-services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("funeral-services")

	require.NoError(t, handler.Normalize(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Mortuary Services")
	assert.Contains(t, body, "mortuary_services")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
