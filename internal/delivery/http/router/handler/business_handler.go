package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for registration and maintenance
// handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterBusinessRequest represents the request body for registering a business
type RegisterBusinessRequest struct {
	BusinessName    string   `json:"business_name" validate:"required"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Zip             string   `json:"zip"`
	PrimaryCategory string   `json:"primary_category" validate:"required"`
	Categories      []string `json:"categories"`
	Nationwide      bool     `json:"nationwide"`
	ZipCodes        []string `json:"zip_codes" validate:"omitempty,dive,len=5,numeric"`
	IsDemo          bool     `json:"is_demo"`
	IsPlaceholder   bool     `json:"is_placeholder"`
}

// UpdateBusinessRequest represents the request body for updating a business.
// Absent fields are left unchanged.
type UpdateBusinessRequest struct {
	BusinessName    *string   `json:"business_name" validate:"omitempty,min=1"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Phone           *string   `json:"phone"`
	Address         *string   `json:"address"`
	City            *string   `json:"city"`
	State           *string   `json:"state"`
	Zip             *string   `json:"zip"`
	PrimaryCategory *string   `json:"primary_category" validate:"omitempty,min=1"`
	Categories      *[]string `json:"categories"`
}

// SetServiceAreaRequest represents the request body for replacing a
// service area. Nationwide wins over the ZIP list when both are provided.
type SetServiceAreaRequest struct {
	Nationwide bool     `json:"nationwide"`
	ZipCodes   []string `json:"zip_codes" validate:"omitempty,dive,len=5,numeric"`
}

// Register handles the business registration request.
func (h *BusinessHandler) Register(c echo.Context) error {
	var req RegisterBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	input := &usecase.RegisterBusinessInput{
		BusinessName:    req.BusinessName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		PrimaryCategory: req.PrimaryCategory,
		Categories:      req.Categories,
		Nationwide:      req.Nationwide,
		ZipCodes:        req.ZipCodes,
		IsDemo:          req.IsDemo,
		IsPlaceholder:   req.IsPlaceholder,
	}

	business, err := h.uc.RegisterBusiness(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business registered successfully")
}

// Get handles the business record read request.
func (h *BusinessHandler) Get(c echo.Context) error {
	business, err := h.uc.GetBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// Update handles the business record update request.
func (h *BusinessHandler) Update(c echo.Context) error {
	var req UpdateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	input := &usecase.UpdateBusinessInput{
		BusinessName:    req.BusinessName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		PrimaryCategory: req.PrimaryCategory,
		Categories:      req.Categories,
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// SetServiceArea handles the service-area replacement request.
func (h *BusinessHandler) SetServiceArea(c echo.Context) error {
	var req SetServiceAreaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service area input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrServiceAreaInvalid.WithDetails(err.Error()))
	}

	input := &usecase.ServiceAreaInput{
		Nationwide: req.Nationwide,
		ZipCodes:   req.ZipCodes,
	}

	if err := h.uc.SetServiceArea(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Service area updated successfully")
}
