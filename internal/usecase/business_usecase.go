package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// RegisterBusinessInput represents the input for registering a business.
type RegisterBusinessInput struct {
	BusinessName    string   `json:"business_name"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Address         string   `json:"address,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	Zip             string   `json:"zip,omitempty"`
	PrimaryCategory string   `json:"primary_category"`
	Categories      []string `json:"categories,omitempty"`
	Nationwide      bool     `json:"nationwide,omitempty"`
	ZipCodes        []string `json:"zip_codes,omitempty"`
	IsDemo          bool     `json:"is_demo,omitempty"`
	IsPlaceholder   bool     `json:"is_placeholder,omitempty"`
}

// UpdateBusinessInput represents the input for updating a business.
// Nil fields are left unchanged.
type UpdateBusinessInput struct {
	BusinessName    *string   `json:"business_name,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	City            *string   `json:"city,omitempty"`
	State           *string   `json:"state,omitempty"`
	Zip             *string   `json:"zip,omitempty"`
	PrimaryCategory *string   `json:"primary_category,omitempty"`
	Categories      *[]string `json:"categories,omitempty"`
}

// ServiceAreaInput represents the input for setting a service area.
// Nationwide wins over the ZIP list when both are provided.
type ServiceAreaInput struct {
	Nationwide bool     `json:"nationwide"`
	ZipCodes   []string `json:"zip_codes,omitempty"`
}

// BusinessUsecase defines the registration and maintenance flows for
// business records and their category index memberships.
type BusinessUsecase interface {
	RegisterBusiness(ctx context.Context, input *RegisterBusinessInput) (*entity.Business, error)
	GetBusiness(ctx context.Context, id string) (*entity.Business, error)
	UpdateBusiness(ctx context.Context, id string, input *UpdateBusinessInput) (*entity.Business, error)
	SetServiceArea(ctx context.Context, id string, input *ServiceAreaInput) error
}
