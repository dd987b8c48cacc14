package repository

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrServiceAreaNotFound is returned when a business has no stored
// service-area record. This is the normal case for businesses whose
// implicit service area is their registration ZIP.
var ErrServiceAreaNotFound = errors.New("service area not found")

// ServiceAreaRepository defines the interface for service-area records.
type ServiceAreaRepository interface {
	// FindServiceAreaByBusiness retrieves the service-area record for a
	// business.
	FindServiceAreaByBusiness(ctx context.Context, businessID string) (*entity.ServiceArea, error)

	// SaveServiceArea creates or replaces the service-area record for a
	// business.
	SaveServiceArea(ctx context.Context, area *entity.ServiceArea) error

	// DeleteServiceArea removes the service-area record for a business.
	DeleteServiceArea(ctx context.Context, businessID string) error
}
