// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business record is absent.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateBusiness is returned when creating a business whose ID
	// is already taken.
	ErrDuplicateBusiness = errors.New("business already exists")
)

// BusinessRepository defines the interface for business document operations.
type BusinessRepository interface {
	// CreateBusiness persists a new registration record.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID retrieves a registration record by identifier.
	FindBusinessByID(ctx context.Context, id string) (*entity.Business, error)

	// UpdateBusiness overwrites an existing registration record.
	UpdateBusiness(ctx context.Context, business *entity.Business) error

	// DeleteBusiness removes a registration record. Used only by the
	// admin purge flow.
	DeleteBusiness(ctx context.Context, id string) error
}
