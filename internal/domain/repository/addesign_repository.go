package repository

import (
	"context"

	"directory/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAdDesignNotFound is returned when a business has no ad-design record.
var ErrAdDesignNotFound = errors.New("ad design not found")

// AdDesignRepository defines the interface for ad-design override records.
type AdDesignRepository interface {
	// FindAdDesignByBusiness retrieves the override record for a business.
	FindAdDesignByBusiness(ctx context.Context, businessID string) (*entity.AdDesign, error)

	// SaveAdDesign creates or replaces the override record for a business.
	SaveAdDesign(ctx context.Context, adDesign *entity.AdDesign) error

	// DeleteAdDesign removes the override record for a business.
	DeleteAdDesign(ctx context.Context, businessID string) error
}
