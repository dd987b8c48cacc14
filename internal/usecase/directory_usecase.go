// Package usecase defines the application's use-case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// ResolveCategoryInput represents one category page resolution request.
type ResolveCategoryInput struct {
	// CategoryID is a category identifier in any historical spelling, or
	// a full ">"-delimited subcategory path.
	CategoryID string `json:"category_id"`

	// Zip, when non-empty, filters results to businesses serving it.
	Zip string `json:"zip,omitempty"`
}

// CategoryPage is the resolved, enriched business list for one category.
type CategoryPage struct {
	CanonicalName string                    `json:"canonical_name"`
	Businesses    []*entity.DisplayBusiness `json:"businesses"`
}

// DirectoryUsecase resolves category pages: key normalization, index
// union across alias keys, service-area filtering, and ad-design
// enrichment. Store-level failures inside a resolution are absorbed as
// partial results, never surfaced as page errors.
type DirectoryUsecase interface {
	ResolveCategory(ctx context.Context, input *ResolveCategoryInput) (*CategoryPage, error)
}
