package usecase

import (
	"context"

	"directory/internal/errors"
)

// ErrStaleResult is returned when a resolution finishes after a newer
// request for the same view has already been issued. The caller must
// discard the result.
var ErrStaleResult = errors.New("stale resolution result")

// BrowseUsecase wraps category resolution with the stale-response guard.
// A view (one UI state, identified by an opaque key) may re-issue its
// resolution while an earlier one is still in flight; only the latest
// issued request's result is ever observed, regardless of completion
// order. Superseded resolutions fail with ErrStaleResult.
type BrowseUsecase interface {
	Browse(ctx context.Context, viewKey string, input *ResolveCategoryInput) (*CategoryPage, error)
}
