package impl

import (
	"context"
	"sync"

	"directory/internal/usecase"
)

type browseService struct {
	directory usecase.DirectoryUsecase

	mu     sync.Mutex
	latest map[string]uint64
}

// NewBrowseService wraps the directory resolver with the stale-response
// guard.
func NewBrowseService(directory usecase.DirectoryUsecase) usecase.BrowseUsecase {
	return &browseService{
		directory: directory,
		latest:    make(map[string]uint64),
	}
}

// Browse resolves a category for one view. Each call gets a sequence
// number from the view's monotonically increasing counter; if a newer
// call for the same view was issued before this one finished, the result
// is discarded and ErrStaleResult returned. An empty view key disables
// the guard for that call.
func (s *browseService) Browse(ctx context.Context, viewKey string, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
	if viewKey == "" {
		return s.directory.ResolveCategory(ctx, input)
	}

	seq := s.issue(viewKey)

	page, err := s.directory.ResolveCategory(ctx, input)

	if !s.isLatest(viewKey, seq) {
		return nil, usecase.ErrStaleResult
	}

	return page, err
}

func (s *browseService) issue(viewKey string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest[viewKey]++

	return s.latest[viewKey]
}

func (s *browseService) isLatest(viewKey string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest[viewKey] == seq
}
