package impl

import (
	"context"
	"testing"

	"directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	resolve func(ctx context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error)
}

func (s *stubDirectory) ResolveCategory(ctx context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
	return s.resolve(ctx, input)
}

func TestBrowse_EmptyViewKeyBypassesGuard(t *testing.T) {
	t.Parallel()

	service := NewBrowseService(&stubDirectory{
		resolve: func(_ context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
			return &usecase.CategoryPage{CanonicalName: input.CategoryID}, nil
		},
	})

	page, err := service.Browse(context.Background(), "", &usecase.ResolveCategoryInput{CategoryID: "Plumbing"})

	require.NoError(t, err)
	assert.Equal(t, "Plumbing", page.CanonicalName)
}

func TestBrowse_SequentialRequestsAllSucceed(t *testing.T) {
	t.Parallel()

	service := NewBrowseService(&stubDirectory{
		resolve: func(_ context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
			return &usecase.CategoryPage{CanonicalName: input.CategoryID}, nil
		},
	})

	for _, id := range []string{"Plumbing", "Legal Services", "Pet Care"} {
		page, err := service.Browse(context.Background(), "view-1", &usecase.ResolveCategoryInput{CategoryID: id})
		require.NoError(t, err)
		assert.Equal(t, id, page.CanonicalName)
	}
}

func TestBrowse_SlowerEarlierRequestIsDiscarded(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	service := NewBrowseService(&stubDirectory{
		resolve: func(_ context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
			if input.CategoryID == "first" {
				close(firstStarted)
				<-releaseFirst
			}

			return &usecase.CategoryPage{CanonicalName: input.CategoryID}, nil
		},
	})

	type result struct {
		page *usecase.CategoryPage
		err  error
	}
	firstDone := make(chan result, 1)

	go func() {
		page, err := service.Browse(context.Background(), "view-1", &usecase.ResolveCategoryInput{CategoryID: "first"})
		firstDone <- result{page: page, err: err}
	}()

	// The second request for the same view is issued while the first is
	// still resolving and finishes ahead of it.
	<-firstStarted
	page, err := service.Browse(context.Background(), "view-1", &usecase.ResolveCategoryInput{CategoryID: "second"})
	require.NoError(t, err)
	assert.Equal(t, "second", page.CanonicalName)

	close(releaseFirst)
	first := <-firstDone
	require.Error(t, first.err)
	assert.ErrorIs(t, first.err, usecase.ErrStaleResult)
	assert.Nil(t, first.page)
}

func TestBrowse_ViewsAreIndependent(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	service := NewBrowseService(&stubDirectory{
		resolve: func(_ context.Context, input *usecase.ResolveCategoryInput) (*usecase.CategoryPage, error) {
			if input.CategoryID == "slow" {
				close(firstStarted)
				<-releaseFirst
			}

			return &usecase.CategoryPage{CanonicalName: input.CategoryID}, nil
		},
	})

	type result struct {
		page *usecase.CategoryPage
		err  error
	}
	slowDone := make(chan result, 1)

	go func() {
		page, err := service.Browse(context.Background(), "view-a", &usecase.ResolveCategoryInput{CategoryID: "slow"})
		slowDone <- result{page: page, err: err}
	}()

	// Activity on another view must not invalidate view-a's request.
	<-firstStarted
	_, err := service.Browse(context.Background(), "view-b", &usecase.ResolveCategoryInput{CategoryID: "other"})
	require.NoError(t, err)

	close(releaseFirst)
	slow := <-slowDone
	require.NoError(t, slow.err)
	assert.Equal(t, "slow", slow.page.CanonicalName)
}
