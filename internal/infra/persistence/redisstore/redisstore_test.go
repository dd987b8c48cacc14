package redisstore

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestBusinessRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewBusinessRepository(client)
	ctx := context.Background()

	business := &entity.Business{
		ID:              "biz-1",
		BusinessName:    "Boise Pipes",
		Zip:             "83702",
		PrimaryCategory: "Plumbing",
	}

	require.NoError(t, repo.CreateBusiness(ctx, business))

	found, err := repo.FindBusinessByID(ctx, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "Boise Pipes", found.BusinessName)
	assert.Equal(t, "83702", found.Zip)
}

func TestBusinessRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewBusinessRepository(client)
	ctx := context.Background()

	business := &entity.Business{ID: "biz-1", BusinessName: "First"}
	require.NoError(t, repo.CreateBusiness(ctx, business))

	err := repo.CreateBusiness(ctx, &entity.Business{ID: "biz-1", BusinessName: "Second"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateBusiness)

	// The original record must survive the replay.
	found, err := repo.FindBusinessByID(ctx, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "First", found.BusinessName)
}

func TestBusinessRepository_FindMissing(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewBusinessRepository(client)

	found, err := repo.FindBusinessByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
	assert.Nil(t, found)
}

func TestBusinessRepository_UpdateMissing(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewBusinessRepository(client)

	err := repo.UpdateBusiness(context.Background(), &entity.Business{ID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
}

func TestBusinessRepository_Delete(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewBusinessRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.CreateBusiness(ctx, &entity.Business{ID: "biz-1"}))
	require.NoError(t, repo.DeleteBusiness(ctx, "biz-1"))

	_, err := repo.FindBusinessByID(ctx, "biz-1")
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, repo.DeleteBusiness(ctx, "biz-1"))
}

func TestCategoryIndexRepository_Membership(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewCategoryIndexRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.AddMember(ctx, "plumbing", "biz-1"))
	require.NoError(t, repo.AddMember(ctx, "plumbing", "biz-2"))
	require.NoError(t, repo.AddMember(ctx, "plumbing", "biz-1"))

	members, err := repo.Members(ctx, "plumbing")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"biz-1", "biz-2"}, members)

	removed, err := repo.RemoveMember(ctx, "plumbing", "biz-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveMember(ctx, "plumbing", "biz-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCategoryIndexRepository_MembersOfAbsentKey(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewCategoryIndexRepository(client)

	members, err := repo.Members(context.Background(), "never-written")

	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestCategoryIndexRepository_RemoveMemberEverywhere(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewCategoryIndexRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.AddMember(ctx, "plumbing", "biz-1"))
	require.NoError(t, repo.AddMember(ctx, "Plumbing", "biz-1"))
	require.NoError(t, repo.AddMember(ctx, "legal services", "biz-2"))

	removedFrom, err := repo.RemoveMemberEverywhere(ctx, "biz-1")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"category:plumbing", "category:Plumbing"}, removedFrom)

	// Sets the business was never in are untouched.
	members, err := repo.Members(ctx, "legal services")
	require.NoError(t, err)
	assert.Equal(t, []string{"biz-2"}, members)
}

func TestAdDesignRepository_Roundtrip(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewAdDesignRepository(client)
	ctx := context.Background()

	adDesign := &entity.AdDesign{
		BusinessID:   "biz-1",
		BusinessName: "Advertised Name",
		Phone:        "208-555-0199",
		Design:       map[string]any{"accentColor": "#ff6600"},
	}

	require.NoError(t, repo.SaveAdDesign(ctx, adDesign))

	found, err := repo.FindAdDesignByBusiness(ctx, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "Advertised Name", found.BusinessName)
	assert.Equal(t, "#ff6600", found.Design["accentColor"])

	require.NoError(t, repo.DeleteAdDesign(ctx, "biz-1"))

	_, err = repo.FindAdDesignByBusiness(ctx, "biz-1")
	assert.ErrorIs(t, err, repository.ErrAdDesignNotFound)
}

func TestServiceAreaRepository_Roundtrip(t *testing.T) {
	t.Parallel()

	_, client := newTestClient(t)
	repo := NewServiceAreaRepository(client)
	ctx := context.Background()

	area := &entity.ServiceArea{
		BusinessID: "biz-1",
		ZipCodes:   []string{"83702", "83703"},
	}

	require.NoError(t, repo.SaveServiceArea(ctx, area))

	found, err := repo.FindServiceAreaByBusiness(ctx, "biz-1")
	require.NoError(t, err)
	assert.False(t, found.Nationwide)
	assert.Equal(t, []string{"83702", "83703"}, found.ZipCodes)

	require.NoError(t, repo.DeleteServiceArea(ctx, "biz-1"))

	_, err = repo.FindServiceAreaByBusiness(ctx, "biz-1")
	assert.ErrorIs(t, err, repository.ErrServiceAreaNotFound)
}

func TestStoreInspector_ListKeysWithTypes(t *testing.T) {
	t.Parallel()

	mr, client := newTestClient(t)
	inspector := NewStoreInspector(client)
	ctx := context.Background()

	mr.Set("business:biz-1", `{"id":"biz-1"}`)
	mr.SetAdd("category:plumbing", "biz-1")

	infos, err := inspector.ListKeys(ctx, "*biz-1*")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "business:biz-1", infos[0].Key)
	assert.Equal(t, "string", infos[0].Type)

	infos, err = inspector.ListKeys(ctx, "*")
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestStoreInspector_DeleteKeys(t *testing.T) {
	t.Parallel()

	mr, client := newTestClient(t)
	inspector := NewStoreInspector(client)
	ctx := context.Background()

	mr.Set("business:biz-1", `{}`)
	mr.Set("addesign:biz-1", `{}`)

	deleted, err := inspector.DeleteKeys(ctx, "business:biz-1", "addesign:biz-1", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = inspector.DeleteKeys(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
