package redisstore

import (
	"context"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 200

// categoryIndexRepository implements the domain.CategoryIndexRepository
// interface on the store's category membership sets.
type categoryIndexRepository struct {
	client redis.UniversalClient
}

// NewCategoryIndexRepository is the constructor for categoryIndexRepository.
func NewCategoryIndexRepository(client redis.UniversalClient) repository.CategoryIndexRepository {
	return &categoryIndexRepository{client: client}
}

// Members returns the business IDs stored under one category key
// variant. An absent key reads as an empty set.
func (repo *categoryIndexRepository) Members(ctx context.Context, key string) ([]string, error) {
	members, err := repo.client.SMembers(ctx, categoryKey(key)).Result()
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to read category members")
	}

	return members, nil
}

// AddMember adds a business to one category key variant.
func (repo *categoryIndexRepository) AddMember(ctx context.Context, key, businessID string) error {
	if err := repo.client.SAdd(ctx, categoryKey(key), businessID).Err(); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to add category member")
	}

	return nil
}

// RemoveMember removes a business from one category key variant and
// reports whether it was actually a member.
func (repo *categoryIndexRepository) RemoveMember(ctx context.Context, key, businessID string) (bool, error) {
	removed, err := repo.client.SRem(ctx, categoryKey(key), businessID).Result()
	if err != nil {
		return false, domainerrors.NewStoreExecuteError(err, "failed to remove category member")
	}

	return removed > 0, nil
}

// RemoveMemberEverywhere scans every category set in the store and
// removes the business from each, returning the keys it was actually a
// member of. This is the repair path for index entries whose category
// spelling no page resolves anymore.
func (repo *categoryIndexRepository) RemoveMemberEverywhere(ctx context.Context, businessID string) ([]string, error) {
	var removedFrom []string

	iter := repo.client.Scan(ctx, 0, categoryKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		removed, err := repo.client.SRem(ctx, key, businessID).Result()
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to remove category member")
		}
		if removed > 0 {
			removedFrom = append(removedFrom, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to scan category keys")
	}

	return removedFrom, nil
}
