package redisstore

import (
	"context"
	"encoding/json"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// businessRepository implements the domain.BusinessRepository interface
// on the store's JSON document keys.
type businessRepository struct {
	client redis.UniversalClient
}

// NewBusinessRepository is the constructor for businessRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewBusinessRepository(client redis.UniversalClient) repository.BusinessRepository {
	return &businessRepository{client: client}
}

// CreateBusiness persists a new registration record. The write is
// conditional on the key not existing so a replayed registration cannot
// overwrite a record.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	payload, err := json.Marshal(business)
	if err != nil {
		return errors.Wrap(err, "failed to encode business")
	}

	created, err := repo.client.SetNX(ctx, businessKey(business.ID), payload, 0).Result()
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create business")
	}
	if !created {
		return repository.ErrDuplicateBusiness
	}

	return nil
}

// FindBusinessByID retrieves a single registration record by business ID.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id string) (*entity.Business, error) {
	payload, err := repo.client.Get(ctx, businessKey(id)).Bytes()
	if err != nil {
		// If the key is absent, return a domain-specific error.
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find business by ID")
	}

	business := &entity.Business{}
	if err := json.Unmarshal(payload, business); err != nil {
		return nil, errors.Wrap(err, "failed to decode business")
	}

	return business, nil
}

// UpdateBusiness replaces an existing registration record.
func (repo *businessRepository) UpdateBusiness(ctx context.Context, business *entity.Business) error {
	payload, err := json.Marshal(business)
	if err != nil {
		return errors.Wrap(err, "failed to encode business")
	}

	replaced, err := repo.client.SetXX(ctx, businessKey(business.ID), payload, 0).Result()
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update business")
	}
	if !replaced {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// DeleteBusiness removes a registration record. Deleting an absent
// record is not an error.
func (repo *businessRepository) DeleteBusiness(ctx context.Context, id string) error {
	if err := repo.client.Del(ctx, businessKey(id)).Err(); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete business")
	}

	return nil
}
