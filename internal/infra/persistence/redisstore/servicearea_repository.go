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

// serviceAreaRepository implements the domain.ServiceAreaRepository
// interface on the store's JSON document keys.
type serviceAreaRepository struct {
	client redis.UniversalClient
}

// NewServiceAreaRepository is the constructor for serviceAreaRepository.
func NewServiceAreaRepository(client redis.UniversalClient) repository.ServiceAreaRepository {
	return &serviceAreaRepository{client: client}
}

// FindServiceAreaByBusiness retrieves the service-area record of a business.
func (repo *serviceAreaRepository) FindServiceAreaByBusiness(ctx context.Context, businessID string) (*entity.ServiceArea, error) {
	payload, err := repo.client.Get(ctx, serviceAreaKey(businessID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrServiceAreaNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find service area")
	}

	area := &entity.ServiceArea{}
	if err := json.Unmarshal(payload, area); err != nil {
		return nil, errors.Wrap(err, "failed to decode service area")
	}

	return area, nil
}

// SaveServiceArea writes the service-area record of a business,
// replacing any previous one.
func (repo *serviceAreaRepository) SaveServiceArea(ctx context.Context, area *entity.ServiceArea) error {
	payload, err := json.Marshal(area)
	if err != nil {
		return errors.Wrap(err, "failed to encode service area")
	}

	if err := repo.client.Set(ctx, serviceAreaKey(area.BusinessID), payload, 0).Err(); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save service area")
	}

	return nil
}

// DeleteServiceArea removes the service-area record of a business,
// reverting it to the implicit registration-ZIP service area. Deleting
// an absent record is not an error.
func (repo *serviceAreaRepository) DeleteServiceArea(ctx context.Context, businessID string) error {
	if err := repo.client.Del(ctx, serviceAreaKey(businessID)).Err(); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete service area")
	}

	return nil
}
