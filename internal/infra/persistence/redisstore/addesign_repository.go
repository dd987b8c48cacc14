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

// adDesignRepository implements the domain.AdDesignRepository interface
// on the store's JSON document keys.
type adDesignRepository struct {
	client redis.UniversalClient
}

// NewAdDesignRepository is the constructor for adDesignRepository.
func NewAdDesignRepository(client redis.UniversalClient) repository.AdDesignRepository {
	return &adDesignRepository{client: client}
}

// FindAdDesignByBusiness retrieves the ad-design record of a business.
func (repo *adDesignRepository) FindAdDesignByBusiness(ctx context.Context, businessID string) (*entity.AdDesign, error) {
	payload, err := repo.client.Get(ctx, adDesignKey(businessID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrAdDesignNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find ad design")
	}

	adDesign := &entity.AdDesign{}
	if err := json.Unmarshal(payload, adDesign); err != nil {
		return nil, errors.Wrap(err, "failed to decode ad design")
	}

	return adDesign, nil
}

// SaveAdDesign writes the ad-design record of a business, replacing any
// previous one.
func (repo *adDesignRepository) SaveAdDesign(ctx context.Context, adDesign *entity.AdDesign) error {
	payload, err := json.Marshal(adDesign)
	if err != nil {
		return errors.Wrap(err, "failed to encode ad design")
	}

	if err := repo.client.Set(ctx, adDesignKey(adDesign.BusinessID), payload, 0).Err(); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save ad design")
	}

	return nil
}

// DeleteAdDesign removes the ad-design record of a business.
func (repo *adDesignRepository) DeleteAdDesign(ctx context.Context, businessID string) error {
	if err := repo.client.Del(ctx, adDesignKey(businessID)).Err(); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete ad design")
	}

	return nil
}
