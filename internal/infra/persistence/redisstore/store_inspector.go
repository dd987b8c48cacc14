package redisstore

import (
	"context"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// storeInspector implements the domain.StoreInspector interface. It is
// the only component that touches store keys without going through the
// typed repositories; the admin surface needs the raw view to diagnose
// records the typed paths no longer reach.
type storeInspector struct {
	client redis.UniversalClient
}

// NewStoreInspector is the constructor for storeInspector.
func NewStoreInspector(client redis.UniversalClient) repository.StoreInspector {
	return &storeInspector{client: client}
}

// ListKeys returns every key matching the glob pattern together with its
// value type.
func (repo *storeInspector) ListKeys(ctx context.Context, pattern string) ([]repository.KeyInfo, error) {
	var keys []string

	iter := repo.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to scan keys")
	}

	infos := make([]repository.KeyInfo, 0, len(keys))
	for _, key := range keys {
		keyType, err := repo.client.Type(ctx, key).Result()
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to read key type")
		}
		infos = append(infos, repository.KeyInfo{Key: key, Type: keyType})
	}

	return infos, nil
}

// DeleteKeys removes the given keys and returns how many existed.
func (repo *storeInspector) DeleteKeys(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := repo.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, domainerrors.NewStoreExecuteError(err, "failed to delete keys")
	}

	return deleted, nil
}
