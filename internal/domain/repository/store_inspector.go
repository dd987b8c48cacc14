package repository

import "context"

// KeyInfo describes one raw store key for admin inspection.
type KeyInfo struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

// StoreInspector exposes the raw key-space operations the admin repair
// tools need: listing keys by prefix pattern, reading value types, and
// deleting keys outright.
type StoreInspector interface {
	// ListKeys returns every key matching the glob-style pattern along
	// with its store value type.
	ListKeys(ctx context.Context, pattern string) ([]KeyInfo, error)

	// DeleteKeys removes the given keys and reports how many existed.
	DeleteKeys(ctx context.Context, keys ...string) (int64, error)
}
