package repository

import "context"

// CategoryIndexRepository defines the interface for the category
// membership sets. One logical category may live under several raw keys
// (historical aliases); callers union across key variants themselves.
type CategoryIndexRepository interface {
	// Members returns the business IDs stored under one raw category
	// key. A missing key is an empty set, not an error.
	Members(ctx context.Context, key string) ([]string, error)

	// AddMember adds a business ID to one raw category key's set.
	AddMember(ctx context.Context, key, businessID string) error

	// RemoveMember removes a business ID from one raw category key's set
	// and reports whether it was actually a member. Removing an absent
	// member is a no-op.
	RemoveMember(ctx context.Context, key, businessID string) (bool, error)

	// RemoveMemberEverywhere removes a business ID from every category
	// set in the store and returns the keys it was actually removed from.
	// Used by the admin purge flow.
	RemoveMemberEverywhere(ctx context.Context, businessID string) ([]string, error)
}
