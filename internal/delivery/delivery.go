// Package delivery defines the contract every transport server of the
// directory fulfills.
package delivery

import "context"

// Delivery is one serving surface (public HTTP, admin API). Serve blocks
// until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
