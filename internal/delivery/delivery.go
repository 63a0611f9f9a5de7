// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a server that accepts inbound traffic until its context or
// lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
