// Package delivery defines the contract every transport-facing server
// implements, whatever protocol it speaks.
package delivery

import "context"

// Delivery is a long-running server that blocks in Serve until it fails or
// is shut down through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
