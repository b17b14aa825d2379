// Package delivery defines the contract every transport server fulfils so
// the application runtime can start them uniformly.
package delivery

import "context"

// Delivery is a transport server started by the application runtime.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
