// Package delivery defines the entry points that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running server started by the application root.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
