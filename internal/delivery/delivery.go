// Package delivery holds the long-running entry points of the service.
package delivery

import "context"

// Delivery is a server started by the application; it blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
