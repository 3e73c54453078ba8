// Package delivery defines the transport-facing entry points of the service.
package delivery

import "context"

// Delivery is a long-running transport surface, started by the application
// runner and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
