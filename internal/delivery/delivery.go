// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application, such as an HTTP server.
// Serve blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
