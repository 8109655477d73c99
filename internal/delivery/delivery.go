// Package delivery declares the contract every transport (API server, event worker) implements.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
