// Package delivery holds the entry points that expose the use cases: the HTTP
// API, the push worker and the background poller.
package delivery

import "context"

// Delivery is a long-running entry point started by fx and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
