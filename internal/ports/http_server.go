package ports

import (
	"context"
)

// HTTPServer defines the interface for the web-facing transport
type HTTPServer interface {
	// Start starts serving requests
	Start() error

	// Stop gracefully shuts the server down
	Stop(ctx context.Context) error
}
