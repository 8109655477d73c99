// Package lifecycle defines timing constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 15 * time.Second
