// Package lifecycle holds shared constants for application startup and
// shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds individual lifecycle steps such as database pings
// and graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
