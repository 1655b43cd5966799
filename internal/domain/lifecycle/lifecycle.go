// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook (DB ping, server shutdown, client close).
const DefaultTimeout = 10 * time.Second
