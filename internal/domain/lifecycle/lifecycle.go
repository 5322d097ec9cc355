// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single component may take to start up or
// shut down before the hook gives up.
const DefaultTimeout = 30 * time.Second
