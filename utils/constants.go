package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 24 * time.Hour

// CalendarCachePrefix is the prefix for cached month-availability grids.
const CalendarCachePrefix = "calendar:"

// CalendarCacheTTL keeps month grids fresh enough that a new block or order
// shows up within a minute even without explicit invalidation.
const CalendarCacheTTL = time.Minute
