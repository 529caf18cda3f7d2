// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis chat session keys.
const SessionCachePrefix = "session:ctx:"

// UsageCachePrefix is the prefix used for Redis AI usage counter keys.
const UsageCachePrefix = "usage:"

// UsageCacheTTL is the time-to-live for daily usage counter keys. Two days
// covers the full calendar day the counter belongs to plus clock skew.
const UsageCacheTTL = 48 * time.Hour
