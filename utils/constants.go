// File: utils/constants.go
package utils

import "time"

// DashboardCachePrefix is the prefix used for Redis dashboard-count cache keys.
const DashboardCachePrefix = "dashboard:counts:"

// DashboardCacheTTL is the time-to-live for dashboard-count cache entries.
const DashboardCacheTTL = 10 * time.Second
