// File: utils/constants.go
package utils

// CalendarCacheKey is the Redis key holding the last merged calendar snapshot.
const CalendarCacheKey = "calendar:snapshot"
