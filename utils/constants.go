package utils

import "time"

// RatingLockPrefix prefixes the Redis keys of per-business rating locks.
const RatingLockPrefix = "lock:rating:"

// RatingLockTTL bounds how long a crashed holder can block a business's rating.
const RatingLockTTL = 5 * time.Second

// DefaultNearbyRadiusKm applies when a nearby search gives no radius.
const DefaultNearbyRadiusKm = 5.0

// Trending window and size defaults and caps.
const (
	DefaultTrendingDays  = 7
	DefaultTrendingLimit = 10
	MaxTrendingDays      = 365
	MaxTrendingLimit     = 100
)

// AnalyticsTopN is the size of every ranked list in the admin report.
const AnalyticsTopN = 5

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72
