package rate_limit

import (
	"math"
	"time"
)

// Keys are accounted against fixed hour windows: the window containing
// a request starts at the top of its hour and every key gets rate_limit
// requests per window. The counter itself is incremented store-side in
// a single conditional UPDATE; this package only derives window state.

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Limit         int       `json:"limit"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

// WindowStart returns the boundary of the fixed hour window containing now.
func WindowStart(now time.Time) time.Time {
	return now.UTC().Truncate(time.Hour)
}

// Evaluate derives the rate-limit state of a key whose stored window
// began at windowStart with count accounted requests. A nil or stale
// windowStart means no requests have been accounted this hour.
func Evaluate(limit int, windowStart *time.Time, count int, now time.Time) *RateLimitResult {
	currentStart := WindowStart(now)
	resetTime := currentStart.Add(time.Hour)

	accounted := 0
	if windowStart != nil && !windowStart.Before(currentStart) {
		accounted = count
	}

	remaining := limit - accounted
	if remaining < 0 {
		remaining = 0
	}

	result := &RateLimitResult{
		Allowed:   accounted < limit,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}

	if !result.Allowed {
		retryAfter := int(math.Ceil(resetTime.Sub(now).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		result.RetryAfterSec = retryAfter
	}

	return result
}
