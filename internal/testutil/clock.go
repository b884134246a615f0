package testutil

import "time"

// MatchDay is a Saturday evening kickoff used as the fixed "now" across tests.
var MatchDay = time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// StepClock returns a clock that starts at start and advances by step on every call,
// so consecutive runs get distinct timestamps.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
