package clock

import "time"

// Clocker abstracts the wall clock so expiry and rate-window logic can run
// against a controlled time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker reading the system clock.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// SameDate reports whether a and b fall on the same calendar date in UTC.
// Daily counters reset on a date change rather than a rolling 24h window.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
