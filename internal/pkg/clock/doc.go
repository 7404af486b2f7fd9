// Package clock provides a tiny time abstraction.
//
// Code that gates behavior on time (OTP expiry, daily request windows,
// failure bookkeeping) depends on the Clocker interface instead of calling
// time.Now() directly, so tests can drive the clock deterministically.
package clock
