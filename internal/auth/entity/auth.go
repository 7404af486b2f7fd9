package entity

import "time"

// Account is a registered subscriber, keyed by canonical phone number.
type Account struct {
	ID            int64
	Phone         string
	Password      string // bcrypt hash of the PIN
	FailureCount  int16
	Status        AccountStatus
	LastFailureAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Challenge is the per-phone OTP ledger. At most one row exists per phone;
// it is mutated in place and never deleted, so its counters double as the
// daily rate-limit state.
//
// RememberToken and VerifyToken hold HMAC digests of the issued tokens,
// never the tokens themselves. UpdatedAt anchors every expiry and
// same-day-window check.
type Challenge struct {
	Phone         string
	OtpCode       string
	RememberToken string
	VerifyToken   string
	State         ChallengeState
	RequestCount  int16
	ErrorCount    int16
	UpdatedAt     time.Time
}
