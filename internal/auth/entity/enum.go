package entity

// AccountStatus is the lifecycle state of an account.
type AccountStatus int16

const (
	// AccountStatusUnknown means the status is not known / not set.
	AccountStatusUnknown AccountStatus = 0

	// AccountStatusActive means the account may log in.
	AccountStatusActive AccountStatus = 1

	// AccountStatusFrozen means the account is locked after repeated wrong
	// PIN attempts. There is no automatic unfreeze.
	AccountStatusFrozen AccountStatus = 2
)

func (s AccountStatus) String() string {
	switch s {
	case AccountStatusActive:
		return "Active"
	case AccountStatusFrozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}

// ChallengeState is the progress of an OTP challenge.
type ChallengeState int16

const (
	// ChallengeStateUnknown means the state is not known / not set.
	ChallengeStateUnknown ChallengeState = 0

	// ChallengeStateIssued means an OTP has been issued and not yet verified.
	ChallengeStateIssued ChallengeState = 1

	// ChallengeStateOtpVerified means the OTP was verified and the challenge
	// is waiting for password confirmation.
	ChallengeStateOtpVerified ChallengeState = 2
)

func (s ChallengeState) String() string {
	switch s {
	case ChallengeStateIssued:
		return "Issued"
	case ChallengeStateOtpVerified:
		return "OtpVerified"
	default:
		return "Unknown"
	}
}
