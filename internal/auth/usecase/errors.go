package usecase

import "github.com/codecafelab/phoneauth/internal/pkg/goerror"

// Domain failures of the OTP/login flow. All are terminal for the call; the
// caller may retry the whole operation subject to the rate and lockout
// limits.
var (
	// ErrAlreadyRegistered rejects OTP flow steps once an account exists
	// for the phone.
	ErrAlreadyRegistered = goerror.NewBusiness("Phone number is already registered.", goerror.CodeConflict)

	// ErrNotRegistered rejects login for a phone without an account.
	ErrNotRegistered = goerror.NewBusiness("Phone number is not registered yet.", goerror.CodeNotFound)

	// ErrNoChallenge rejects verify/confirm calls with no prior OTP request.
	ErrNoChallenge = goerror.NewBusiness("No OTP request found for this phone number.", goerror.CodeNotFound)

	// ErrDailyLimitExceeded rejects the 4th OTP request within one calendar day.
	ErrDailyLimitExceeded = goerror.NewBusiness("OTP requests are allowed only 3 times per day. Please try again tomorrow.", goerror.CodeTooManyRequest)

	// ErrSuspectedAbuse blocks a phone whose error counter hit the ceiling.
	ErrSuspectedAbuse = goerror.NewBusiness("This request may be an attack. If not, try again tomorrow.", goerror.CodeUnauthorized)

	// ErrInvalidToken rejects a remember or verify token mismatch. The
	// mismatch also pins the error counter to its ceiling.
	ErrInvalidToken = goerror.NewBusiness("Token is invalid.", goerror.CodeUnauthorized)

	// ErrOtpExpired rejects VerifyOTP after the OTP window closed.
	ErrOtpExpired = goerror.NewBusiness("OTP is expired.", goerror.CodeForbidden)

	// ErrConfirmationExpired rejects ConfirmPassword after the confirm window closed.
	ErrConfirmationExpired = goerror.NewBusiness("Your request is expired. Please try again.", goerror.CodeForbidden)

	// ErrIncorrectOtp rejects a wrong OTP code.
	ErrIncorrectOtp = goerror.NewBusiness("OTP is incorrect.", goerror.CodeUnauthorized)

	// ErrWrongPassword rejects a wrong PIN at login.
	ErrWrongPassword = goerror.NewBusiness("Password is wrong.", goerror.CodeUnauthorized)

	// ErrAccountLocked rejects login on a frozen account. Unfreezing is a
	// manual operation.
	ErrAccountLocked = goerror.NewBusiness("Your account is temporarily locked. Please contact us.", goerror.CodeForbidden)
)
