// Package usecase implements the OTP/login state machine: challenge
// issuance, OTP verification, password confirmation, and login, gated by
// time windows, daily counters, and token chaining.
package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
	"github.com/codecafelab/phoneauth/internal/pkg/clock"
	"github.com/codecafelab/phoneauth/internal/pkg/config"
	"github.com/codecafelab/phoneauth/internal/pkg/goerror"
	"github.com/codecafelab/phoneauth/internal/pkg/goroutine"
	"github.com/codecafelab/phoneauth/internal/pkg/hash"
	"github.com/codecafelab/phoneauth/internal/pkg/instrument"
	"github.com/codecafelab/phoneauth/internal/pkg/jwt"
	"github.com/codecafelab/phoneauth/internal/pkg/keylock"
	"github.com/codecafelab/phoneauth/internal/pkg/otpcode"
	"github.com/codecafelab/phoneauth/internal/pkg/phone"
	"github.com/codecafelab/phoneauth/internal/pkg/token"
	"github.com/codecafelab/phoneauth/internal/pkg/uid"
	"github.com/codecafelab/phoneauth/internal/pkg/validator"
)

// Protocol thresholds. These are invariants of the flow, not tunables.
const (
	// maxDailyRequests caps RequestOTP calls per phone per calendar day.
	maxDailyRequests int16 = 3

	// errorLockout is the error counter ceiling. A token mismatch jumps the
	// counter straight here; once reached, the phone is blocked until the
	// date rolls over.
	errorLockout int16 = 5

	// freezeAfterFailures freezes an account on the wrong-PIN attempt that
	// follows this many same-day failures (the 3rd same-day failure).
	freezeAfterFailures int16 = 2
)

const (
	rememberTokenSegments = 2
	verifyTokenSegments   = 3
)

// OtpIssuedEvent is emitted after every issued or rotated OTP.
type OtpIssuedEvent struct {
	Phone        string
	OtpCode      string
	RequestCount int16
}

// AccountFrozenEvent is emitted when a login freeze trips.
type AccountFrozenEvent struct {
	AccountID int64
	Phone     string
}

type repoMessaging interface {
	PublishOtpIssued(ctx context.Context, msg OtpIssuedEvent) error
	PublishAccountFrozen(ctx context.Context, msg AccountFrozenEvent) error
}

type repoDB interface {
	GetAccountByPhone(ctx context.Context, phone string) (*entity.Account, error)
	CreateAccount(ctx context.Context, acc entity.Account) error
	SaveAccountLoginState(ctx context.Context, acc entity.Account) error

	GetChallengeByPhone(ctx context.Context, phone string) (*entity.Challenge, error)
	UpsertChallenge(ctx context.Context, ch entity.Challenge) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	locker        keylock.Locker
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	bcrypt        hash.Hash
	uid           uid.NumberID
	tokens        token.Generator
	otp           otpcode.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Locker        keylock.Locker
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	Bcrypt        hash.Hash
	UID           uid.NumberID
	Tokens        token.Generator
	Otp           otpcode.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		locker:        dep.Locker,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		tokens:        dep.Tokens,
		otp:           dep.Otp,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

// canonicalPhone normalizes raw to the E.164 digits used as the store and
// lock key.
func (s *Usecase) canonicalPhone(raw string) (string, error) {
	p, ok := phone.Canonicalize(raw, s.cfg.GetString("modules.auth.default_region"))
	if !ok {
		return "", goerror.NewInvalidInput(nil, "phone", "phone must be a valid phone number")
	}
	return p, nil
}

// withPhoneLock serializes a read-modify-write sequence for one phone across
// instances.
func (s *Usecase) withPhoneLock(ctx context.Context, phone string, fn func(context.Context) error) error {
	return s.locker.WithLock(ctx, "auth:phone:"+phone, fn)
}

func (s *Usecase) otpTTL() time.Duration {
	return s.cfg.GetSecond("modules.auth.otp_ttl_seconds")
}

func (s *Usecase) confirmTTL() time.Duration {
	return s.cfg.GetMinute("modules.auth.confirm_ttl_minutes")
}
