package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

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
	"github.com/codecafelab/phoneauth/internal/pkg/uid"
	"github.com/codecafelab/phoneauth/internal/pkg/validator"
)

const (
	testPhone = "081234567890"
	testOtp   = "123456"
	testPin   = "12345678"
)

type fakeRepo struct {
	mu         sync.Mutex
	accounts   map[string]entity.Account
	challenges map[string]entity.Challenge
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		accounts:   map[string]entity.Account{},
		challenges: map[string]entity.Challenge{},
	}
}

func (r *fakeRepo) GetAccountByPhone(_ context.Context, phone string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[phone]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &acc, nil
}

func (r *fakeRepo) CreateAccount(_ context.Context, acc entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[acc.Phone]; ok {
		return goerror.ErrConflict
	}
	r.accounts[acc.Phone] = acc
	return nil
}

func (r *fakeRepo) SaveAccountLoginState(_ context.Context, acc entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[acc.Phone] = acc
	return nil
}

func (r *fakeRepo) GetChallengeByPhone(_ context.Context, phone string) (*entity.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[phone]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &ch, nil
}

func (r *fakeRepo) UpsertChallenge(_ context.Context, ch entity.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.challenges[ch.Phone] = ch
	return nil
}

func (r *fakeRepo) challenge(t *testing.T, phone string) entity.Challenge {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[phone]
	if !ok {
		t.Fatalf("expected challenge stored for phone %q", phone)
	}
	return ch
}

func (r *fakeRepo) account(t *testing.T, phone string) entity.Account {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[phone]
	if !ok {
		t.Fatalf("expected account stored for phone %q", phone)
	}
	return acc
}

type fakePublisher struct {
	mu        sync.Mutex
	otpIssued []OtpIssuedEvent
	frozen    []AccountFrozenEvent
}

func (p *fakePublisher) PublishOtpIssued(_ context.Context, msg OtpIssuedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.otpIssued = append(p.otpIssued, msg)
	return nil
}

func (p *fakePublisher) PublishAccountFrozen(_ context.Context, msg AccountFrozenEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frozen = append(p.frozen, msg)
	return nil
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type seqTokens struct {
	mu sync.Mutex
	n  int
}

func (g *seqTokens) Generate(segments int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	return fmt.Sprintf("tok%d-seg%d", g.n, segments), nil
}

type seqNumberID struct {
	mu sync.Mutex
	n  int64
}

func (g *seqNumberID) Generate() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	return g.n
}

var _ clock.Clocker = (*manualClock)(nil)

type fixture struct {
	uc        *Usecase
	repo      *fakeRepo
	publisher *fakePublisher
	clock     *manualClock
	goroutine *goroutine.Manager
	jwt       jwt.JWT
}

const testConfigYAML = `
modules:
  auth:
    default_region: "ID"
    otp_ttl_seconds: 90
    confirm_ttl_minutes: 5
`

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	clk := &manualClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "phoneauth-test",
		Audiences: []string{"phoneauth-api"},
		TTL:       time.Hour,
		Clock:     clk,
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	repo := newFakeRepo()
	publisher := &fakePublisher{}
	gom := goroutine.NewManager(10)

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: publisher,
		Locker:        keylock.NewNoop(),
		Validator:     v10,
		Config:        cfg,
		HMAC:          hash.NewHMACSHA256("test-hmac-secret"),
		Bcrypt:        hash.NewBcrypt(4, ""),
		UID:           &seqNumberID{},
		Tokens:        &seqTokens{},
		Otp:           otpcode.NewStatic(testOtp),
		Clock:         clk,
		JWT:           signer,
		Instrument:    instrument.NewNoop(),
		Goroutine:     gom,
	})

	return &fixture{
		uc:        uc,
		repo:      repo,
		publisher: publisher,
		clock:     clk,
		goroutine: gom,
		jwt:       signer,
	}
}

// register runs the full request/verify/confirm flow and returns the
// canonical phone and account id.
func (f *fixture) register(t *testing.T, rawPhone, pin string) (string, int64) {
	t.Helper()

	reqOut, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: rawPhone})
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}

	verOut, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
		Phone:         rawPhone,
		RememberToken: reqOut.RememberToken,
		OtpCode:       testOtp,
	})
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}

	confOut, err := f.uc.ConfirmPassword(context.Background(), ConfirmPasswordInput{
		Phone:       rawPhone,
		VerifyToken: verOut.VerifyToken,
		Pin:         pin,
	})
	if err != nil {
		t.Fatalf("confirm password: %v", err)
	}

	return confOut.Phone, confOut.AccountID
}
