package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
	"github.com/codecafelab/phoneauth/internal/pkg/goerror"
)

type ConfirmPasswordInput struct {
	Phone       string `validate:"required"`
	VerifyToken string `validate:"required"`
	Pin         string `validate:"required,pin"`
}

type ConfirmPasswordOutput struct {
	Token     string
	Phone     string
	AccountID int64
}

// ConfirmPassword consumes a verified challenge: it creates the account with
// the bcrypt-hashed PIN and issues the first credential. The unique index on
// phone is the final guard against two confirms both succeeding.
func (s *Usecase) ConfirmPassword(ctx context.Context, in ConfirmPasswordInput) (*ConfirmPasswordOutput, error) {
	ctx, span := s.startSpan(ctx, "ConfirmPassword")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	phone, err := s.canonicalPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	var out *ConfirmPasswordOutput
	if err := s.withPhoneLock(ctx, phone, func(ctx context.Context) error {
		out, err = s.confirmPassword(ctx, phone, in)
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Usecase) confirmPassword(ctx context.Context, phone string, in ConfirmPasswordInput) (*ConfirmPasswordOutput, error) {
	if _, err := s.repoDB.GetAccountByPhone(ctx, phone); err == nil {
		slog.WarnContext(ctx, "password confirm for registered phone", "phone", phone)
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	ch, err := s.repoDB.GetChallengeByPhone(ctx, phone)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password confirm without challenge", "phone", phone)
		return nil, ErrNoChallenge
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get challenge by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	if ch.ErrorCount == errorLockout {
		slog.WarnContext(ctx, "password confirm while error counter is pinned", "phone", phone)
		return nil, ErrSuspectedAbuse
	}

	// A challenge that never passed OTP verification has no verify token
	// stored, so this comparison also rejects out-of-order confirms.
	if !s.hmac.Verify(ch.VerifyToken, in.VerifyToken) {
		ch.ErrorCount = errorLockout
		ch.UpdatedAt = s.clock.Now()
		if err := s.repoDB.UpsertChallenge(ctx, *ch); err != nil {
			slog.ErrorContext(ctx, "failed to repo upsert challenge", "phone", phone, "error", err)
			return nil, goerror.NewServer(err)
		}

		slog.WarnContext(ctx, "password confirm with invalid verify token", "phone", phone)
		return nil, ErrInvalidToken
	}

	if s.clock.Now().Sub(ch.UpdatedAt) > s.confirmTTL() {
		slog.WarnContext(ctx, "password confirm after expiry window", "phone", phone)
		return nil, ErrConfirmationExpired
	}

	pinHash, err := s.bcrypt.Hash(in.Pin)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash pin", "error", err)
		return nil, goerror.NewServer(err)
	}

	acc := entity.Account{
		ID:       s.uid.Generate(),
		Phone:    phone,
		Password: string(pinHash),
		Status:   entity.AccountStatusActive,
	}
	if err := s.repoDB.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "account already created for phone", "phone", phone)
			return nil, ErrAlreadyRegistered
		}

		slog.ErrorContext(ctx, "failed to repo create account", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(acc.ID, phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ConfirmPasswordOutput{Token: token, Phone: phone, AccountID: acc.ID}, nil
}
