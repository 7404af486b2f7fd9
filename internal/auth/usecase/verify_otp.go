package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
	"github.com/codecafelab/phoneauth/internal/pkg/clock"
	"github.com/codecafelab/phoneauth/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Phone         string `validate:"required"`
	RememberToken string `validate:"required"`
	OtpCode       string `validate:"required,otp"`
}

type VerifyOTPOutput struct {
	Phone       string
	VerifyToken string
}

// VerifyOTP checks the submitted OTP against the live challenge. A remember
// token mismatch pins the error counter to its ceiling on the spot; a wrong
// code only increments it. Success hands back the verify token for the
// confirmation step and re-arms both counters at one.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	phone, err := s.canonicalPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	var out *VerifyOTPOutput
	if err := s.withPhoneLock(ctx, phone, func(ctx context.Context) error {
		out, err = s.verifyOTP(ctx, phone, in)
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Usecase) verifyOTP(ctx context.Context, phone string, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	if _, err := s.repoDB.GetAccountByPhone(ctx, phone); err == nil {
		slog.WarnContext(ctx, "otp verify for registered phone", "phone", phone)
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	ch, err := s.repoDB.GetChallengeByPhone(ctx, phone)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp verify without challenge", "phone", phone)
		return nil, ErrNoChallenge
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get challenge by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	sameDate := clock.SameDate(ch.UpdatedAt, now)

	if sameDate && ch.ErrorCount == errorLockout {
		slog.WarnContext(ctx, "otp verify while error counter is pinned", "phone", phone)
		return nil, ErrSuspectedAbuse
	}

	if !s.hmac.Verify(ch.RememberToken, in.RememberToken) {
		ch.ErrorCount = errorLockout
		ch.UpdatedAt = now
		if err := s.repoDB.UpsertChallenge(ctx, *ch); err != nil {
			slog.ErrorContext(ctx, "failed to repo upsert challenge", "phone", phone, "error", err)
			return nil, goerror.NewServer(err)
		}

		slog.WarnContext(ctx, "otp verify with invalid remember token", "phone", phone)
		return nil, ErrInvalidToken
	}

	if now.Sub(ch.UpdatedAt) > s.otpTTL() {
		slog.WarnContext(ctx, "otp verify after expiry window", "phone", phone)
		return nil, ErrOtpExpired
	}

	if ch.OtpCode != in.OtpCode {
		if sameDate {
			ch.ErrorCount++
		} else {
			ch.ErrorCount = 1
		}
		ch.UpdatedAt = now
		if err := s.repoDB.UpsertChallenge(ctx, *ch); err != nil {
			slog.ErrorContext(ctx, "failed to repo upsert challenge", "phone", phone, "error", err)
			return nil, goerror.NewServer(err)
		}

		slog.WarnContext(ctx, "otp verify with incorrect code", "phone", phone, "error_count", ch.ErrorCount)
		return nil, ErrIncorrectOtp
	}

	verifyToken, err := s.tokens.Generate(verifyTokenSegments)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verify token", "error", err)
		return nil, goerror.NewServer(err)
	}

	vtHash, err := s.hmac.Hash(verifyToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash verify token", "error", err)
		return nil, goerror.NewServer(err)
	}

	// A successful verify still counts as one used attempt for the day, so
	// the counters re-arm at one instead of clearing.
	ch.VerifyToken = string(vtHash)
	ch.State = entity.ChallengeStateOtpVerified
	ch.RequestCount = 1
	ch.ErrorCount = 1
	ch.UpdatedAt = now

	if err := s.repoDB.UpsertChallenge(ctx, *ch); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert challenge", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{Phone: phone, VerifyToken: verifyToken}, nil
}
