package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
	"github.com/codecafelab/phoneauth/internal/pkg/clock"
	"github.com/codecafelab/phoneauth/internal/pkg/goerror"
)

type RequestOTPInput struct {
	Phone string `validate:"required"`
}

type RequestOTPOutput struct {
	Phone         string
	RememberToken string
}

// RequestOTP issues or rotates the OTP challenge for a phone. The challenge
// row doubles as the daily rate-limit ledger: three requests per calendar
// day, with a full reset when the date rolls over.
func (s *Usecase) RequestOTP(ctx context.Context, in RequestOTPInput) (*RequestOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "RequestOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	phone, err := s.canonicalPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	var out *RequestOTPOutput
	if err := s.withPhoneLock(ctx, phone, func(ctx context.Context) error {
		out, err = s.requestOTP(ctx, phone)
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Usecase) requestOTP(ctx context.Context, phone string) (*RequestOTPOutput, error) {
	if _, err := s.repoDB.GetAccountByPhone(ctx, phone); err == nil {
		slog.WarnContext(ctx, "otp requested for registered phone", "phone", phone)
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	rememberToken, err := s.tokens.Generate(rememberTokenSegments)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate remember token", "error", err)
		return nil, goerror.NewServer(err)
	}

	rtHash, err := s.hmac.Hash(rememberToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash remember token", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()

	ch, err := s.repoDB.GetChallengeByPhone(ctx, phone)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		code, cerr := s.otp.Generate()
		if cerr != nil {
			slog.ErrorContext(ctx, "failed to generate otp code", "error", cerr)
			return nil, goerror.NewServer(cerr)
		}

		ch = &entity.Challenge{
			Phone:         phone,
			OtpCode:       code,
			RememberToken: string(rtHash),
			State:         entity.ChallengeStateIssued,
			RequestCount:  1,
			ErrorCount:    0,
			UpdatedAt:     now,
		}

	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get challenge by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)

	default:
		sameDate := clock.SameDate(ch.UpdatedAt, now)

		if sameDate && ch.ErrorCount == errorLockout {
			slog.WarnContext(ctx, "otp requested while error counter is pinned", "phone", phone)
			return nil, ErrSuspectedAbuse
		}

		if sameDate && ch.RequestCount == maxDailyRequests {
			slog.WarnContext(ctx, "otp daily request limit reached", "phone", phone)
			return nil, ErrDailyLimitExceeded
		}

		code, cerr := s.otp.Generate()
		if cerr != nil {
			slog.ErrorContext(ctx, "failed to generate otp code", "error", cerr)
			return nil, goerror.NewServer(cerr)
		}

		if sameDate {
			ch.RequestCount++
		} else {
			// New calendar day: the ledger starts over.
			ch.RequestCount = 1
			ch.ErrorCount = 0
		}
		ch.OtpCode = code
		ch.RememberToken = string(rtHash)
		ch.State = entity.ChallengeStateIssued
		ch.UpdatedAt = now
	}

	if err := s.repoDB.UpsertChallenge(ctx, *ch); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert challenge", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	evt := OtpIssuedEvent{Phone: phone, OtpCode: ch.OtpCode, RequestCount: ch.RequestCount}
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishOtpIssued(ctx, evt); err != nil {
			slog.WarnContext(ctx, "failed to publish otp issued event", "phone", evt.Phone, "error", err)
		}
		return nil
	})

	return &RequestOTPOutput{Phone: phone, RememberToken: rememberToken}, nil
}
