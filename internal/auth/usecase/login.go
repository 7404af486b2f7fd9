package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
	"github.com/codecafelab/phoneauth/internal/pkg/clock"
	"github.com/codecafelab/phoneauth/internal/pkg/goerror"
)

type LoginInput struct {
	Phone string `validate:"required"`
	Pin   string `validate:"required,pin"`
}

type LoginOutput struct {
	Token     string
	Phone     string
	AccountID int64
}

// Login authenticates an account by PIN. Wrong PINs are counted in a
// calendar-day window anchored on the last failure; the third same-day
// failure freezes the account, and a frozen account stays frozen until a
// manual reset.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	phone, err := s.canonicalPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	var out *LoginOutput
	if err := s.withPhoneLock(ctx, phone, func(ctx context.Context) error {
		out, err = s.login(ctx, phone, in)
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Usecase) login(ctx context.Context, phone string, in LoginInput) (*LoginOutput, error) {
	acc, err := s.repoDB.GetAccountByPhone(ctx, phone)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "login for unregistered phone", "phone", phone)
		return nil, ErrNotRegistered
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	if acc.Status == entity.AccountStatusFrozen {
		slog.WarnContext(ctx, "login on frozen account", "account_id", acc.ID)
		return nil, ErrAccountLocked
	}

	if !s.bcrypt.Verify(acc.Password, in.Pin) {
		return nil, s.recordLoginFailure(ctx, acc)
	}

	if acc.FailureCount >= 1 {
		acc.FailureCount = 0
		if err := s.repoDB.SaveAccountLoginState(ctx, *acc); err != nil {
			slog.ErrorContext(ctx, "failed to repo save account", "account_id", acc.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
	}

	token, err := s.jwt.Generate(acc.ID, acc.Phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{Token: token, Phone: acc.Phone, AccountID: acc.ID}, nil
}

func (s *Usecase) recordLoginFailure(ctx context.Context, acc *entity.Account) error {
	now := s.clock.Now()
	frozen := false

	switch {
	case !clock.SameDate(acc.LastFailureAt, now):
		acc.FailureCount = 1
	case acc.FailureCount >= freezeAfterFailures:
		acc.Status = entity.AccountStatusFrozen
		frozen = true
	default:
		acc.FailureCount++
	}
	acc.LastFailureAt = now

	if err := s.repoDB.SaveAccountLoginState(ctx, *acc); err != nil {
		slog.ErrorContext(ctx, "failed to repo save account", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	if frozen {
		slog.WarnContext(ctx, "account frozen after repeated wrong pin", "account_id", acc.ID)

		evt := AccountFrozenEvent{AccountID: acc.ID, Phone: acc.Phone}
		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			if err := s.repoMessaging.PublishAccountFrozen(ctx, evt); err != nil {
				slog.WarnContext(ctx, "failed to publish account frozen event", "account_id", evt.AccountID, "error", err)
			}
			return nil
		})
	} else {
		slog.WarnContext(ctx, "login with wrong pin", "account_id", acc.ID, "failure_count", acc.FailureCount)
	}

	return ErrWrongPassword
}
