package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
)

func TestLogin(t *testing.T) {

	t.Run("Success", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		phone, accountID := f.register(t, testPhone, testPin)

		// Act
		out, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: testPin})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Token == "" || out.Phone != phone || out.AccountID != accountID {
			t.Fatalf("unexpected login response: %+v", out)
		}

		claims, err := f.jwt.Verify(out.Token)
		if err != nil {
			t.Fatalf("expected valid token, got %v", err)
		}
		if claims.UserID != accountID || claims.Phone != phone {
			t.Fatalf("expected claims bound to account, got %+v", claims)
		}
	})

	t.Run("NotRegistered", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: testPin})

		// Assert
		if !errors.Is(err, ErrNotRegistered) {
			t.Fatalf("expected ErrNotRegistered, got %v", err)
		}
	})

	t.Run("WrongPin", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		phone, _ := f.register(t, testPhone, testPin)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"})

		// Assert
		if !errors.Is(err, ErrWrongPassword) {
			t.Fatalf("expected ErrWrongPassword, got %v", err)
		}

		acc := f.repo.account(t, phone)
		if acc.FailureCount != 1 {
			t.Fatalf("expected failure count 1, got %d", acc.FailureCount)
		}
	})

	t.Run("ThirdSameDayFailureFreezesAccount", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		phone, accountID := f.register(t, testPhone, testPin)
		for i := 0; i < 2; i++ {
			if _, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"}); !errors.Is(err, ErrWrongPassword) {
				t.Fatalf("attempt %d: expected ErrWrongPassword, got %v", i+1, err)
			}
		}

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"})

		// Assert
		if !errors.Is(err, ErrWrongPassword) {
			t.Fatalf("expected ErrWrongPassword, got %v", err)
		}

		acc := f.repo.account(t, phone)
		if acc.Status != entity.AccountStatusFrozen {
			t.Fatalf("expected frozen account, got %s", acc.Status)
		}

		// Even the correct pin is refused now.
		if _, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: testPin}); !errors.Is(err, ErrAccountLocked) {
			t.Fatalf("expected ErrAccountLocked, got %v", err)
		}

		if err := f.goroutine.Wait(); err != nil {
			t.Fatalf("expected no goroutine errors, got %v", err)
		}
		if len(f.publisher.frozen) != 1 || f.publisher.frozen[0].AccountID != accountID {
			t.Fatalf("expected one account frozen event for %d, got %+v", accountID, f.publisher.frozen)
		}
	})

	t.Run("FailureWindowResetsOnNextCalendarDay", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		phone, _ := f.register(t, testPhone, testPin)
		for i := 0; i < 2; i++ {
			if _, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"}); !errors.Is(err, ErrWrongPassword) {
				t.Fatalf("attempt %d: expected ErrWrongPassword, got %v", i+1, err)
			}
		}
		f.clock.Advance(24 * time.Hour)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"})

		// Assert
		if !errors.Is(err, ErrWrongPassword) {
			t.Fatalf("expected ErrWrongPassword, got %v", err)
		}

		acc := f.repo.account(t, phone)
		if acc.Status != entity.AccountStatusActive {
			t.Fatalf("expected account still active, got %s", acc.Status)
		}
		if acc.FailureCount != 1 {
			t.Fatalf("expected failure count restarted at 1, got %d", acc.FailureCount)
		}
	})

	t.Run("SuccessClearsFailureCounter", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		phone, _ := f.register(t, testPhone, testPin)
		for i := 0; i < 2; i++ {
			if _, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"}); !errors.Is(err, ErrWrongPassword) {
				t.Fatalf("attempt %d: expected ErrWrongPassword, got %v", i+1, err)
			}
		}

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: testPin})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		acc := f.repo.account(t, phone)
		if acc.FailureCount != 0 {
			t.Fatalf("expected failure count cleared, got %d", acc.FailureCount)
		}
	})

	t.Run("FrozenAccountStaysFrozenAcrossDays", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.register(t, testPhone, testPin)
		for i := 0; i < 3; i++ {
			if _, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "87654321"}); !errors.Is(err, ErrWrongPassword) {
				t.Fatalf("attempt %d: expected ErrWrongPassword, got %v", i+1, err)
			}
		}
		f.clock.Advance(48 * time.Hour)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: testPin})

		// Assert
		if !errors.Is(err, ErrAccountLocked) {
			t.Fatalf("expected ErrAccountLocked, got %v", err)
		}
	})

	t.Run("ShortPinFailsValidation", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: "1234"})

		// Assert
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestRegistrationRoundTrip(t *testing.T) {

	// Arrange
	f := newFixture(t)

	// Act
	reqOut, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}

	verOut, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
		Phone:         testPhone,
		RememberToken: reqOut.RememberToken,
		OtpCode:       testOtp,
	})
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}

	confOut, err := f.uc.ConfirmPassword(context.Background(), ConfirmPasswordInput{
		Phone:       testPhone,
		VerifyToken: verOut.VerifyToken,
		Pin:         testPin,
	})
	if err != nil {
		t.Fatalf("confirm password: %v", err)
	}

	loginOut, err := f.uc.Login(context.Background(), LoginInput{Phone: testPhone, Pin: testPin})

	// Assert
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if reqOut.Phone != verOut.Phone || verOut.Phone != confOut.Phone || confOut.Phone != loginOut.Phone {
		t.Fatalf("expected a single canonical phone across the flow")
	}
	if loginOut.AccountID != confOut.AccountID {
		t.Fatalf("expected login bound to the created account")
	}

	claims, err := f.jwt.Verify(loginOut.Token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != confOut.AccountID || claims.Phone != confOut.Phone {
		t.Fatalf("expected claims bound to account, got %+v", claims)
	}
}
