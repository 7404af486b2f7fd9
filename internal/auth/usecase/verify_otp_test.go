package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
)

func TestVerifyOTP(t *testing.T) {

	t.Run("Success", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		reqOut, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
		if err != nil {
			t.Fatalf("request otp: %v", err)
		}

		// Act
		out, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: reqOut.RememberToken,
			OtpCode:       testOtp,
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.VerifyToken == "" {
			t.Fatalf("expected verify token in response")
		}

		ch := f.repo.challenge(t, out.Phone)
		if ch.State != entity.ChallengeStateOtpVerified {
			t.Fatalf("expected state otp_verified, got %s", ch.State)
		}
		if ch.RequestCount != 1 || ch.ErrorCount != 1 {
			t.Fatalf("expected counters re-armed at (1, 1), got (%d, %d)", ch.RequestCount, ch.ErrorCount)
		}
		if ch.VerifyToken == out.VerifyToken {
			t.Fatalf("expected stored verify token to be a digest, not the plaintext")
		}
	})

	t.Run("NoChallenge", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: "whatever",
			OtpCode:       testOtp,
		})

		// Assert
		if !errors.Is(err, ErrNoChallenge) {
			t.Fatalf("expected ErrNoChallenge, got %v", err)
		}
	})

	t.Run("WrongRememberTokenPinsErrorCounter", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		out, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
		if err != nil {
			t.Fatalf("request otp: %v", err)
		}

		// Act
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: "bogus-token",
			OtpCode:       testOtp,
		})

		// Assert
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}

		ch := f.repo.challenge(t, out.Phone)
		if ch.ErrorCount != 5 {
			t.Fatalf("expected error counter pinned at 5, got %d", ch.ErrorCount)
		}

		// A retry with the genuine token is now also blocked.
		if _, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: out.RememberToken,
			OtpCode:       testOtp,
		}); !errors.Is(err, ErrSuspectedAbuse) {
			t.Fatalf("expected ErrSuspectedAbuse, got %v", err)
		}
	})

	t.Run("ExpiredOtp", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		reqOut, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
		if err != nil {
			t.Fatalf("request otp: %v", err)
		}
		f.clock.Advance(91 * time.Second)

		// Act
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: reqOut.RememberToken,
			OtpCode:       testOtp,
		})

		// Assert
		if !errors.Is(err, ErrOtpExpired) {
			t.Fatalf("expected ErrOtpExpired, got %v", err)
		}
	})

	t.Run("WithinExpiryWindow", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		reqOut, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
		if err != nil {
			t.Fatalf("request otp: %v", err)
		}
		f.clock.Advance(89 * time.Second)

		// Act
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: reqOut.RememberToken,
			OtpCode:       testOtp,
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error inside the window, got %v", err)
		}
	})

	t.Run("IncorrectCodeIncrementsErrorCounter", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		reqOut, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
		if err != nil {
			t.Fatalf("request otp: %v", err)
		}

		// Act
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: reqOut.RememberToken,
			OtpCode:       "654321",
		})

		// Assert
		if !errors.Is(err, ErrIncorrectOtp) {
			t.Fatalf("expected ErrIncorrectOtp, got %v", err)
		}

		ch := f.repo.challenge(t, reqOut.Phone)
		if ch.ErrorCount != 1 {
			t.Fatalf("expected error counter 1, got %d", ch.ErrorCount)
		}
	})

	t.Run("RegisteredPhoneIsRejected", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.register(t, testPhone, testPin)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: "whatever",
			OtpCode:       testOtp,
		})

		// Assert
		if !errors.Is(err, ErrAlreadyRegistered) {
			t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
		}
	})

	t.Run("NonNumericOtpFailsValidation", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: "whatever",
			OtpCode:       "abc",
		})

		// Assert
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})
}
