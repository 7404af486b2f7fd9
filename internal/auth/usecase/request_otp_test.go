package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRequestOTP(t *testing.T) {

	t.Run("Success", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		out, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Phone == "" || out.RememberToken == "" {
			t.Fatalf("expected phone and remember token in response")
		}

		ch := f.repo.challenge(t, out.Phone)
		if ch.RequestCount != 1 || ch.ErrorCount != 0 {
			t.Fatalf("expected counters (1, 0), got (%d, %d)", ch.RequestCount, ch.ErrorCount)
		}
		if ch.RememberToken == out.RememberToken {
			t.Fatalf("expected stored remember token to be a digest, not the plaintext")
		}
	})

	t.Run("PublishesOtpIssuedEvent", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		out, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := f.goroutine.Wait(); err != nil {
			t.Fatalf("expected no goroutine errors, got %v", err)
		}
		if len(f.publisher.otpIssued) != 1 {
			t.Fatalf("expected 1 otp issued event, got %d", len(f.publisher.otpIssued))
		}
		if f.publisher.otpIssued[0].Phone != out.Phone || f.publisher.otpIssued[0].OtpCode != testOtp {
			t.Fatalf("unexpected event payload: %+v", f.publisher.otpIssued[0])
		}
	})

	t.Run("RotatesTokenOnRepeatRequest", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		first, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})
		if err != nil {
			t.Fatalf("first request: %v", err)
		}

		// Act
		second, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if second.RememberToken == first.RememberToken {
			t.Fatalf("expected a fresh remember token on repeat request")
		}

		ch := f.repo.challenge(t, second.Phone)
		if ch.RequestCount != 2 {
			t.Fatalf("expected request count 2, got %d", ch.RequestCount)
		}
	})

	t.Run("FourthRequestSameDayExceedsLimit", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		for i := 0; i < 3; i++ {
			if _, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone}); err != nil {
				t.Fatalf("request %d: %v", i+1, err)
			}
			f.clock.Advance(time.Minute)
		}

		// Act
		_, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if !errors.Is(err, ErrDailyLimitExceeded) {
			t.Fatalf("expected ErrDailyLimitExceeded, got %v", err)
		}
	})

	t.Run("CounterResetsOnNextCalendarDay", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		for i := 0; i < 3; i++ {
			if _, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone}); err != nil {
				t.Fatalf("request %d: %v", i+1, err)
			}
		}
		f.clock.Advance(24 * time.Hour)

		// Act
		out, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if err != nil {
			t.Fatalf("expected no error after date roll, got %v", err)
		}

		ch := f.repo.challenge(t, out.Phone)
		if ch.RequestCount != 1 || ch.ErrorCount != 0 {
			t.Fatalf("expected counters reset to (1, 0), got (%d, %d)", ch.RequestCount, ch.ErrorCount)
		}
	})

	t.Run("RegisteredPhoneIsRejected", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.register(t, testPhone, testPin)

		// Act
		_, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if !errors.Is(err, ErrAlreadyRegistered) {
			t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
		}
	})

	t.Run("BlockedWhileErrorCounterPinned", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		if _, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone}); err != nil {
			t.Fatalf("request: %v", err)
		}
		if _, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: "bogus-token",
			OtpCode:       testOtp,
		}); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}

		// Act
		_, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if !errors.Is(err, ErrSuspectedAbuse) {
			t.Fatalf("expected ErrSuspectedAbuse, got %v", err)
		}
	})

	t.Run("PinnedCounterClearsOnNextCalendarDay", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		if _, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone}); err != nil {
			t.Fatalf("request: %v", err)
		}
		if _, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{
			Phone:         testPhone,
			RememberToken: "bogus-token",
			OtpCode:       testOtp,
		}); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
		f.clock.Advance(24 * time.Hour)

		// Act
		_, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: testPhone})

		// Assert
		if err != nil {
			t.Fatalf("expected no error after date roll, got %v", err)
		}
	})

	t.Run("EmptyPhoneFailsValidation", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{})

		// Assert
		if err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("UnparseablePhoneIsRejected", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Phone: "not-a-phone"})

		// Assert
		if err == nil {
			t.Fatalf("expected error for unparseable phone")
		}
	})
}
