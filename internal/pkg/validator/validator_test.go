package validator

import (
	"errors"
	"testing"
)

type pinInput struct {
	Pin string `validate:"required,pin"`
}

type otpInput struct {
	OtpCode string `validate:"required,otp"`
}

func TestV10ValidatorPinRule(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	t.Run("EightDigitsPass", func(t *testing.T) {

		// Act & Assert
		if err := v.Validate(pinInput{Pin: "12345678"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("ShortPinFails", func(t *testing.T) {

		// Act
		err := v.Validate(pinInput{Pin: "1234"})

		// Assert
		var verr V10ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected V10ValidationError, got %v", err)
		}
		if _, ok := verr.Values()["pin"]; !ok {
			t.Fatalf("expected a message keyed by pin, got %v", verr)
		}
	})

	t.Run("NonNumericPinFails", func(t *testing.T) {

		// Act & Assert
		if err := v.Validate(pinInput{Pin: "abcdefgh"}); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}

func TestV10ValidatorOtpRule(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	t.Run("SixDigitsPass", func(t *testing.T) {

		// Act & Assert
		if err := v.Validate(otpInput{OtpCode: "123456"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("TooShortFails", func(t *testing.T) {

		// Act & Assert
		if err := v.Validate(otpInput{OtpCode: "1234"}); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("TooLongFails", func(t *testing.T) {

		// Act & Assert
		if err := v.Validate(otpInput{OtpCode: "1234567890123"}); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}
