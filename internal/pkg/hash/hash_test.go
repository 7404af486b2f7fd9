package hash

import "testing"

func TestHMACSHA256(t *testing.T) {

	t.Run("HashAndVerify", func(t *testing.T) {

		// Arrange
		h := NewHMACSHA256("secret")

		// Act
		digest, err := h.Hash("some-token")

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(digest) == "some-token" {
			t.Fatalf("expected a digest, not the plaintext")
		}
		if !h.Verify(string(digest), "some-token") {
			t.Fatalf("expected digest to verify")
		}
		if h.Verify(string(digest), "other-token") {
			t.Fatalf("expected different plaintext to fail")
		}
	})

	t.Run("EmptyStoredDigestNeverVerifies", func(t *testing.T) {

		// Arrange
		h := NewHMACSHA256("secret")

		// Act & Assert
		if h.Verify("", "some-token") {
			t.Fatalf("expected empty stored digest to fail verification")
		}
	})

	t.Run("DifferentSecretsProduceDifferentDigests", func(t *testing.T) {

		// Arrange
		a := NewHMACSHA256("secret-a")
		b := NewHMACSHA256("secret-b")

		// Act
		digest, err := a.Hash("some-token")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Assert
		if b.Verify(string(digest), "some-token") {
			t.Fatalf("expected digest keyed with another secret to fail")
		}
	})
}

func TestBcrypt(t *testing.T) {

	t.Run("HashAndVerify", func(t *testing.T) {

		// Arrange
		h := NewBcrypt(4, "")

		// Act
		hashed, err := h.Hash("12345678")

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !h.Verify(string(hashed), "12345678") {
			t.Fatalf("expected pin to verify")
		}
		if h.Verify(string(hashed), "87654321") {
			t.Fatalf("expected wrong pin to fail")
		}
	})

	t.Run("PepperChangesTheResult", func(t *testing.T) {

		// Arrange
		plain := NewBcrypt(4, "")
		peppered := NewBcrypt(4, "pepper")

		// Act
		hashed, err := peppered.Hash("12345678")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Assert
		if plain.Verify(string(hashed), "12345678") {
			t.Fatalf("expected verification without the pepper to fail")
		}
	})
}
