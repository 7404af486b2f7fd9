package otpcode

import "testing"

func TestStatic(t *testing.T) {

	// Arrange
	g := NewStatic("123456")

	// Act
	code, err := g.Generate()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if code != "123456" {
		t.Fatalf("expected fixed code 123456, got %q", code)
	}
}

func TestRandomDigits(t *testing.T) {

	// Arrange
	g := NewRandomDigits(6)

	// Act
	code, err := g.Generate()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6 digits, got %d", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("expected only digits, got %q", code)
		}
	}
}
