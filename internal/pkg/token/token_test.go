package token

import "testing"

func TestRandGenerate(t *testing.T) {

	t.Run("LengthFollowsSegments", func(t *testing.T) {

		// Arrange
		g := NewRand()

		// Act
		two, err := g.Generate(2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		three, err := g.Generate(3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Assert
		if len(two) != 64 {
			t.Fatalf("expected 64 hex chars for 2 segments, got %d", len(two))
		}
		if len(three) != 96 {
			t.Fatalf("expected 96 hex chars for 3 segments, got %d", len(three))
		}
	})

	t.Run("TokensAreUnique", func(t *testing.T) {

		// Arrange
		g := NewRand()

		// Act
		a, err := g.Generate(2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		b, err := g.Generate(2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Assert
		if a == b {
			t.Fatalf("expected distinct tokens")
		}
	})
}
