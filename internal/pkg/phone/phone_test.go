package phone

import "testing"

func TestCanonicalize(t *testing.T) {

	t.Run("InternationalFormat", func(t *testing.T) {

		// Act
		got, ok := Canonicalize("+6281234567890", "ID")

		// Assert
		if !ok {
			t.Fatalf("expected a possible number")
		}
		if got != "6281234567890" {
			t.Fatalf("expected 6281234567890, got %q", got)
		}
	})

	t.Run("NationalFormatUsesDefaultRegion", func(t *testing.T) {

		// Act
		got, ok := Canonicalize("081234567890", "ID")

		// Assert
		if !ok {
			t.Fatalf("expected a possible number")
		}
		if got != "6281234567890" {
			t.Fatalf("expected 6281234567890, got %q", got)
		}
	})

	t.Run("SameNumberOneSpelling", func(t *testing.T) {

		// Act
		a, okA := Canonicalize("+62 812-3456-7890", "ID")
		b, okB := Canonicalize("081234567890", "ID")

		// Assert
		if !okA || !okB {
			t.Fatalf("expected both spellings to parse")
		}
		if a != b {
			t.Fatalf("expected one canonical form, got %q and %q", a, b)
		}
	})

	t.Run("Garbage", func(t *testing.T) {

		// Act
		_, ok := Canonicalize("not-a-phone", "ID")

		// Assert
		if ok {
			t.Fatalf("expected parse failure")
		}
	})
}
