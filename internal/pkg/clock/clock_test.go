package clock

import (
	"testing"
	"time"
)

func TestSameDate(t *testing.T) {

	t.Run("SameCalendarDay", func(t *testing.T) {

		// Arrange
		a := time.Date(2025, 6, 1, 0, 0, 1, 0, time.UTC)
		b := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)

		// Act & Assert
		if !SameDate(a, b) {
			t.Fatalf("expected same date for %v and %v", a, b)
		}
	})

	t.Run("AcrossMidnight", func(t *testing.T) {

		// Arrange
		a := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
		b := time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC)

		// Act & Assert
		if SameDate(a, b) {
			t.Fatalf("expected different dates for %v and %v", a, b)
		}
	})

	t.Run("ComparesInUTC", func(t *testing.T) {

		// Arrange
		loc := time.FixedZone("UTC+7", 7*3600)
		a := time.Date(2025, 6, 2, 5, 0, 0, 0, loc) // 2025-06-01 22:00 UTC
		b := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		// Act & Assert
		if !SameDate(a, b) {
			t.Fatalf("expected same UTC date for %v and %v", a, b)
		}
	})
}
