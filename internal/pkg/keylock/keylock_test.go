package keylock

import (
	"context"
	"errors"
	"testing"
)

func TestNoopWithLock(t *testing.T) {

	t.Run("RunsTheFunction", func(t *testing.T) {

		// Arrange
		l := NewNoop()
		ran := false

		// Act
		err := l.WithLock(context.Background(), "some-key", func(context.Context) error {
			ran = true
			return nil
		})

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ran {
			t.Fatalf("expected the function to run")
		}
	})

	t.Run("PropagatesTheError", func(t *testing.T) {

		// Arrange
		l := NewNoop()
		want := errors.New("boom")

		// Act
		err := l.WithLock(context.Background(), "some-key", func(context.Context) error {
			return want
		})

		// Assert
		if !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	})
}
