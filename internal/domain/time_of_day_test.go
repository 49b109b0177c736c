package domain

import (
	"errors"
	"testing"
)

func TestNewShiftTypeTime(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		validValues := []string{"00:00", "09:30", "23:59", "12:05"}

		for _, value := range validValues {
			if _, err := NewShiftTypeTime(value); err != nil {
				t.Fatalf("NewShiftTypeTime(%q): %v", value, err)
			}
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		invalidValues := []string{"", "24:00", "12:60", "9:00", "09:5", "09-30", "0900", "09:30:00"}

		for _, value := range invalidValues {
			if _, err := NewShiftTypeTime(value); !errors.Is(err, ErrInvalidShiftTypeTime) {
				t.Fatalf("NewShiftTypeTime(%q): expected ErrInvalidShiftTypeTime, got %v", value, err)
			}
		}
	})

	t.Run("to minutes", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"01:00": 60,
			"09:30": 570,
			"23:59": 1439,
		}

		for value, want := range cases {
			tod, err := NewShiftTypeTime(value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := tod.ToMinutes(); got != want {
				t.Fatalf("%s: expected %d minutes, got %d", value, want, got)
			}
		}
	})
}
