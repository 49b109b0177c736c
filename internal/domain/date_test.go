package domain

import (
	"errors"
	"testing"
)

func TestNewShiftAssignmentDate(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		validValues := []string{"2026-01-01", "2026-12-31", "2024-02-29", "2000-06-15"}

		for _, value := range validValues {
			date, err := NewShiftAssignmentDate(value)
			if err != nil {
				t.Fatalf("NewShiftAssignmentDate(%q): %v", value, err)
			}
			if date.String() != value {
				t.Fatalf("expected %s, got %s", value, date.String())
			}
		}
	})

	t.Run("invalid dates", func(t *testing.T) {
		invalidValues := []string{
			"",
			"2024-02-30", // 存在しない日
			"2023-02-29", // 平年の閏日
			"2026-13-01",
			"2026-00-10",
			"2026-04-00",
			"2026-04-31",
			"2026/04/01", // 区切り文字違い
			"26-04-01",
			"2026-4-1",
			"2026-04-01T00:00:00",
		}

		for _, value := range invalidValues {
			if _, err := NewShiftAssignmentDate(value); !errors.Is(err, ErrInvalidShiftAssignmentDate) {
				t.Fatalf("NewShiftAssignmentDate(%q): expected ErrInvalidShiftAssignmentDate, got %v", value, err)
			}
		}
	})

	t.Run("accessors", func(t *testing.T) {
		date, err := NewShiftAssignmentDate("2026-04-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if date.Year() != 2026 {
			t.Fatalf("expected year 2026, got %d", date.Year())
		}
		if date.Month() != 4 {
			t.Fatalf("expected month 4, got %d", date.Month())
		}
		if date.Day() != 15 {
			t.Fatalf("expected day 15, got %d", date.Day())
		}
	})
}
