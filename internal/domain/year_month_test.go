package domain

import (
	"errors"
	"testing"
)

func TestNewShiftScheduleYear(t *testing.T) {
	for _, value := range []int{2000, 2026, 2100} {
		year, err := NewShiftScheduleYear(value)
		if err != nil {
			t.Fatalf("NewShiftScheduleYear(%d): %v", value, err)
		}
		if year.Int() != value {
			t.Fatalf("expected %d, got %d", value, year.Int())
		}
	}

	for _, value := range []int{1999, 2101, 0, -1} {
		if _, err := NewShiftScheduleYear(value); !errors.Is(err, ErrInvalidShiftScheduleYear) {
			t.Fatalf("NewShiftScheduleYear(%d): expected ErrInvalidShiftScheduleYear, got %v", value, err)
		}
	}
}

func TestNewShiftScheduleMonth(t *testing.T) {
	for _, value := range []int{1, 6, 12} {
		month, err := NewShiftScheduleMonth(value)
		if err != nil {
			t.Fatalf("NewShiftScheduleMonth(%d): %v", value, err)
		}
		if month.Int() != value {
			t.Fatalf("expected %d, got %d", value, month.Int())
		}
	}

	for _, value := range []int{0, 13, -1} {
		if _, err := NewShiftScheduleMonth(value); !errors.Is(err, ErrInvalidShiftScheduleMonth) {
			t.Fatalf("NewShiftScheduleMonth(%d): expected ErrInvalidShiftScheduleMonth, got %v", value, err)
		}
	}
}
