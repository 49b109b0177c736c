package domain

import (
	"errors"
	"testing"
)

func mustShiftTypeTime(t *testing.T, value string) ShiftTypeTime {
	t.Helper()
	tod, err := NewShiftTypeTime(value)
	if err != nil {
		t.Fatalf("NewShiftTypeTime(%q): %v", value, err)
	}
	return tod
}

func TestNewShiftType(t *testing.T) {
	name, _ := NewShiftTypeName("早番")

	t.Run("create", func(t *testing.T) {
		shiftType, err := NewShiftType(name, mustShiftTypeTime(t, "09:00"), mustShiftTypeTime(t, "17:00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shiftType.ID().String() == "" {
			t.Fatal("expected generated ID")
		}
	})

	t.Run("end time must be after start time", func(t *testing.T) {
		if _, err := NewShiftType(name, mustShiftTypeTime(t, "17:00"), mustShiftTypeTime(t, "09:00")); !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}
		// 同時刻も不可（厳密に後であること）
		if _, err := NewShiftType(name, mustShiftTypeTime(t, "09:00"), mustShiftTypeTime(t, "09:00")); !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}
	})

	t.Run("reconstruct re-validates", func(t *testing.T) {
		if _, err := ReconstructShiftType(NewShiftTypeID(), name, mustShiftTypeTime(t, "17:00"), mustShiftTypeTime(t, "09:00"), 1); !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}
	})
}

func TestShiftTypeUpdate(t *testing.T) {
	name, _ := NewShiftTypeName("早番")
	shiftType, err := NewShiftType(name, mustShiftTypeTime(t, "09:00"), mustShiftTypeTime(t, "17:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("update name", func(t *testing.T) {
		newName, _ := NewShiftTypeName("遅番")
		shiftType.UpdateName(newName)

		if shiftType.Name() != newName {
			t.Fatalf("expected %s, got %s", newName, shiftType.Name())
		}
	})

	t.Run("update time re-validates", func(t *testing.T) {
		if err := shiftType.UpdateTime(mustShiftTypeTime(t, "22:00"), mustShiftTypeTime(t, "10:00")); !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}

		if err := shiftType.UpdateTime(mustShiftTypeTime(t, "13:00"), mustShiftTypeTime(t, "22:00")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shiftType.StartTime().String() != "13:00" || shiftType.EndTime().String() != "22:00" {
			t.Fatalf("expected 13:00-22:00, got %s-%s", shiftType.StartTime(), shiftType.EndTime())
		}
	})
}

func TestShiftTypeDurationHours(t *testing.T) {
	cases := []struct {
		startTime string
		endTime   string
		want      float64
	}{
		{"09:00", "17:00", 8.0},
		{"09:00", "10:15", 1.3}, // 75分 → 1.25時間 → 切り上げで 1.3
		{"09:00", "09:01", 0.1},
		{"09:00", "10:00", 1.0},
		{"00:00", "23:59", 24.0}, // 1439分 → 23.983... → 24.0
	}

	name, _ := NewShiftTypeName("テスト")
	for _, c := range cases {
		shiftType, err := NewShiftType(name, mustShiftTypeTime(t, c.startTime), mustShiftTypeTime(t, c.endTime))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := shiftType.DurationHours(); got != c.want {
			t.Fatalf("%s-%s: expected %.1f hours, got %.1f", c.startTime, c.endTime, c.want, got)
		}
	}
}
