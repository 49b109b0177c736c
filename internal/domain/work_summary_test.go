package domain

import (
	"errors"
	"testing"
)

func TestNewWorkSummary(t *testing.T) {
	t.Run("totals", func(t *testing.T) {
		summary, err := NewWorkSummary(
			map[string]int{"early": 8, "late": 4},
			map[string]int{"PUBLIC_HOLIDAY": 6, "PAID_LEAVE": 1},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.TotalWorkDayCount() != 12 {
			t.Fatalf("expected 12 work days, got %d", summary.TotalWorkDayCount())
		}
		if summary.TotalTimeOffDayCount() != 7 {
			t.Fatalf("expected 7 time-off days, got %d", summary.TotalTimeOffDayCount())
		}
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		if _, err := NewWorkSummary(map[string]int{"early": -1}, nil); !errors.Is(err, ErrInvalidWorkSummary) {
			t.Fatalf("expected ErrInvalidWorkSummary, got %v", err)
		}
		if _, err := NewWorkSummary(nil, map[string]int{"PAID_LEAVE": -2}); !errors.Is(err, ErrInvalidWorkSummary) {
			t.Fatalf("expected ErrInvalidWorkSummary, got %v", err)
		}
	})

	t.Run("equals", func(t *testing.T) {
		a, _ := NewWorkSummary(map[string]int{"early": 2}, map[string]int{"PAID_LEAVE": 1})
		b, _ := NewWorkSummary(map[string]int{"early": 2}, map[string]int{"PAID_LEAVE": 1})
		c, _ := NewWorkSummary(map[string]int{"early": 3}, map[string]int{"PAID_LEAVE": 1})

		if !a.Equals(a) || !a.Equals(b) {
			t.Fatal("expected summaries with same counts to be equal")
		}
		if a.Equals(c) || a.Equals(nil) {
			t.Fatal("expected summaries with different counts to be unequal")
		}
	})
}

func TestShiftScheduleWorkSummaries(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	schedule := newFutureSchedule(t, clock)

	employeeID := NewEmployeeID()
	shiftTypeID := NewShiftTypeID()

	if err := schedule.AssignShift(mustDate(t, "2026-06-01"), employeeID, shiftTypeID); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.AssignShift(mustDate(t, "2026-06-02"), employeeID, shiftTypeID); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.AssignShiftWithCustomTime(mustDate(t, "2026-06-03"), employeeID, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "14:00")); err != nil {
		t.Fatalf("AssignShiftWithCustomTime: %v", err)
	}
	if err := schedule.GrantPublicHoliday(mustDate(t, "2026-06-04"), employeeID); err != nil {
		t.Fatalf("GrantPublicHoliday: %v", err)
	}

	summaries := schedule.WorkSummaries()
	summary, exists := summaries[employeeID]
	if !exists {
		t.Fatal("expected summary for employee")
	}

	want, _ := NewWorkSummary(
		map[string]int{shiftTypeID.String(): 2, WorkSummaryCustomShiftKey: 1},
		map[string]int{TimeOffTypePublicHoliday.Code(): 1},
	)
	if !summary.Equals(want) {
		t.Fatalf("unexpected summary: work=%v timeOff=%v", summary.DayCountByShiftType(), summary.DayCountByTimeOffType())
	}
}
