package domain

import (
	"errors"
	"testing"
)

func TestShiftAssignmentVariants(t *testing.T) {
	scheduleID := NewShiftScheduleID()
	employeeID := NewEmployeeID()
	date, _ := NewShiftAssignmentDate("2026-04-10")

	t.Run("standard", func(t *testing.T) {
		shiftTypeID := NewShiftTypeID()
		assignment := NewStandardShiftAssignment(scheduleID, date, employeeID, shiftTypeID)

		if !assignment.IsStandard() {
			t.Fatal("expected standard assignment")
		}
		if assignment.ShiftTypeID() != shiftTypeID {
			t.Fatalf("expected %s, got %s", shiftTypeID, assignment.ShiftTypeID())
		}
		if assignment.ShiftScheduleID() != scheduleID {
			t.Fatalf("expected %s, got %s", scheduleID, assignment.ShiftScheduleID())
		}
	})

	t.Run("custom", func(t *testing.T) {
		assignment, err := NewCustomShiftAssignment(scheduleID, date, employeeID, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "15:00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !assignment.IsCustom() {
			t.Fatal("expected custom assignment")
		}
		if assignment.CustomStartTime().String() != "10:00" || assignment.CustomEndTime().String() != "15:00" {
			t.Fatalf("expected 10:00-15:00, got %s-%s", assignment.CustomStartTime(), assignment.CustomEndTime())
		}
	})

	t.Run("custom rejects reversed times", func(t *testing.T) {
		if _, err := NewCustomShiftAssignment(scheduleID, date, employeeID, mustShiftTypeTime(t, "15:00"), mustShiftTypeTime(t, "10:00")); !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}
		if _, err := ReconstructCustomShiftAssignment(NewShiftAssignmentID(), scheduleID, date, employeeID, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "10:00")); !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}
	})

	t.Run("time off", func(t *testing.T) {
		assignment := NewTimeOffAssignment(scheduleID, date, employeeID, TimeOffTypePaidLeave)

		if !assignment.IsTimeOff() {
			t.Fatal("expected time-off assignment")
		}
		if assignment.TimeOffType() != TimeOffTypePaidLeave {
			t.Fatalf("expected PAID_LEAVE, got %s", assignment.TimeOffType())
		}
	})
}
