package domain

import "testing"

func TestBuildShiftScheduleHistory(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	schedule := newFutureSchedule(t, clock)

	fullName, _ := NewEmployeeFullName("田中 一郎")
	employee := NewEmployee(fullName, EmployeeTypeRegular)

	shiftTypeName, _ := NewShiftTypeName("早番")
	shiftType, err := NewShiftType(shiftTypeName, mustShiftTypeTime(t, "09:00"), mustShiftTypeTime(t, "17:00"))
	if err != nil {
		t.Fatalf("NewShiftType: %v", err)
	}

	if err := schedule.AssignShift(mustDate(t, "2026-06-01"), employee.ID(), shiftType.ID()); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.AssignShiftWithCustomTime(mustDate(t, "2026-06-02"), employee.ID(), mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "14:00")); err != nil {
		t.Fatalf("AssignShiftWithCustomTime: %v", err)
	}
	if err := schedule.GrantPaidLeave(mustDate(t, "2026-06-03"), employee.ID()); err != nil {
		t.Fatalf("GrantPaidLeave: %v", err)
	}
	// 参照先の従業員が見つからないアサインはスナップショットに含めない
	if err := schedule.AssignShift(mustDate(t, "2026-06-04"), NewEmployeeID(), shiftType.ID()); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.CreateNotice(mustTitle(t, "6月の連絡事項"), mustContent(t, "本文です。")); err != nil {
		t.Fatalf("CreateNotice: %v", err)
	}

	history := BuildShiftScheduleHistory(
		schedule,
		map[EmployeeID]*Employee{employee.ID(): employee},
		map[ShiftTypeID]*ShiftType{shiftType.ID(): shiftType},
	)

	if history.Year != 2026 || history.Month != 6 {
		t.Fatalf("expected 2026-06, got %d-%d", history.Year, history.Month)
	}
	if len(history.ShiftAssignments) != 3 {
		t.Fatalf("expected 3 assignments in history, got %d", len(history.ShiftAssignments))
	}
	if len(history.ShiftNotices) != 1 {
		t.Fatalf("expected 1 notice in history, got %d", len(history.ShiftNotices))
	}

	standard := history.ShiftAssignments[0]
	if standard.ShiftType == nil || standard.ShiftType.Name != "早番" {
		t.Fatalf("expected resolved shift type, got %+v", standard.ShiftType)
	}
	if standard.Employee.FullName != "田中 一郎" || standard.Employee.TypeName != "社員" {
		t.Fatalf("expected resolved employee, got %+v", standard.Employee)
	}

	custom := history.ShiftAssignments[1]
	if custom.CustomStartTime == nil || *custom.CustomStartTime != "10:00" {
		t.Fatalf("expected custom start time, got %+v", custom.CustomStartTime)
	}

	timeOff := history.ShiftAssignments[2]
	if timeOff.TimeOffType == nil || timeOff.TimeOffType.Name != "有給" {
		t.Fatalf("expected resolved time-off type, got %+v", timeOff.TimeOffType)
	}
}
