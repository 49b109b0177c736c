package domain

import (
	"errors"
	"testing"
	"time"
)

func newFutureSchedule(t *testing.T, clock Clock) *ShiftSchedule {
	t.Helper()
	year, _ := NewShiftScheduleYear(2026)
	month, _ := NewShiftScheduleMonth(6)
	schedule, err := NewShiftSchedule(clock, year, month)
	if err != nil {
		t.Fatalf("NewShiftSchedule: %v", err)
	}
	return schedule
}

func mustDate(t *testing.T, value string) ShiftAssignmentDate {
	t.Helper()
	date, err := NewShiftAssignmentDate(value)
	if err != nil {
		t.Fatalf("NewShiftAssignmentDate(%q): %v", value, err)
	}
	return date
}

func TestNewShiftSchedule(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)

	cases := []struct {
		name    string
		year    int
		month   int
		wantErr error
	}{
		{"current month", 2026, 4, nil},
		{"future month", 2026, 5, nil},
		{"future year with earlier month", 2027, 1, nil},
		{"previous month", 2026, 3, ErrCannotCreatePastShiftSchedule},
		{"previous year with later month", 2025, 12, ErrCannotCreatePastShiftSchedule},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			year, _ := NewShiftScheduleYear(c.year)
			month, _ := NewShiftScheduleMonth(c.month)

			schedule, err := NewShiftSchedule(clock, year, month)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if schedule.IsPublished() {
				t.Fatal("expected unpublished schedule")
			}
			if len(schedule.ShiftAssignments()) != 0 || len(schedule.ShiftNotices()) != 0 {
				t.Fatal("expected empty collections")
			}
			if !schedule.CreatedAt().Equal(schedule.UpdatedAt()) {
				t.Fatal("expected createdAt == updatedAt on creation")
			}
		})
	}
}

func TestShiftScheduleAssign(t *testing.T) {
	date := "2026-06-10"

	t.Run("assign standard shift", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)
		employeeID := NewEmployeeID()

		clock.Advance(time.Minute)
		if err := schedule.AssignShift(mustDate(t, date), employeeID, NewShiftTypeID()); err != nil {
			t.Fatalf("AssignShift: %v", err)
		}

		if len(schedule.StandardShiftAssignments()) != 1 {
			t.Fatalf("expected 1 standard assignment, got %d", len(schedule.StandardShiftAssignments()))
		}
		if !schedule.UpdatedAt().After(schedule.CreatedAt()) {
			t.Fatal("expected updatedAt to be bumped")
		}
	})

	t.Run("uniqueness across variants", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)
		employeeID := NewEmployeeID()

		if err := schedule.AssignShift(mustDate(t, date), employeeID, NewShiftTypeID()); err != nil {
			t.Fatalf("AssignShift: %v", err)
		}

		// 既に標準アサインがある (日付, 従業員) にはどの種別も追加できない
		if err := schedule.AssignShift(mustDate(t, date), employeeID, NewShiftTypeID()); !errors.Is(err, ErrAssignmentAlreadyExists) {
			t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
		}
		if err := schedule.AssignShiftWithCustomTime(mustDate(t, date), employeeID, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "15:00")); !errors.Is(err, ErrAssignmentAlreadyExists) {
			t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
		}
		if err := schedule.GrantPublicHoliday(mustDate(t, date), employeeID); !errors.Is(err, ErrAssignmentAlreadyExists) {
			t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
		}
		if err := schedule.GrantPaidLeave(mustDate(t, date), employeeID); !errors.Is(err, ErrAssignmentAlreadyExists) {
			t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
		}

		// 別の日付・別の従業員なら共存できる
		if err := schedule.GrantPublicHoliday(mustDate(t, "2026-06-11"), employeeID); err != nil {
			t.Fatalf("GrantPublicHoliday: %v", err)
		}
		if err := schedule.AssignShiftWithCustomTime(mustDate(t, date), NewEmployeeID(), mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "15:00")); err != nil {
			t.Fatalf("AssignShiftWithCustomTime: %v", err)
		}

		if len(schedule.ShiftAssignments()) != 3 {
			t.Fatalf("expected 3 assignments, got %d", len(schedule.ShiftAssignments()))
		}
	})

	t.Run("custom time validation", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		err := schedule.AssignShiftWithCustomTime(mustDate(t, date), NewEmployeeID(), mustShiftTypeTime(t, "15:00"), mustShiftTypeTime(t, "10:00"))
		if !errors.Is(err, ErrEndTimeMustBeAfterStartTime) {
			t.Fatalf("expected ErrEndTimeMustBeAfterStartTime, got %v", err)
		}
		if len(schedule.ShiftAssignments()) != 0 {
			t.Fatal("expected no assignment to be added on validation failure")
		}
	})
}

func TestShiftScheduleUnassign(t *testing.T) {
	date := "2026-06-10"

	t.Run("removes whichever variant holds the pair", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)
		employeeID := NewEmployeeID()

		// カスタムアサインでも休みでも解除できること
		if err := schedule.AssignShiftWithCustomTime(mustDate(t, date), employeeID, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "15:00")); err != nil {
			t.Fatalf("AssignShiftWithCustomTime: %v", err)
		}
		if err := schedule.Unassign(mustDate(t, date), employeeID); err != nil {
			t.Fatalf("Unassign: %v", err)
		}
		if len(schedule.ShiftAssignments()) != 0 {
			t.Fatalf("expected empty assignments, got %d", len(schedule.ShiftAssignments()))
		}

		if err := schedule.GrantPublicHoliday(mustDate(t, date), employeeID); err != nil {
			t.Fatalf("GrantPublicHoliday: %v", err)
		}
		if err := schedule.Unassign(mustDate(t, date), employeeID); err != nil {
			t.Fatalf("Unassign: %v", err)
		}

		// 解除後は同じ (日付, 従業員) に再アサインできる
		if err := schedule.AssignShiftWithCustomTime(mustDate(t, date), employeeID, mustShiftTypeTime(t, "09:00"), mustShiftTypeTime(t, "12:00")); err != nil {
			t.Fatalf("AssignShiftWithCustomTime after unassign: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		if err := schedule.Unassign(mustDate(t, date), NewEmployeeID()); !errors.Is(err, ErrShiftAssignmentNotFound) {
			t.Fatalf("expected ErrShiftAssignmentNotFound, got %v", err)
		}
	})
}

func TestShiftSchedulePastLock(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	schedule := newFutureSchedule(t, clock) // 2026年6月
	employeeID := NewEmployeeID()
	date := mustDate(t, "2026-06-10")

	if err := schedule.AssignShift(date, employeeID, NewShiftTypeID()); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.CreateNotice(mustTitle(t, "連絡"), mustContent(t, "内容")); err != nil {
		t.Fatalf("CreateNotice: %v", err)
	}
	noticeID := schedule.ShiftNotices()[0].ID()

	// 実時間が進んで対象年月が過去になると自動的にロックされる
	clock.Set(2026, 7, 1)

	if err := schedule.AssignShift(mustDate(t, "2026-06-11"), employeeID, NewShiftTypeID()); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
		t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
	}
	if err := schedule.AssignShiftWithCustomTime(mustDate(t, "2026-06-11"), employeeID, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "15:00")); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
		t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
	}
	if err := schedule.GrantPublicHoliday(mustDate(t, "2026-06-11"), employeeID); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
		t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
	}
	if err := schedule.Unassign(date, employeeID); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
		t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
	}
	if err := schedule.CreateNotice(mustTitle(t, "追記"), mustContent(t, "内容")); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
		t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
	}
	if err := schedule.DeleteNotice(noticeID); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
		t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
	}

	// 公開・非公開は過去ロックの対象外
	before := schedule.UpdatedAt()
	schedule.Publish()
	if !schedule.IsPublished() {
		t.Fatal("expected past schedule to be publishable")
	}
	if !schedule.UpdatedAt().After(before) {
		t.Fatal("expected updatedAt to be bumped by publish")
	}
}

func TestShiftSchedulePublish(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	schedule := newFutureSchedule(t, clock)

	clock.Advance(time.Minute)
	schedule.Publish()
	if !schedule.IsPublished() {
		t.Fatal("expected published schedule")
	}
	publishedAt := schedule.UpdatedAt()

	// 公開済みの状態での再公開は no-op（updatedAt も変わらない）
	clock.Advance(time.Minute)
	schedule.Publish()
	if !schedule.UpdatedAt().Equal(publishedAt) {
		t.Fatal("expected updatedAt to be unchanged by redundant publish")
	}

	clock.Advance(time.Minute)
	schedule.Unpublish()
	if schedule.IsPublished() {
		t.Fatal("expected unpublished schedule")
	}
	if !schedule.UpdatedAt().After(publishedAt) {
		t.Fatal("expected updatedAt to be bumped by unpublish")
	}
	unpublishedAt := schedule.UpdatedAt()

	clock.Advance(time.Minute)
	schedule.Unpublish()
	if !schedule.UpdatedAt().Equal(unpublishedAt) {
		t.Fatal("expected updatedAt to be unchanged by redundant unpublish")
	}
}

func mustTitle(t *testing.T, value string) ShiftNoticeTitle {
	t.Helper()
	title, err := NewShiftNoticeTitle(value)
	if err != nil {
		t.Fatalf("NewShiftNoticeTitle(%q): %v", value, err)
	}
	return title
}

func mustContent(t *testing.T, value string) ShiftNoticeContent {
	t.Helper()
	content, err := NewShiftNoticeContent(value)
	if err != nil {
		t.Fatalf("NewShiftNoticeContent(%q): %v", value, err)
	}
	return content
}

func TestShiftScheduleNotices(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		if err := schedule.CreateNotice(mustTitle(t, "6月の連絡事項"), mustContent(t, "シフト希望は5月20日までに提出してください。")); err != nil {
			t.Fatalf("CreateNotice: %v", err)
		}

		notices := schedule.ShiftNotices()
		if len(notices) != 1 {
			t.Fatalf("expected 1 notice, got %d", len(notices))
		}
		if notices[0].ShiftScheduleID() != schedule.ID() {
			t.Fatal("expected notice to belong to the schedule")
		}
	})

	t.Run("update applies only provided fields", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		if err := schedule.CreateNotice(mustTitle(t, "タイトル"), mustContent(t, "本文")); err != nil {
			t.Fatalf("CreateNotice: %v", err)
		}
		noticeID := schedule.ShiftNotices()[0].ID()
		created := schedule.UpdatedAt()

		// 両方省略なら updatedAt も変わらない
		clock.Advance(time.Minute)
		if err := schedule.UpdateNotice(noticeID, nil, nil); err != nil {
			t.Fatalf("UpdateNotice: %v", err)
		}
		if !schedule.UpdatedAt().Equal(created) {
			t.Fatal("expected updatedAt to be unchanged when nothing is updated")
		}

		newTitle := "新しいタイトル"
		if err := schedule.UpdateNotice(noticeID, &newTitle, nil); err != nil {
			t.Fatalf("UpdateNotice: %v", err)
		}
		notice := schedule.ShiftNotices()[0]
		if notice.Title().String() != newTitle {
			t.Fatalf("expected %s, got %s", newTitle, notice.Title())
		}
		if notice.Content().String() != "本文" {
			t.Fatal("expected content to be unchanged")
		}
		if !schedule.UpdatedAt().After(created) {
			t.Fatal("expected updatedAt to be bumped")
		}
	})

	t.Run("update validates fields", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		if err := schedule.CreateNotice(mustTitle(t, "タイトル"), mustContent(t, "本文")); err != nil {
			t.Fatalf("CreateNotice: %v", err)
		}
		noticeID := schedule.ShiftNotices()[0].ID()

		empty := ""
		if err := schedule.UpdateNotice(noticeID, &empty, nil); !errors.Is(err, ErrInvalidShiftNoticeTitle) {
			t.Fatalf("expected ErrInvalidShiftNoticeTitle, got %v", err)
		}
		if err := schedule.UpdateNotice(noticeID, nil, &empty); !errors.Is(err, ErrInvalidShiftNoticeContent) {
			t.Fatalf("expected ErrInvalidShiftNoticeContent, got %v", err)
		}
	})

	t.Run("update and delete missing notice", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		title := "タイトル"
		if err := schedule.UpdateNotice(NewShiftNoticeID(), &title, nil); !errors.Is(err, ErrShiftNoticeNotFound) {
			t.Fatalf("expected ErrShiftNoticeNotFound, got %v", err)
		}
		if err := schedule.DeleteNotice(NewShiftNoticeID()); !errors.Is(err, ErrShiftNoticeNotFound) {
			t.Fatalf("expected ErrShiftNoticeNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		clock := newFixedClock(2026, 4, 15)
		schedule := newFutureSchedule(t, clock)

		if err := schedule.CreateNotice(mustTitle(t, "タイトル"), mustContent(t, "本文")); err != nil {
			t.Fatalf("CreateNotice: %v", err)
		}
		noticeID := schedule.ShiftNotices()[0].ID()

		if err := schedule.DeleteNotice(noticeID); err != nil {
			t.Fatalf("DeleteNotice: %v", err)
		}
		if len(schedule.ShiftNotices()) != 0 {
			t.Fatal("expected no notices after delete")
		}
	})
}

func TestShiftScheduleCountWorkDaysPerEmployee(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	schedule := newFutureSchedule(t, clock)

	employeeA := NewEmployeeID()
	employeeB := NewEmployeeID()
	shiftTypeID := NewShiftTypeID()

	if err := schedule.AssignShift(mustDate(t, "2026-06-01"), employeeA, shiftTypeID); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.AssignShift(mustDate(t, "2026-06-02"), employeeA, shiftTypeID); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
	if err := schedule.AssignShiftWithCustomTime(mustDate(t, "2026-06-03"), employeeA, mustShiftTypeTime(t, "10:00"), mustShiftTypeTime(t, "15:00")); err != nil {
		t.Fatalf("AssignShiftWithCustomTime: %v", err)
	}
	// 休みは勤務日数に数えない
	if err := schedule.GrantPublicHoliday(mustDate(t, "2026-06-04"), employeeA); err != nil {
		t.Fatalf("GrantPublicHoliday: %v", err)
	}
	if err := schedule.GrantPaidLeave(mustDate(t, "2026-06-01"), employeeB); err != nil {
		t.Fatalf("GrantPaidLeave: %v", err)
	}

	counts := schedule.CountWorkDaysPerEmployee()

	if counts[employeeA] != 3 {
		t.Fatalf("expected 3 work days for employee A, got %d", counts[employeeA])
	}
	if _, exists := counts[employeeB]; exists {
		t.Fatal("expected employee B (time off only) to be absent from counts")
	}
}

func TestReconstructShiftSchedule(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	scheduleID := NewShiftScheduleID()
	year, _ := NewShiftScheduleYear(2023)
	month, _ := NewShiftScheduleMonth(1)
	employeeID := NewEmployeeID()
	date := mustDate(t, "2023-01-10")
	createdAt := time.Date(2022, 12, 20, 10, 0, 0, 0, JST)

	t.Run("past year month is allowed on reconstruction", func(t *testing.T) {
		assignment := ReconstructStandardShiftAssignment(NewShiftAssignmentID(), scheduleID, date, employeeID, NewShiftTypeID())

		schedule, err := ReconstructShiftSchedule(clock, scheduleID, year, month, true, []*ShiftAssignment{assignment}, nil, createdAt, createdAt, 2)
		if err != nil {
			t.Fatalf("ReconstructShiftSchedule: %v", err)
		}

		if !schedule.IsPublished() {
			t.Fatal("expected published schedule")
		}
		if schedule.Version() != 2 {
			t.Fatalf("expected version 2, got %d", schedule.Version())
		}
		if len(schedule.StandardShiftAssignments()) != 1 {
			t.Fatal("expected reconstructed assignment")
		}

		// 復元後も過去ロックは効く
		if err := schedule.Unassign(date, employeeID); !errors.Is(err, ErrCannotEditPastShiftSchedule) {
			t.Fatalf("expected ErrCannotEditPastShiftSchedule, got %v", err)
		}
	})

	t.Run("rejects duplicated pairs", func(t *testing.T) {
		assignments := []*ShiftAssignment{
			ReconstructStandardShiftAssignment(NewShiftAssignmentID(), scheduleID, date, employeeID, NewShiftTypeID()),
			ReconstructTimeOffAssignment(NewShiftAssignmentID(), scheduleID, date, employeeID, TimeOffTypePaidLeave),
		}

		if _, err := ReconstructShiftSchedule(clock, scheduleID, year, month, false, assignments, nil, createdAt, createdAt, 1); !errors.Is(err, ErrAssignmentAlreadyExists) {
			t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
		}
	})
}

func TestShiftScheduleAssignmentsAreSorted(t *testing.T) {
	clock := newFixedClock(2026, 4, 15)
	schedule := newFutureSchedule(t, clock)
	employeeID := NewEmployeeID()
	shiftTypeID := NewShiftTypeID()

	for _, value := range []string{"2026-06-20", "2026-06-05", "2026-06-12"} {
		if err := schedule.AssignShift(mustDate(t, value), employeeID, shiftTypeID); err != nil {
			t.Fatalf("AssignShift: %v", err)
		}
	}

	assignments := schedule.ShiftAssignments()
	for i := 1; i < len(assignments); i++ {
		if assignments[i-1].Date() > assignments[i].Date() {
			t.Fatalf("expected assignments sorted by date, got %s before %s", assignments[i-1].Date(), assignments[i].Date())
		}
	}
}
