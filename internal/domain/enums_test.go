package domain

import (
	"errors"
	"testing"
)

func TestParseEmployeeType(t *testing.T) {
	regular, err := ParseEmployeeType("REGULAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regular.IsRegular() || regular.IsDispatched() {
		t.Fatal("expected regular employee type")
	}
	if regular.DisplayName() != "社員" {
		t.Fatalf("expected 社員, got %s", regular.DisplayName())
	}

	dispatched, err := ParseEmployeeType("DISPATCHED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dispatched.IsDispatched() {
		t.Fatal("expected dispatched employee type")
	}
	if dispatched.DisplayName() != "派遣" {
		t.Fatalf("expected 派遣, got %s", dispatched.DisplayName())
	}

	for _, code := range []string{"", "regular", "MANAGER"} {
		if _, err := ParseEmployeeType(code); !errors.Is(err, ErrInvalidEmployeeType) {
			t.Fatalf("ParseEmployeeType(%q): expected ErrInvalidEmployeeType, got %v", code, err)
		}
	}
}

func TestParseTimeOffType(t *testing.T) {
	publicHoliday, err := ParseTimeOffType("PUBLIC_HOLIDAY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if publicHoliday.DisplayName() != "公休" {
		t.Fatalf("expected 公休, got %s", publicHoliday.DisplayName())
	}

	paidLeave, err := ParseTimeOffType("PAID_LEAVE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paidLeave.DisplayName() != "有給" {
		t.Fatalf("expected 有給, got %s", paidLeave.DisplayName())
	}

	for _, code := range []string{"", "paid_leave", "SICK_LEAVE"} {
		if _, err := ParseTimeOffType(code); !errors.Is(err, ErrInvalidTimeOffType) {
			t.Fatalf("ParseTimeOffType(%q): expected ErrInvalidTimeOffType, got %v", code, err)
		}
	}
}
