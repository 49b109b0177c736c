package domain

import (
	"errors"
	"testing"
)

const validULID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func TestNewEmployeeID(t *testing.T) {
	id := NewEmployeeID()

	if len(id.String()) != 26 {
		t.Fatalf("expected 26 characters, got %d", len(id.String()))
	}

	if id == NewEmployeeID() {
		t.Fatal("expected generated IDs to be unique")
	}
}

func TestParseIDs(t *testing.T) {
	t.Run("valid ULID", func(t *testing.T) {
		id, err := ParseEmployeeID(validULID)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if id.String() != validULID {
			t.Fatalf("expected %s, got %s", validULID, id.String())
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		invalidValues := []string{"", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA", "01ARZ3NDEKTSV4RRFFQ69G5FAVX", "IIIIIIIIIIIIIIIIIIIIIIIIIL"}

		for _, value := range invalidValues {
			if _, err := ParseEmployeeID(value); !errors.Is(err, ErrInvalidEmployeeID) {
				t.Fatalf("ParseEmployeeID(%q): expected ErrInvalidEmployeeID, got %v", value, err)
			}
			if _, err := ParseShiftTypeID(value); !errors.Is(err, ErrInvalidShiftTypeID) {
				t.Fatalf("ParseShiftTypeID(%q): expected ErrInvalidShiftTypeID, got %v", value, err)
			}
			if _, err := ParseShiftScheduleID(value); !errors.Is(err, ErrInvalidShiftScheduleID) {
				t.Fatalf("ParseShiftScheduleID(%q): expected ErrInvalidShiftScheduleID, got %v", value, err)
			}
			if _, err := ParseShiftAssignmentID(value); !errors.Is(err, ErrInvalidShiftAssignmentID) {
				t.Fatalf("ParseShiftAssignmentID(%q): expected ErrInvalidShiftAssignmentID, got %v", value, err)
			}
			if _, err := ParseShiftNoticeID(value); !errors.Is(err, ErrInvalidShiftNoticeID) {
				t.Fatalf("ParseShiftNoticeID(%q): expected ErrInvalidShiftNoticeID, got %v", value, err)
			}
		}
	})
}
