package domain

import "github.com/oklog/ulid/v2"

// 各 ID は 26 文字の ULID（時系列ソート可能な一意識別子）
// NewXxxID で新規生成し、ParseXxxID で永続化済みの値を復元する

func newULID() string {
	return ulid.Make().String()
}

func isValidULID(value string) bool {
	if len(value) != ulid.EncodedSize {
		return false
	}
	_, err := ulid.ParseStrict(value)
	return err == nil
}

type EmployeeID string

func NewEmployeeID() EmployeeID {
	return EmployeeID(newULID())
}

func ParseEmployeeID(value string) (EmployeeID, error) {
	if !isValidULID(value) {
		return "", ErrInvalidEmployeeID
	}
	return EmployeeID(value), nil
}

func (id EmployeeID) String() string {
	return string(id)
}

type ShiftTypeID string

func NewShiftTypeID() ShiftTypeID {
	return ShiftTypeID(newULID())
}

func ParseShiftTypeID(value string) (ShiftTypeID, error) {
	if !isValidULID(value) {
		return "", ErrInvalidShiftTypeID
	}
	return ShiftTypeID(value), nil
}

func (id ShiftTypeID) String() string {
	return string(id)
}

type ShiftScheduleID string

func NewShiftScheduleID() ShiftScheduleID {
	return ShiftScheduleID(newULID())
}

func ParseShiftScheduleID(value string) (ShiftScheduleID, error) {
	if !isValidULID(value) {
		return "", ErrInvalidShiftScheduleID
	}
	return ShiftScheduleID(value), nil
}

func (id ShiftScheduleID) String() string {
	return string(id)
}

type ShiftAssignmentID string

func NewShiftAssignmentID() ShiftAssignmentID {
	return ShiftAssignmentID(newULID())
}

func ParseShiftAssignmentID(value string) (ShiftAssignmentID, error) {
	if !isValidULID(value) {
		return "", ErrInvalidShiftAssignmentID
	}
	return ShiftAssignmentID(value), nil
}

func (id ShiftAssignmentID) String() string {
	return string(id)
}

type ShiftNoticeID string

func NewShiftNoticeID() ShiftNoticeID {
	return ShiftNoticeID(newULID())
}

func ParseShiftNoticeID(value string) (ShiftNoticeID, error) {
	if !isValidULID(value) {
		return "", ErrInvalidShiftNoticeID
	}
	return ShiftNoticeID(value), nil
}

func (id ShiftNoticeID) String() string {
	return string(id)
}
