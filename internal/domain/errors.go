package domain

// Error はドメイン層のエラーを表す
// kind は発生源のエラー種別名で、errors.Is による照合は kind の一致で行う
type Error struct {
	kind    string
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() string {
	return e.kind
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

func newError(kind string, message string) *Error {
	return &Error{kind: kind, message: message}
}

// 値オブジェクトのエラー
var (
	ErrInvalidEmployeeID           = newError("InvalidEmployeeIdError", "Employee ID must be a valid ULID")
	ErrInvalidShiftTypeID          = newError("InvalidShiftTypeIdError", "Shift Type ID must be a valid ULID")
	ErrInvalidShiftScheduleID      = newError("InvalidShiftScheduleIdError", "Shift Schedule ID must be a valid ULID")
	ErrInvalidShiftAssignmentID    = newError("InvalidShiftAssignmentIdError", "Shift Assignment ID must be a valid ULID")
	ErrInvalidShiftNoticeID        = newError("InvalidShiftNoticeIdError", "Shift Notice ID must be a valid ULID")
	ErrInvalidShiftAssignmentDate  = newError("InvalidShiftAssignmentDateError", "Shift Assignment Date must be a valid date in \"YYYY-MM-DD\" format")
	ErrInvalidShiftTypeTime        = newError("InvalidShiftTypeTimeError", "Shift Type Time must be in \"HH:mm\" format (24-hour clock)")
	ErrInvalidShiftScheduleYear    = newError("InvalidShiftScheduleYearError", "Shift Schedule Year must be between 2000 and 2100")
	ErrInvalidShiftScheduleMonth   = newError("InvalidShiftScheduleMonthError", "Shift Schedule Month must be between 1 and 12")
	ErrInvalidEmployeeFullName     = newError("InvalidEmployeeFullNameError", "Employee Full Name must be between 1 and 20 characters")
	ErrInvalidShiftTypeName        = newError("InvalidShiftTypeNameError", "Shift Type Name must be between 1 and 10 characters")
	ErrInvalidShiftNoticeTitle     = newError("InvalidShiftNoticeTitleError", "Shift Notice Title must be between 1 and 50 characters")
	ErrInvalidShiftNoticeContent   = newError("InvalidShiftNoticeContentError", "Shift Notice Content must be between 1 and 500 characters")
	ErrInvalidEmployeeType         = newError("InvalidEmployeeTypeError", "Employee Type code must be either \"REGULAR\" or \"DISPATCHED\"")
	ErrInvalidTimeOffType          = newError("InvalidTimeOffTypeError", "Time Off Type code must be either \"PUBLIC_HOLIDAY\" or \"PAID_LEAVE\"")
	ErrInvalidWorkSummary          = newError("InvalidWorkSummaryError", "Work Summary day counts must be greater than or equal to 0")
)

// 集約・エンティティのエラー
var (
	ErrEndTimeMustBeAfterStartTime   = newError("EndTimeMustBeAfterStartTimeError", "End time must be after start time")
	ErrCannotCreatePastShiftSchedule = newError("CannotCreatePastShiftScheduleError", "Cannot create shift schedule in the past")
	ErrCannotEditPastShiftSchedule   = newError("CannotEditPastShiftScheduleError", "Cannot edit past shift schedule")
	ErrAssignmentAlreadyExists       = newError("AssignmentAlreadyExistsError", "Assignment already exists")
	ErrShiftAssignmentNotFound       = newError("ShiftAssignmentNotFoundError", "Shift assignment not found")
	ErrShiftNoticeNotFound           = newError("ShiftNoticeNotFoundError", "Shift notice not found")
)
