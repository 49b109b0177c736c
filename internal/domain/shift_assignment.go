package domain

// ShiftAssignmentKind はアサインの種別
type ShiftAssignmentKind string

const (
	ShiftAssignmentKindStandard ShiftAssignmentKind = "STANDARD"
	ShiftAssignmentKindCustom   ShiftAssignmentKind = "CUSTOM"
	ShiftAssignmentKindTimeOff  ShiftAssignmentKind = "TIME_OFF"
)

// ShiftAssignment はある従業員のある日付のアサインを表す
// ShiftSchedule 集約に属する
// 種別ごとに排他的なフィールドを持つ:
//   - STANDARD: shiftTypeID
//   - CUSTOM:   customStartTime / customEndTime
//   - TIME_OFF: timeOffType
type ShiftAssignment struct {
	id              ShiftAssignmentID
	shiftScheduleID ShiftScheduleID
	date            ShiftAssignmentDate
	employeeID      EmployeeID
	kind            ShiftAssignmentKind

	shiftTypeID     ShiftTypeID
	customStartTime ShiftTypeTime
	customEndTime   ShiftTypeTime
	timeOffType     TimeOffType
}

func NewStandardShiftAssignment(shiftScheduleID ShiftScheduleID, date ShiftAssignmentDate, employeeID EmployeeID, shiftTypeID ShiftTypeID) *ShiftAssignment {
	return &ShiftAssignment{
		id:              NewShiftAssignmentID(),
		shiftScheduleID: shiftScheduleID,
		date:            date,
		employeeID:      employeeID,
		kind:            ShiftAssignmentKindStandard,
		shiftTypeID:     shiftTypeID,
	}
}

func NewCustomShiftAssignment(shiftScheduleID ShiftScheduleID, date ShiftAssignmentDate, employeeID EmployeeID, startTime ShiftTypeTime, endTime ShiftTypeTime) (*ShiftAssignment, error) {
	if err := validateEndTimeAfterStartTime(startTime, endTime); err != nil {
		return nil, err
	}
	return &ShiftAssignment{
		id:              NewShiftAssignmentID(),
		shiftScheduleID: shiftScheduleID,
		date:            date,
		employeeID:      employeeID,
		kind:            ShiftAssignmentKindCustom,
		customStartTime: startTime,
		customEndTime:   endTime,
	}, nil
}

func NewTimeOffAssignment(shiftScheduleID ShiftScheduleID, date ShiftAssignmentDate, employeeID EmployeeID, timeOffType TimeOffType) *ShiftAssignment {
	return &ShiftAssignment{
		id:              NewShiftAssignmentID(),
		shiftScheduleID: shiftScheduleID,
		date:            date,
		employeeID:      employeeID,
		kind:            ShiftAssignmentKindTimeOff,
		timeOffType:     timeOffType,
	}
}

// ReconstructStandardShiftAssignment は永続化済みのデータからアサインを復元する
func ReconstructStandardShiftAssignment(id ShiftAssignmentID, shiftScheduleID ShiftScheduleID, date ShiftAssignmentDate, employeeID EmployeeID, shiftTypeID ShiftTypeID) *ShiftAssignment {
	return &ShiftAssignment{
		id:              id,
		shiftScheduleID: shiftScheduleID,
		date:            date,
		employeeID:      employeeID,
		kind:            ShiftAssignmentKindStandard,
		shiftTypeID:     shiftTypeID,
	}
}

// ReconstructCustomShiftAssignment は復元時にも時刻の前後関係を検証する
func ReconstructCustomShiftAssignment(id ShiftAssignmentID, shiftScheduleID ShiftScheduleID, date ShiftAssignmentDate, employeeID EmployeeID, startTime ShiftTypeTime, endTime ShiftTypeTime) (*ShiftAssignment, error) {
	if err := validateEndTimeAfterStartTime(startTime, endTime); err != nil {
		return nil, err
	}
	return &ShiftAssignment{
		id:              id,
		shiftScheduleID: shiftScheduleID,
		date:            date,
		employeeID:      employeeID,
		kind:            ShiftAssignmentKindCustom,
		customStartTime: startTime,
		customEndTime:   endTime,
	}, nil
}

func ReconstructTimeOffAssignment(id ShiftAssignmentID, shiftScheduleID ShiftScheduleID, date ShiftAssignmentDate, employeeID EmployeeID, timeOffType TimeOffType) *ShiftAssignment {
	return &ShiftAssignment{
		id:              id,
		shiftScheduleID: shiftScheduleID,
		date:            date,
		employeeID:      employeeID,
		kind:            ShiftAssignmentKindTimeOff,
		timeOffType:     timeOffType,
	}
}

func (a *ShiftAssignment) ID() ShiftAssignmentID {
	return a.id
}

func (a *ShiftAssignment) ShiftScheduleID() ShiftScheduleID {
	return a.shiftScheduleID
}

func (a *ShiftAssignment) Date() ShiftAssignmentDate {
	return a.date
}

func (a *ShiftAssignment) EmployeeID() EmployeeID {
	return a.employeeID
}

func (a *ShiftAssignment) Kind() ShiftAssignmentKind {
	return a.kind
}

func (a *ShiftAssignment) IsStandard() bool {
	return a.kind == ShiftAssignmentKindStandard
}

func (a *ShiftAssignment) IsCustom() bool {
	return a.kind == ShiftAssignmentKindCustom
}

func (a *ShiftAssignment) IsTimeOff() bool {
	return a.kind == ShiftAssignmentKindTimeOff
}

// ShiftTypeID は STANDARD のときのみ意味を持つ
func (a *ShiftAssignment) ShiftTypeID() ShiftTypeID {
	return a.shiftTypeID
}

// CustomStartTime / CustomEndTime は CUSTOM のときのみ意味を持つ
func (a *ShiftAssignment) CustomStartTime() ShiftTypeTime {
	return a.customStartTime
}

func (a *ShiftAssignment) CustomEndTime() ShiftTypeTime {
	return a.customEndTime
}

// TimeOffType は TIME_OFF のときのみ意味を持つ
func (a *ShiftAssignment) TimeOffType() TimeOffType {
	return a.timeOffType
}
