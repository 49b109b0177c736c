package domain

// WorkSummaryCustomShiftKey はカスタムアサインの集計キー
// （シフト区分を参照しないためシフト区分IDの代わりに使う）
const WorkSummaryCustomShiftKey = "CUSTOM"

// WorkSummary は従業員ひとり分の勤務日数・休み日数の集計結果の値オブジェクト
type WorkSummary struct {
	dayCountByShiftType   map[string]int
	totalWorkDayCount     int
	dayCountByTimeOffType map[string]int
	totalTimeOffDayCount  int
}

func NewWorkSummary(dayCountByShiftType map[string]int, dayCountByTimeOffType map[string]int) (*WorkSummary, error) {
	totalWork := 0
	for _, dayCount := range dayCountByShiftType {
		if dayCount < 0 {
			return nil, ErrInvalidWorkSummary
		}
		totalWork += dayCount
	}

	totalTimeOff := 0
	for _, dayCount := range dayCountByTimeOffType {
		if dayCount < 0 {
			return nil, ErrInvalidWorkSummary
		}
		totalTimeOff += dayCount
	}

	byShiftType := make(map[string]int, len(dayCountByShiftType))
	for key, dayCount := range dayCountByShiftType {
		byShiftType[key] = dayCount
	}
	byTimeOffType := make(map[string]int, len(dayCountByTimeOffType))
	for key, dayCount := range dayCountByTimeOffType {
		byTimeOffType[key] = dayCount
	}

	return &WorkSummary{
		dayCountByShiftType:   byShiftType,
		totalWorkDayCount:     totalWork,
		dayCountByTimeOffType: byTimeOffType,
		totalTimeOffDayCount:  totalTimeOff,
	}, nil
}

func (w *WorkSummary) DayCountByShiftType() map[string]int {
	result := make(map[string]int, len(w.dayCountByShiftType))
	for key, dayCount := range w.dayCountByShiftType {
		result[key] = dayCount
	}
	return result
}

func (w *WorkSummary) TotalWorkDayCount() int {
	return w.totalWorkDayCount
}

func (w *WorkSummary) DayCountByTimeOffType() map[string]int {
	result := make(map[string]int, len(w.dayCountByTimeOffType))
	for key, dayCount := range w.dayCountByTimeOffType {
		result[key] = dayCount
	}
	return result
}

func (w *WorkSummary) TotalTimeOffDayCount() int {
	return w.totalTimeOffDayCount
}

func (w *WorkSummary) Equals(other *WorkSummary) bool {
	if w == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(w.dayCountByShiftType) != len(other.dayCountByShiftType) {
		return false
	}
	for key, dayCount := range w.dayCountByShiftType {
		if other.dayCountByShiftType[key] != dayCount {
			return false
		}
	}
	if w.totalWorkDayCount != other.totalWorkDayCount {
		return false
	}
	if len(w.dayCountByTimeOffType) != len(other.dayCountByTimeOffType) {
		return false
	}
	for key, dayCount := range w.dayCountByTimeOffType {
		if other.dayCountByTimeOffType[key] != dayCount {
			return false
		}
	}
	return w.totalTimeOffDayCount == other.totalTimeOffDayCount
}

// WorkSummaries は従業員ごとの勤務・休みの集計結果を返す
// 標準アサインはシフト区分IDごと、カスタムアサインは WorkSummaryCustomShiftKey、
// 休みは休み種別コードごとに日数を数える
func (s *ShiftSchedule) WorkSummaries() map[EmployeeID]*WorkSummary {
	byShiftType := make(map[EmployeeID]map[string]int)
	byTimeOffType := make(map[EmployeeID]map[string]int)

	for _, assignment := range s.assignments {
		employeeID := assignment.EmployeeID()
		if _, exists := byShiftType[employeeID]; !exists {
			byShiftType[employeeID] = make(map[string]int)
			byTimeOffType[employeeID] = make(map[string]int)
		}

		switch assignment.Kind() {
		case ShiftAssignmentKindStandard:
			byShiftType[employeeID][assignment.ShiftTypeID().String()]++
		case ShiftAssignmentKindCustom:
			byShiftType[employeeID][WorkSummaryCustomShiftKey]++
		case ShiftAssignmentKindTimeOff:
			byTimeOffType[employeeID][assignment.TimeOffType().Code()]++
		}
	}

	result := make(map[EmployeeID]*WorkSummary, len(byShiftType))
	for employeeID := range byShiftType {
		// 日数はすべて 0 以上なので NewWorkSummary が失敗することはない
		summary, _ := NewWorkSummary(byShiftType[employeeID], byTimeOffType[employeeID])
		result[employeeID] = summary
	}
	return result
}
