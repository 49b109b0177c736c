package domain

import "time"

// シフトスケジュールのスナップショット
// 公開通知メールなど、従業員・シフト区分の名称を解決した形で外部に渡すときに使う

type ShiftAssignmentHistoryEmployee struct {
	ID       string `json:"id"` // 従業員は現在の情報と紐づけたい可能性があるため ID を持っておく
	FullName string `json:"fullName"`
	TypeCode string `json:"typeCode"`
	TypeName string `json:"typeName"`
}

type ShiftAssignmentHistoryShiftType struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"` // "HH:mm"
	EndTime   string `json:"endTime"`   // "HH:mm"
}

type ShiftAssignmentHistoryTimeOffType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ShiftAssignmentHistory struct {
	Date            string                             `json:"date"` // "YYYY-MM-DD"
	Employee        ShiftAssignmentHistoryEmployee     `json:"employee"`
	ShiftType       *ShiftAssignmentHistoryShiftType   `json:"shiftType"`
	CustomStartTime *string                            `json:"customStartTime"`
	CustomEndTime   *string                            `json:"customEndTime"`
	TimeOffType     *ShiftAssignmentHistoryTimeOffType `json:"timeOffType"`
}

type ShiftNoticeHistory struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ShiftScheduleHistory struct {
	Year             int                      `json:"year"`
	Month            int                      `json:"month"`
	ShiftAssignments []ShiftAssignmentHistory `json:"shiftAssignments"`
	ShiftNotices     []ShiftNoticeHistory     `json:"shiftNotices"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// BuildShiftScheduleHistory は従業員・シフト区分を解決してスナップショットを組み立てる
// 参照先が見つからないアサインはスナップショットから除外する
func BuildShiftScheduleHistory(schedule *ShiftSchedule, employees map[EmployeeID]*Employee, shiftTypes map[ShiftTypeID]*ShiftType) *ShiftScheduleHistory {
	assignments := make([]ShiftAssignmentHistory, 0, len(schedule.assignments))

	for _, assignment := range schedule.ShiftAssignments() {
		employee, exists := employees[assignment.EmployeeID()]
		if !exists {
			continue
		}

		history := ShiftAssignmentHistory{
			Date: assignment.Date().String(),
			Employee: ShiftAssignmentHistoryEmployee{
				ID:       employee.ID().String(),
				FullName: employee.FullName().String(),
				TypeCode: employee.Type().Code(),
				TypeName: employee.Type().DisplayName(),
			},
		}

		switch assignment.Kind() {
		case ShiftAssignmentKindStandard:
			shiftType, exists := shiftTypes[assignment.ShiftTypeID()]
			if !exists {
				continue
			}
			history.ShiftType = &ShiftAssignmentHistoryShiftType{
				Name:      shiftType.Name().String(),
				StartTime: shiftType.StartTime().String(),
				EndTime:   shiftType.EndTime().String(),
			}
		case ShiftAssignmentKindCustom:
			startTime := assignment.CustomStartTime().String()
			endTime := assignment.CustomEndTime().String()
			history.CustomStartTime = &startTime
			history.CustomEndTime = &endTime
		case ShiftAssignmentKindTimeOff:
			history.TimeOffType = &ShiftAssignmentHistoryTimeOffType{
				Code: assignment.TimeOffType().Code(),
				Name: assignment.TimeOffType().DisplayName(),
			}
		}

		assignments = append(assignments, history)
	}

	notices := make([]ShiftNoticeHistory, 0, len(schedule.notices))
	for _, notice := range schedule.ShiftNotices() {
		notices = append(notices, ShiftNoticeHistory{
			Title:   notice.Title().String(),
			Content: notice.Content().String(),
		})
	}

	return &ShiftScheduleHistory{
		Year:             schedule.Year().Int(),
		Month:            schedule.Month().Int(),
		ShiftAssignments: assignments,
		ShiftNotices:     notices,
		CreatedAt:        schedule.CreatedAt(),
		UpdatedAt:        schedule.UpdatedAt(),
	}
}
