package domain

import (
	"sort"
	"time"
)

// assignmentKey は集約内の (日付, 従業員) の組
// この組につきアサインは最大 1 件という不変条件をマップ構造で保証する
type assignmentKey struct {
	date       ShiftAssignmentDate
	employeeID EmployeeID
}

// ShiftSchedule は月次のシフト全体を表す集約ルート
// アサインとお知らせの生成・削除はすべてこの集約を経由する
type ShiftSchedule struct {
	id          ShiftScheduleID
	year        ShiftScheduleYear
	month       ShiftScheduleMonth
	isPublished bool
	assignments map[assignmentKey]*ShiftAssignment
	notices     []*ShiftNotice
	createdAt   time.Time
	updatedAt   time.Time
	version     int32
	clock       Clock
}

// NewShiftSchedule は対象年月のシフトスケジュールを新規作成する
// 対象年月が現在（JST）の年月より前の場合は作成できない
func NewShiftSchedule(clock Clock, year ShiftScheduleYear, month ShiftScheduleMonth) (*ShiftSchedule, error) {
	now := clock.Now().In(JST)
	thisYear, thisMonth := now.Year(), int(now.Month())

	canCreate := false
	if year.Int() > thisYear {
		canCreate = true
	} else if year.Int() == thisYear && month.Int() >= thisMonth {
		canCreate = true
	}
	if !canCreate {
		return nil, ErrCannotCreatePastShiftSchedule
	}

	return &ShiftSchedule{
		id:          NewShiftScheduleID(),
		year:        year,
		month:       month,
		isPublished: false,
		assignments: make(map[assignmentKey]*ShiftAssignment),
		notices:     make([]*ShiftNotice, 0),
		createdAt:   now,
		updatedAt:   now,
		clock:       clock,
	}, nil
}

// ReconstructShiftSchedule は永続化済みのデータからシフトスケジュールを復元する
// 過去年月かどうかの検証は新規作成時のみの制約なのでここでは行わないが、
// (日付, 従業員) の重複だけは壊れたデータを読み込まないよう拒否する
func ReconstructShiftSchedule(
	clock Clock,
	id ShiftScheduleID,
	year ShiftScheduleYear,
	month ShiftScheduleMonth,
	isPublished bool,
	assignments []*ShiftAssignment,
	notices []*ShiftNotice,
	createdAt time.Time,
	updatedAt time.Time,
	version int32,
) (*ShiftSchedule, error) {
	assignmentMap := make(map[assignmentKey]*ShiftAssignment, len(assignments))
	for _, assignment := range assignments {
		key := assignmentKey{date: assignment.Date(), employeeID: assignment.EmployeeID()}
		if _, exists := assignmentMap[key]; exists {
			return nil, ErrAssignmentAlreadyExists
		}
		assignmentMap[key] = assignment
	}

	if notices == nil {
		notices = make([]*ShiftNotice, 0)
	}

	return &ShiftSchedule{
		id:          id,
		year:        year,
		month:       month,
		isPublished: isPublished,
		assignments: assignmentMap,
		notices:     notices,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
		clock:       clock,
	}, nil
}

func (s *ShiftSchedule) ID() ShiftScheduleID {
	return s.id
}

func (s *ShiftSchedule) Year() ShiftScheduleYear {
	return s.year
}

func (s *ShiftSchedule) Month() ShiftScheduleMonth {
	return s.month
}

func (s *ShiftSchedule) IsPublished() bool {
	return s.isPublished
}

func (s *ShiftSchedule) CreatedAt() time.Time {
	return s.createdAt
}

func (s *ShiftSchedule) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *ShiftSchedule) Version() int32 {
	return s.version
}

// ShiftAssignments は全アサインを日付・従業員ID順で返す
func (s *ShiftSchedule) ShiftAssignments() []*ShiftAssignment {
	assignments := make([]*ShiftAssignment, 0, len(s.assignments))
	for _, assignment := range s.assignments {
		assignments = append(assignments, assignment)
	}
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Date() != assignments[j].Date() {
			return assignments[i].Date() < assignments[j].Date()
		}
		return assignments[i].EmployeeID() < assignments[j].EmployeeID()
	})
	return assignments
}

func (s *ShiftSchedule) filterAssignments(kind ShiftAssignmentKind) []*ShiftAssignment {
	assignments := make([]*ShiftAssignment, 0)
	for _, assignment := range s.ShiftAssignments() {
		if assignment.Kind() == kind {
			assignments = append(assignments, assignment)
		}
	}
	return assignments
}

func (s *ShiftSchedule) StandardShiftAssignments() []*ShiftAssignment {
	return s.filterAssignments(ShiftAssignmentKindStandard)
}

func (s *ShiftSchedule) CustomShiftAssignments() []*ShiftAssignment {
	return s.filterAssignments(ShiftAssignmentKindCustom)
}

func (s *ShiftSchedule) TimeOffAssignments() []*ShiftAssignment {
	return s.filterAssignments(ShiftAssignmentKindTimeOff)
}

func (s *ShiftSchedule) ShiftNotices() []*ShiftNotice {
	notices := make([]*ShiftNotice, len(s.notices))
	copy(notices, s.notices)
	return notices
}

// isPast は対象年月が現在（JST）の年月より前かどうかを判定する
// 呼び出しのたびに再計算されるため、実時間の経過とともに自動的にロックされる
func (s *ShiftSchedule) isPast() bool {
	now := s.clock.Now().In(JST)
	currentYear, currentMonth := now.Year(), int(now.Month())

	if s.year.Int() < currentYear {
		return true
	}
	if s.year.Int() == currentYear && s.month.Int() < currentMonth {
		return true
	}
	return false
}

func (s *ShiftSchedule) hasAssignment(date ShiftAssignmentDate, employeeID EmployeeID) bool {
	_, exists := s.assignments[assignmentKey{date: date, employeeID: employeeID}]
	return exists
}

func (s *ShiftSchedule) touch() {
	s.updatedAt = s.clock.Now().In(JST)
}

// AssignShift はシフト区分を指定して従業員をアサインする
func (s *ShiftSchedule) AssignShift(date ShiftAssignmentDate, employeeID EmployeeID, shiftTypeID ShiftTypeID) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}
	if s.hasAssignment(date, employeeID) {
		return ErrAssignmentAlreadyExists
	}

	assignment := NewStandardShiftAssignment(s.id, date, employeeID, shiftTypeID)
	s.assignments[assignmentKey{date: date, employeeID: employeeID}] = assignment
	s.touch()
	return nil
}

// AssignShiftWithCustomTime は勤務時間を直接指定して従業員をアサインする
func (s *ShiftSchedule) AssignShiftWithCustomTime(date ShiftAssignmentDate, employeeID EmployeeID, startTime ShiftTypeTime, endTime ShiftTypeTime) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}
	if s.hasAssignment(date, employeeID) {
		return ErrAssignmentAlreadyExists
	}

	assignment, err := NewCustomShiftAssignment(s.id, date, employeeID, startTime, endTime)
	if err != nil {
		return err
	}
	s.assignments[assignmentKey{date: date, employeeID: employeeID}] = assignment
	s.touch()
	return nil
}

// GrantPublicHoliday は従業員に公休を付与する
func (s *ShiftSchedule) GrantPublicHoliday(date ShiftAssignmentDate, employeeID EmployeeID) error {
	return s.grantTimeOff(date, employeeID, TimeOffTypePublicHoliday)
}

// GrantPaidLeave は従業員に有給を付与する
func (s *ShiftSchedule) GrantPaidLeave(date ShiftAssignmentDate, employeeID EmployeeID) error {
	return s.grantTimeOff(date, employeeID, TimeOffTypePaidLeave)
}

func (s *ShiftSchedule) grantTimeOff(date ShiftAssignmentDate, employeeID EmployeeID, timeOffType TimeOffType) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}
	if s.hasAssignment(date, employeeID) {
		return ErrAssignmentAlreadyExists
	}

	assignment := NewTimeOffAssignment(s.id, date, employeeID, timeOffType)
	s.assignments[assignmentKey{date: date, employeeID: employeeID}] = assignment
	s.touch()
	return nil
}

// Unassign は従業員の特定の日付のアサインを解除する（勤務か休みかに関わらず）
func (s *ShiftSchedule) Unassign(date ShiftAssignmentDate, employeeID EmployeeID) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}

	key := assignmentKey{date: date, employeeID: employeeID}
	if _, exists := s.assignments[key]; !exists {
		return ErrShiftAssignmentNotFound
	}

	delete(s.assignments, key)
	s.touch()
	return nil
}

// Publish はシフトスケジュールを公開する
// すでに公開済みの場合は何もしない（updatedAt も更新しない）
func (s *ShiftSchedule) Publish() {
	if s.isPublished {
		return
	}
	s.isPublished = true
	s.touch()
}

// Unpublish はシフトスケジュールを非公開にする
func (s *ShiftSchedule) Unpublish() {
	if !s.isPublished {
		return
	}
	s.isPublished = false
	s.touch()
}

// CreateNotice はお知らせを作成して追加する
func (s *ShiftSchedule) CreateNotice(title ShiftNoticeTitle, content ShiftNoticeContent) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}

	s.notices = append(s.notices, NewShiftNotice(s.id, title, content))
	s.touch()
	return nil
}

// UpdateNotice はお知らせのタイトル・本文を個別に更新する
// nil のフィールドは変更しない。両方 nil の場合は updatedAt も更新しない
func (s *ShiftSchedule) UpdateNotice(id ShiftNoticeID, title *string, content *string) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}

	var notice *ShiftNotice
	for _, n := range s.notices {
		if n.ID() == id {
			notice = n
			break
		}
	}
	if notice == nil {
		return ErrShiftNoticeNotFound
	}

	if title != nil {
		noticeTitle, err := NewShiftNoticeTitle(*title)
		if err != nil {
			return err
		}
		notice.updateTitle(noticeTitle)
	}
	if content != nil {
		noticeContent, err := NewShiftNoticeContent(*content)
		if err != nil {
			return err
		}
		notice.updateContent(noticeContent)
	}
	if title != nil || content != nil {
		s.touch()
	}
	return nil
}

// DeleteNotice はお知らせを削除する
func (s *ShiftSchedule) DeleteNotice(id ShiftNoticeID) error {
	if s.isPast() {
		return ErrCannotEditPastShiftSchedule
	}

	for i, notice := range s.notices {
		if notice.ID() == id {
			s.notices = append(s.notices[:i], s.notices[i+1:]...)
			s.touch()
			return nil
		}
	}
	return ErrShiftNoticeNotFound
}

// CountWorkDaysPerEmployee は従業員ごとの勤務日数を集計する
// 勤務日数 = 標準またはカスタムのアサインが入っている日付数（休みは除外）
// 同一日付の重複は数えない
func (s *ShiftSchedule) CountWorkDaysPerEmployee() map[EmployeeID]int {
	workDays := make(map[EmployeeID]map[ShiftAssignmentDate]struct{})
	for _, assignment := range s.assignments {
		if assignment.IsTimeOff() {
			continue
		}
		employeeID := assignment.EmployeeID()
		if _, exists := workDays[employeeID]; !exists {
			workDays[employeeID] = make(map[ShiftAssignmentDate]struct{})
		}
		workDays[employeeID][assignment.Date()] = struct{}{}
	}

	result := make(map[EmployeeID]int, len(workDays))
	for employeeID, dates := range workDays {
		result[employeeID] = len(dates)
	}
	return result
}
