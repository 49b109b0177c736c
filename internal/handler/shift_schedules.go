package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
)

type shiftAssignmentResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	EmployeeID      string  `json:"employeeId"`
	Kind            string  `json:"kind"`
	ShiftTypeID     *string `json:"shiftTypeId"`
	CustomStartTime *string `json:"customStartTime"`
	CustomEndTime   *string `json:"customEndTime"`
	TimeOffType     *string `json:"timeOffType"`
}

func newShiftAssignmentResponse(assignment *domain.ShiftAssignment) *shiftAssignmentResponse {
	res := &shiftAssignmentResponse{
		ID:         assignment.ID().String(),
		Date:       assignment.Date().String(),
		EmployeeID: assignment.EmployeeID().String(),
		Kind:       string(assignment.Kind()),
	}

	switch assignment.Kind() {
	case domain.ShiftAssignmentKindStandard:
		shiftTypeID := assignment.ShiftTypeID().String()
		res.ShiftTypeID = &shiftTypeID
	case domain.ShiftAssignmentKindCustom:
		startTime := assignment.CustomStartTime().String()
		endTime := assignment.CustomEndTime().String()
		res.CustomStartTime = &startTime
		res.CustomEndTime = &endTime
	case domain.ShiftAssignmentKindTimeOff:
		timeOffType := assignment.TimeOffType().Code()
		res.TimeOffType = &timeOffType
	}

	return res
}

type shiftNoticeResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func newShiftNoticeResponse(notice *domain.ShiftNotice) *shiftNoticeResponse {
	return &shiftNoticeResponse{
		ID:      notice.ID().String(),
		Title:   notice.Title().String(),
		Content: notice.Content().String(),
	}
}

type shiftScheduleResponse struct {
	ID               string                     `json:"id"`
	Year             int                        `json:"year"`
	Month            int                        `json:"month"`
	IsPublished      bool                       `json:"isPublished"`
	ShiftAssignments []*shiftAssignmentResponse `json:"shiftAssignments"`
	ShiftNotices     []*shiftNoticeResponse     `json:"shiftNotices"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
	Version          int32                      `json:"version"`
}

func newShiftScheduleResponse(schedule *domain.ShiftSchedule) *shiftScheduleResponse {
	assignments := schedule.ShiftAssignments()
	assignmentsRes := make([]*shiftAssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		assignmentsRes = append(assignmentsRes, newShiftAssignmentResponse(assignment))
	}

	notices := schedule.ShiftNotices()
	noticesRes := make([]*shiftNoticeResponse, 0, len(notices))
	for _, notice := range notices {
		noticesRes = append(noticesRes, newShiftNoticeResponse(notice))
	}

	return &shiftScheduleResponse{
		ID:               schedule.ID().String(),
		Year:             schedule.Year().Int(),
		Month:            schedule.Month().Int(),
		IsPublished:      schedule.IsPublished(),
		ShiftAssignments: assignmentsRes,
		ShiftNotices:     noticesRes,
		CreatedAt:        schedule.CreatedAt(),
		UpdatedAt:        schedule.UpdatedAt(),
		Version:          schedule.Version(),
	}
}

type shiftScheduleSummaryResponse struct {
	ID          string    `json:"id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int32     `json:"version"`
}

func (h *Handler) GetAllShiftSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetAllShiftSchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	res := make([]*shiftScheduleSummaryResponse, 0, len(schedules))
	for _, schedule := range schedules {
		res = append(res, &shiftScheduleSummaryResponse{
			ID:          schedule.ID().String(),
			Year:        schedule.Year().Int(),
			Month:       schedule.Month().Int(),
			IsPublished: schedule.IsPublished(),
			CreatedAt:   schedule.CreatedAt(),
			UpdatedAt:   schedule.UpdatedAt(),
			Version:     schedule.Version(),
		})
	}

	h.successResponse(w, r, "シフトスケジュール一覧を取得しました", res)
}

func (h *Handler) CreateShiftSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year  int `json:"year" validate:"required"`
		Month int `json:"month" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	year, err := domain.NewShiftScheduleYear(req.Year)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	month, err := domain.NewShiftScheduleMonth(req.Month)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	// 同じ対象年月のシフトスケジュールは 1 つまで
	isExists, err := h.repository.CheckShiftScheduleIfExists(year.Int(), month.Int())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.errorResponse(w, r, "対象年月のシフトスケジュールは既に存在します")
		return
	}

	schedule, err := domain.NewShiftSchedule(h.clock, year, month)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	if err := h.repository.CreateShiftSchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "シフトスケジュールを作成しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) GetShiftScheduleInfo(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)
	h.successResponse(w, r, "シフトスケジュールを取得しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) DeleteShiftSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := h.repository.DeleteShiftSchedule(schedule.ID()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "シフトスケジュールを削除しました", nil)
}

// saveShiftSchedule は集約の保存と楽観ロック競合時の応答をまとめたもの
// 保存に成功した場合のみ true を返す
func (h *Handler) saveShiftSchedule(w http.ResponseWriter, r *http.Request, schedule *domain.ShiftSchedule) bool {
	if err := h.repository.SaveShiftSchedule(schedule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "シフトスケジュールの保存に失敗しました。もう一度お試しください")
		default:
			h.internalServerError(w, r, err)
		}
		return false
	}
	return true
}

func (h *Handler) PublishShiftSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	schedule.Publish()

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	// 公開時点のスナップショットを組み立てて通知メールを送る
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	shiftTypes, err := h.repository.GetAllShiftTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employeesByID := make(map[domain.EmployeeID]*domain.Employee, len(employees))
	for _, employee := range employees {
		employeesByID[employee.ID()] = employee
	}
	shiftTypesByID := make(map[domain.ShiftTypeID]*domain.ShiftType, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		shiftTypesByID[shiftType.ID()] = shiftType
	}

	history := domain.BuildShiftScheduleHistory(schedule, employeesByID, shiftTypesByID)

	mailMessage := domain.MailMessage{
		Type: "schedule_published",
		To:   h.config.Email.NotifyTo,
		Data: domain.SchedulePublishedMailData{
			Year:    schedule.Year().Int(),
			Month:   schedule.Month().Int(),
			History: history,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"mail_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "シフトスケジュールを公開しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) UnpublishShiftSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	schedule.Unpublish()

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "シフトスケジュールを非公開にしました", newShiftScheduleResponse(schedule))
}

func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        string `json:"date" validate:"required"`
		EmployeeID  string `json:"employeeId" validate:"required"`
		ShiftTypeID string `json:"shiftTypeId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := domain.NewShiftAssignmentDate(req.Date)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	employeeID, err := domain.ParseEmployeeID(req.EmployeeID)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	shiftTypeID, err := domain.ParseShiftTypeID(req.ShiftTypeID)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	// 参照先が実在することを確認する
	if _, err := h.repository.GetEmployeeByID(employeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "従業員が存在しません")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if _, err := h.repository.GetShiftTypeByID(shiftTypeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "シフト区分が存在しません")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := schedule.AssignShift(date, employeeID, shiftTypeID); err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "シフトをアサインしました", newShiftScheduleResponse(schedule))
}

func (h *Handler) AssignShiftWithCustomTime(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date       string `json:"date" validate:"required"`
		EmployeeID string `json:"employeeId" validate:"required"`
		StartTime  string `json:"startTime" validate:"required"`
		EndTime    string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := domain.NewShiftAssignmentDate(req.Date)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	employeeID, err := domain.ParseEmployeeID(req.EmployeeID)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	startTime, err := domain.NewShiftTypeTime(req.StartTime)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	endTime, err := domain.NewShiftTypeTime(req.EndTime)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	if _, err := h.repository.GetEmployeeByID(employeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "従業員が存在しません")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := schedule.AssignShiftWithCustomTime(date, employeeID, startTime, endTime); err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "シフトをアサインしました", newShiftScheduleResponse(schedule))
}

func (h *Handler) GrantTimeOff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        string `json:"date" validate:"required"`
		EmployeeID  string `json:"employeeId" validate:"required"`
		TimeOffType string `json:"timeOffType" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := domain.NewShiftAssignmentDate(req.Date)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	employeeID, err := domain.ParseEmployeeID(req.EmployeeID)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	timeOffType, err := domain.ParseTimeOffType(req.TimeOffType)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	if _, err := h.repository.GetEmployeeByID(employeeID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "従業員が存在しません")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	switch timeOffType {
	case domain.TimeOffTypePublicHoliday:
		err = schedule.GrantPublicHoliday(date, employeeID)
	case domain.TimeOffTypePaidLeave:
		err = schedule.GrantPaidLeave(date, employeeID)
	}
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "休みを付与しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) Unassign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date       string `json:"date" validate:"required"`
		EmployeeID string `json:"employeeId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := domain.NewShiftAssignmentDate(req.Date)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	employeeID, err := domain.ParseEmployeeID(req.EmployeeID)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := schedule.Unassign(date, employeeID); err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "アサインを解除しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) CreateShiftNotice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	title, err := domain.NewShiftNoticeTitle(req.Title)
	if err != nil {
		h.domainError(w, r, err)
		return
	}
	content, err := domain.NewShiftNoticeContent(req.Content)
	if err != nil {
		h.domainError(w, r, err)
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := schedule.CreateNotice(title, content); err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "お知らせを作成しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) UpdateShiftNotice(w http.ResponseWriter, r *http.Request) {
	noticeID, err := domain.ParseShiftNoticeID(chi.URLParam(r, "noticeId"))
	if err != nil {
		h.errorResponse(w, r, "お知らせIDが無効です")
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := schedule.UpdateNotice(noticeID, req.Title, req.Content); err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "お知らせを更新しました", newShiftScheduleResponse(schedule))
}

func (h *Handler) DeleteShiftNotice(w http.ResponseWriter, r *http.Request) {
	noticeID, err := domain.ParseShiftNoticeID(chi.URLParam(r, "noticeId"))
	if err != nil {
		h.errorResponse(w, r, "お知らせIDが無効です")
		return
	}

	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	if err := schedule.DeleteNotice(noticeID); err != nil {
		h.domainError(w, r, err)
		return
	}

	if !h.saveShiftSchedule(w, r, schedule) {
		return
	}

	h.successResponse(w, r, "お知らせを削除しました", nil)
}

type workSummaryResponse struct {
	DayCountByShiftType   map[string]int `json:"dayCountByShiftType"`
	TotalWorkDayCount     int            `json:"totalWorkDayCount"`
	DayCountByTimeOffType map[string]int `json:"dayCountByTimeOffType"`
	TotalTimeOffDayCount  int            `json:"totalTimeOffDayCount"`
	DistinctWorkDayCount  int            `json:"distinctWorkDayCount"`
}

func (h *Handler) GetWorkSummaries(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ShiftScheduleInfoCtx).(*domain.ShiftSchedule)

	summaries := schedule.WorkSummaries()
	workDays := schedule.CountWorkDaysPerEmployee()

	res := make(map[string]*workSummaryResponse, len(summaries))
	for employeeID, summary := range summaries {
		res[employeeID.String()] = &workSummaryResponse{
			DayCountByShiftType:   summary.DayCountByShiftType(),
			TotalWorkDayCount:     summary.TotalWorkDayCount(),
			DayCountByTimeOffType: summary.DayCountByTimeOffType(),
			TotalTimeOffDayCount:  summary.TotalTimeOffDayCount(),
			DistinctWorkDayCount:  workDays[employeeID],
		}
	}

	h.successResponse(w, r, "勤務集計を取得しました", res)
}
