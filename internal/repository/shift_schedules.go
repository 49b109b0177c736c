package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

// shiftAssignmentRow は shift_assignments テーブルの 1 行
// kind によって有効なカラムが変わるため nullable で受ける
type shiftAssignmentRow struct {
	ID              string
	ShiftScheduleID string
	Date            string
	EmployeeID      string
	Kind            string
	ShiftTypeID     sql.NullString
	CustomStartTime sql.NullString
	CustomEndTime   sql.NullString
	TimeOffType     sql.NullString
}

func reconstructShiftAssignment(row *shiftAssignmentRow) (*domain.ShiftAssignment, error) {
	id, err := domain.ParseShiftAssignmentID(row.ID)
	if err != nil {
		return nil, err
	}
	scheduleID, err := domain.ParseShiftScheduleID(row.ShiftScheduleID)
	if err != nil {
		return nil, err
	}
	date, err := domain.NewShiftAssignmentDate(row.Date)
	if err != nil {
		return nil, err
	}
	employeeID, err := domain.ParseEmployeeID(row.EmployeeID)
	if err != nil {
		return nil, err
	}

	switch domain.ShiftAssignmentKind(row.Kind) {
	case domain.ShiftAssignmentKindStandard:
		shiftTypeID, err := domain.ParseShiftTypeID(row.ShiftTypeID.String)
		if err != nil {
			return nil, err
		}
		return domain.ReconstructStandardShiftAssignment(id, scheduleID, date, employeeID, shiftTypeID), nil
	case domain.ShiftAssignmentKindCustom:
		startTime, err := domain.NewShiftTypeTime(row.CustomStartTime.String)
		if err != nil {
			return nil, err
		}
		endTime, err := domain.NewShiftTypeTime(row.CustomEndTime.String)
		if err != nil {
			return nil, err
		}
		return domain.ReconstructCustomShiftAssignment(id, scheduleID, date, employeeID, startTime, endTime)
	case domain.ShiftAssignmentKindTimeOff:
		timeOffType, err := domain.ParseTimeOffType(row.TimeOffType.String)
		if err != nil {
			return nil, err
		}
		return domain.ReconstructTimeOffAssignment(id, scheduleID, date, employeeID, timeOffType), nil
	default:
		return nil, fmt.Errorf("unknown shift assignment kind: %s", row.Kind)
	}
}

func reconstructShiftNotice(id string, scheduleID string, title string, content string) (*domain.ShiftNotice, error) {
	noticeID, err := domain.ParseShiftNoticeID(id)
	if err != nil {
		return nil, err
	}
	shiftScheduleID, err := domain.ParseShiftScheduleID(scheduleID)
	if err != nil {
		return nil, err
	}
	noticeTitle, err := domain.NewShiftNoticeTitle(title)
	if err != nil {
		return nil, err
	}
	noticeContent, err := domain.NewShiftNoticeContent(content)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructShiftNotice(noticeID, shiftScheduleID, noticeTitle, noticeContent), nil
}

func (r *Repository) reconstructShiftSchedule(
	id string,
	year int,
	month int,
	isPublished bool,
	assignments []*domain.ShiftAssignment,
	notices []*domain.ShiftNotice,
	createdAt time.Time,
	updatedAt time.Time,
	version int32,
) (*domain.ShiftSchedule, error) {
	scheduleID, err := domain.ParseShiftScheduleID(id)
	if err != nil {
		return nil, err
	}
	scheduleYear, err := domain.NewShiftScheduleYear(year)
	if err != nil {
		return nil, err
	}
	scheduleMonth, err := domain.NewShiftScheduleMonth(month)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructShiftSchedule(r.clock, scheduleID, scheduleYear, scheduleMonth, isPublished, assignments, notices, createdAt, updatedAt, version)
}

func (r *Repository) getShiftAssignmentsByScheduleID(ctx context.Context, scheduleID string) ([]*domain.ShiftAssignment, error) {
	query := `
		SELECT id, shift_schedule_id, date, employee_id, kind, shift_type_id, custom_start_time, custom_end_time, time_off_type
		FROM shift_assignments
		WHERE shift_schedule_id = $1
		ORDER BY date, employee_id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.ShiftAssignment, 0)
	for rows.Next() {
		var row shiftAssignmentRow
		dst := []any{&row.ID, &row.ShiftScheduleID, &row.Date, &row.EmployeeID, &row.Kind, &row.ShiftTypeID, &row.CustomStartTime, &row.CustomEndTime, &row.TimeOffType}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignment, err := reconstructShiftAssignment(&row)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Repository) getShiftNoticesByScheduleID(ctx context.Context, scheduleID string) ([]*domain.ShiftNotice, error) {
	query := `
		SELECT id, shift_schedule_id, title, content
		FROM shift_notices
		WHERE shift_schedule_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := make([]*domain.ShiftNotice, 0)
	for rows.Next() {
		var (
			id              string
			shiftScheduleID string
			title           string
			content         string
		)
		if err := rows.Scan(&id, &shiftScheduleID, &title, &content); err != nil {
			return nil, err
		}
		notice, err := reconstructShiftNotice(id, shiftScheduleID, title, content)
		if err != nil {
			return nil, err
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

func (r *Repository) GetShiftScheduleByID(id domain.ShiftScheduleID) (*domain.ShiftSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT year, month, is_published, created_at, updated_at, version
		FROM shift_schedules WHERE id = $1
	`

	var (
		year        int
		month       int
		isPublished bool
		createdAt   time.Time
		updatedAt   time.Time
		version     int32
	)

	dst := []any{&year, &month, &isPublished, &createdAt, &updatedAt, &version}
	if err := r.dbpool.QueryRowContext(ctx, query, id.String()).Scan(dst...); err != nil {
		return nil, err
	}

	assignments, err := r.getShiftAssignmentsByScheduleID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	notices, err := r.getShiftNoticesByScheduleID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return r.reconstructShiftSchedule(id.String(), year, month, isPublished, assignments, notices, createdAt, updatedAt, version)
}

func (r *Repository) GetAllShiftSchedules() ([]*domain.ShiftSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, year, month, is_published, created_at, updated_at, version
		FROM shift_schedules ORDER BY year, month
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type scheduleRow struct {
		ID          string
		Year        int
		Month       int
		IsPublished bool
		CreatedAt   time.Time
		UpdatedAt   time.Time
		Version     int32
	}

	scheduleRows := make([]scheduleRow, 0)
	for rows.Next() {
		var row scheduleRow
		dst := []any{&row.ID, &row.Year, &row.Month, &row.IsPublished, &row.CreatedAt, &row.UpdatedAt, &row.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		scheduleRows = append(scheduleRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	schedules := make([]*domain.ShiftSchedule, 0, len(scheduleRows))
	for _, row := range scheduleRows {
		assignments, err := r.getShiftAssignmentsByScheduleID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		notices, err := r.getShiftNoticesByScheduleID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		schedule, err := r.reconstructShiftSchedule(row.ID, row.Year, row.Month, row.IsPublished, assignments, notices, row.CreatedAt, row.UpdatedAt, row.Version)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

func (r *Repository) CreateShiftSchedule(schedule *domain.ShiftSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shift_schedules (id, year, month, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{schedule.ID().String(), schedule.Year().Int(), schedule.Month().Int(), schedule.IsPublished(), schedule.CreatedAt(), schedule.UpdatedAt()}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	if err := insertShiftScheduleChildren(ctx, tx, schedule); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// SaveShiftSchedule は集約全体を保存する
// 子レコード（アサイン・お知らせ）は削除してから入れ直す
func (r *Repository) SaveShiftSchedule(schedule *domain.ShiftSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE shift_schedules
		SET
			is_published = $1,
			updated_at = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	var version int32

	args := []any{schedule.IsPublished(), schedule.UpdatedAt(), schedule.ID().String(), schedule.Version()}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return err
	}

	query = `DELETE FROM shift_assignments WHERE shift_schedule_id = $1`
	if _, err := tx.ExecContext(ctx, query, schedule.ID().String()); err != nil {
		return err
	}

	query = `DELETE FROM shift_notices WHERE shift_schedule_id = $1`
	if _, err := tx.ExecContext(ctx, query, schedule.ID().String()); err != nil {
		return err
	}

	if err := insertShiftScheduleChildren(ctx, tx, schedule); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func insertShiftScheduleChildren(ctx context.Context, tx *sql.Tx, schedule *domain.ShiftSchedule) error {
	for _, assignment := range schedule.ShiftAssignments() {
		query := `
			INSERT INTO shift_assignments (id, shift_schedule_id, date, employee_id, kind, shift_type_id, custom_start_time, custom_end_time, time_off_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		var (
			shiftTypeID     sql.NullString
			customStartTime sql.NullString
			customEndTime   sql.NullString
			timeOffType     sql.NullString
		)
		switch assignment.Kind() {
		case domain.ShiftAssignmentKindStandard:
			shiftTypeID = sql.NullString{String: assignment.ShiftTypeID().String(), Valid: true}
		case domain.ShiftAssignmentKindCustom:
			customStartTime = sql.NullString{String: assignment.CustomStartTime().String(), Valid: true}
			customEndTime = sql.NullString{String: assignment.CustomEndTime().String(), Valid: true}
		case domain.ShiftAssignmentKindTimeOff:
			timeOffType = sql.NullString{String: assignment.TimeOffType().Code(), Valid: true}
		}

		args := []any{
			assignment.ID().String(),
			assignment.ShiftScheduleID().String(),
			assignment.Date().String(),
			assignment.EmployeeID().String(),
			string(assignment.Kind()),
			shiftTypeID,
			customStartTime,
			customEndTime,
			timeOffType,
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	for _, notice := range schedule.ShiftNotices() {
		query := `
			INSERT INTO shift_notices (id, shift_schedule_id, title, content)
			VALUES ($1, $2, $3, $4)
		`
		args := []any{notice.ID().String(), notice.ShiftScheduleID().String(), notice.Title().String(), notice.Content().String()}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) DeleteShiftSchedule(id domain.ShiftScheduleID) error {
	query := `
		DELETE FROM shift_schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id.String())
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckShiftScheduleIfExists(year int, month int) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM shift_schedules WHERE year = $1 AND month = $2)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, year, month).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
