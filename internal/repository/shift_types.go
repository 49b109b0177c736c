package repository

import (
	"context"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

func reconstructShiftType(id string, name string, startTime string, endTime string, version int32) (*domain.ShiftType, error) {
	shiftTypeID, err := domain.ParseShiftTypeID(id)
	if err != nil {
		return nil, err
	}
	shiftTypeName, err := domain.NewShiftTypeName(name)
	if err != nil {
		return nil, err
	}
	start, err := domain.NewShiftTypeTime(startTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.NewShiftTypeTime(endTime)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructShiftType(shiftTypeID, shiftTypeName, start, end, version)
}

func (r *Repository) GetShiftTypeByID(id domain.ShiftTypeID) (*domain.ShiftType, error) {
	query := `
		SELECT name, start_time, end_time, version
		FROM shift_types WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var (
		name      string
		startTime string
		endTime   string
		version   int32
	)

	dst := []any{&name, &startTime, &endTime, &version}
	if err := r.dbpool.QueryRowContext(ctx, query, id.String()).Scan(dst...); err != nil {
		return nil, err
	}

	return reconstructShiftType(id.String(), name, startTime, endTime, version)
}

func (r *Repository) GetAllShiftTypes() ([]*domain.ShiftType, error) {
	query := `
		SELECT id, name, start_time, end_time, version FROM shift_types ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shiftTypes := make([]*domain.ShiftType, 0)
	for rows.Next() {
		var (
			id        string
			name      string
			startTime string
			endTime   string
			version   int32
		)
		dst := []any{&id, &name, &startTime, &endTime, &version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shiftType, err := reconstructShiftType(id, name, startTime, endTime, version)
		if err != nil {
			return nil, err
		}
		shiftTypes = append(shiftTypes, shiftType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shiftTypes, nil
}

func (r *Repository) CreateShiftType(shiftType *domain.ShiftType) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shift_types (id, name, start_time, end_time)
		VALUES ($1, $2, $3, $4)
	`

	args := []any{shiftType.ID().String(), shiftType.Name().String(), shiftType.StartTime().String(), shiftType.EndTime().String()}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftType(shiftType *domain.ShiftType) error {
	query := `
		UPDATE shift_types
		SET
			name = $1,
			start_time = $2,
			end_time = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var version int32

	args := []any{shiftType.Name().String(), shiftType.StartTime().String(), shiftType.EndTime().String(), shiftType.ID().String(), shiftType.Version()}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftType(id domain.ShiftTypeID) error {
	query := `
		DELETE FROM shift_types WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id.String())
	if err != nil {
		return err
	}

	return nil
}
