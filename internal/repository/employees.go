package repository

import (
	"context"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

// 従業員はドメイン層でカプセル化されているため
// カラムを一旦ローカルに読み込んでから Reconstruct で復元する
func reconstructEmployee(id string, fullName string, employeeType string, version int32) (*domain.Employee, error) {
	employeeID, err := domain.ParseEmployeeID(id)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewEmployeeFullName(fullName)
	if err != nil {
		return nil, err
	}
	typ, err := domain.ParseEmployeeType(employeeType)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructEmployee(employeeID, name, typ, version), nil
}

func (r *Repository) GetEmployeeByID(id domain.EmployeeID) (*domain.Employee, error) {
	query := `
		SELECT full_name, employee_type, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var (
		fullName     string
		employeeType string
		version      int32
	)

	dst := []any{&fullName, &employeeType, &version}
	if err := r.dbpool.QueryRowContext(ctx, query, id.String()).Scan(dst...); err != nil {
		return nil, err
	}

	return reconstructEmployee(id.String(), fullName, employeeType, version)
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, full_name, employee_type, version FROM employees ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		var (
			id           string
			fullName     string
			employeeType string
			version      int32
		)
		dst := []any{&id, &fullName, &employeeType, &version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employee, err := reconstructEmployee(id, fullName, employeeType, version)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (id, full_name, employee_type)
		VALUES ($1, $2, $3)
	`

	args := []any{employee.ID().String(), employee.FullName().String(), employee.Type().Code()}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			full_name = $1,
			employee_type = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var version int32

	args := []any{employee.FullName().String(), employee.Type().Code(), employee.ID().String(), employee.Version()}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id domain.EmployeeID) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id.String())
	if err != nil {
		return err
	}

	return nil
}
