package repository

import (
	"context"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

func (r *Repository) GetManagerByID(id int64) (*domain.Manager, error) {
	query := `
		SELECT username, password_hash, full_name, email, created_at, version
		FROM managers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	manager := &domain.Manager{
		ID: id,
	}

	dst := []any{&manager.Username, &manager.PasswordHash, &manager.FullName, &manager.Email, &manager.CreatedAt, &manager.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return manager, nil
}

func (r *Repository) GetManagerByUsername(username string) (*domain.Manager, error) {
	query := `
		SELECT id, password_hash, full_name, email, created_at, version
		FROM managers WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	manager := &domain.Manager{
		Username: username,
	}

	dst := []any{&manager.ID, &manager.PasswordHash, &manager.FullName, &manager.Email, &manager.CreatedAt, &manager.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return manager, nil
}

func (r *Repository) GetAllManagers() ([]*domain.Manager, error) {
	query := `
		SELECT id, username, password_hash, full_name, email, created_at, version FROM managers
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	managers := make([]*domain.Manager, 0)
	for rows.Next() {
		manager := &domain.Manager{}
		dst := []any{&manager.ID, &manager.Username, &manager.PasswordHash, &manager.FullName, &manager.Email, &manager.CreatedAt, &manager.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		managers = append(managers, manager)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return managers, nil
}

func (r *Repository) CreateManager(manager *domain.Manager) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO managers (username, password_hash, full_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	args := []any{manager.Username, manager.PasswordHash, manager.FullName, manager.Email}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&manager.ID, &manager.CreatedAt, &manager.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateManager(manager *domain.Manager) error {
	query := `
		UPDATE managers
		SET
			password_hash = $1,
			full_name = $2,
			email = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING username, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{manager.PasswordHash, manager.FullName, manager.Email, manager.ID, manager.Version}
	dst := []any{&manager.Username, &manager.CreatedAt, &manager.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteManager(id int64) error {
	query := `
		DELETE FROM managers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckManagerEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM managers WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
