package repository

import (
	"database/sql"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/config"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
	clock  domain.Clock
}

func NewRepository(cfg *config.Config, dbpool *sql.DB, clock domain.Clock) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
		clock:  clock,
	}
}
