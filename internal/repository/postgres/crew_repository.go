package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
)

type crewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCrewRepository(db *DB) repository.CrewRepository {
	return &crewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *crewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	// hired_at is assigned by the database, not the caller.
	query := `
		INSERT INTO crews (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, hired_at
	`

	err := r.db.QueryRowContext(ctx, query, crew.FirstName, crew.LastName).
		Scan(&crew.ID, &crew.HiredAt)
	if err != nil {
		r.logger.Error("Failed to create crew member", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *crewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var crew domain.Crew
	err := r.db.GetContext(ctx, &crew,
		`SELECT id, first_name, last_name, hired_at, image_path FROM crews WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCrewNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get crew member by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &crew, nil
}

func (r *crewRepository) List(ctx context.Context, page domain.Page) ([]*domain.Crew, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM crews`); err != nil {
		r.logger.Error("Failed to count crew members", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	crews := make([]*domain.Crew, 0)
	err := r.db.SelectContext(ctx, &crews,
		`SELECT id, first_name, last_name, hired_at, image_path
		 FROM crews ORDER BY id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list crew members", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return crews, total, nil
}

func (r *crewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE crews SET first_name = $1, last_name = $2 WHERE id = $3`,
		crew.FirstName, crew.LastName, crew.ID)
	if err != nil {
		r.logger.Error("Failed to update crew member", zap.Int64("id", crew.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrCrewNotFound
	}
	return nil
}

func (r *crewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete crew member", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrCrewNotFound
	}
	return nil
}

func (r *crewRepository) SetImagePath(ctx context.Context, id int64, path string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE crews SET image_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		r.logger.Error("Failed to set crew image", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrCrewNotFound
	}
	return nil
}
