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

type trainTypeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTrainTypeRepository(db *DB) repository.TrainTypeRepository {
	return &trainTypeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *trainTypeRepository) Create(ctx context.Context, trainType *domain.TrainType) error {
	query := `INSERT INTO train_types (name) VALUES ($1) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, trainType.Name).Scan(&trainType.ID)
	if err != nil {
		if isUniqueViolation(err, "train_types_name_key") {
			return errors.NewConflict("name", "train type with this name already exists")
		}
		r.logger.Error("Failed to create train type", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *trainTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TrainType, error) {
	var trainType domain.TrainType
	err := r.db.GetContext(ctx, &trainType, `SELECT id, name FROM train_types WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTrainTypeNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get train type by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &trainType, nil
}

func (r *trainTypeRepository) List(ctx context.Context, page domain.Page) ([]*domain.TrainType, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM train_types`); err != nil {
		r.logger.Error("Failed to count train types", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	trainTypes := make([]*domain.TrainType, 0)
	err := r.db.SelectContext(ctx, &trainTypes,
		`SELECT id, name FROM train_types ORDER BY id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list train types", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return trainTypes, total, nil
}

func (r *trainTypeRepository) Update(ctx context.Context, trainType *domain.TrainType) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE train_types SET name = $1 WHERE id = $2`,
		trainType.Name, trainType.ID)
	if err != nil {
		if isUniqueViolation(err, "train_types_name_key") {
			return errors.NewConflict("name", "train type with this name already exists")
		}
		r.logger.Error("Failed to update train type", zap.Int64("id", trainType.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTrainTypeNotFound
	}
	return nil
}

func (r *trainTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM train_types WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete train type", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTrainTypeNotFound
	}
	return nil
}
