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

type trainRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTrainRepository(db *DB) repository.TrainRepository {
	return &trainRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const trainSelect = `
	SELECT
		t.id, t.name, t.carriage_count, t.seats_per_carriage, t.train_type_id,
		tt.id AS type_id, tt.name AS type_name
	FROM trains t
	JOIN train_types tt ON tt.id = t.train_type_id
`

func (r *trainRepository) Create(ctx context.Context, train *domain.Train) error {
	query := `
		INSERT INTO trains (name, carriage_count, seats_per_carriage, train_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		train.Name, train.CarriageCount, train.SeatsPerCarriage, train.TrainTypeID,
	).Scan(&train.ID)
	if err != nil {
		r.logger.Error("Failed to create train", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *trainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	row := r.db.QueryRowContext(ctx, trainSelect+` WHERE t.id = $1`, id)

	train, err := scanTrain(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTrainNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get train by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return train, nil
}

func (r *trainRepository) List(ctx context.Context, page domain.Page) ([]*domain.Train, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM trains`); err != nil {
		r.logger.Error("Failed to count trains", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, trainSelect+` ORDER BY t.id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list trains", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	trains := make([]*domain.Train, 0)
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			r.logger.Error("Failed to scan train", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		trains = append(trains, train)
	}

	return trains, total, nil
}

func (r *trainRepository) Update(ctx context.Context, train *domain.Train) error {
	query := `
		UPDATE trains
		SET name = $1, carriage_count = $2, seats_per_carriage = $3, train_type_id = $4
		WHERE id = $5
	`

	res, err := r.db.ExecContext(
		ctx, query,
		train.Name, train.CarriageCount, train.SeatsPerCarriage, train.TrainTypeID, train.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update train", zap.Int64("id", train.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTrainNotFound
	}
	return nil
}

func (r *trainRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trains WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete train", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTrainNotFound
	}
	return nil
}

func scanTrain(row rowScanner) (*domain.Train, error) {
	var train domain.Train
	var trainType domain.TrainType

	err := row.Scan(
		&train.ID, &train.Name, &train.CarriageCount, &train.SeatsPerCarriage,
		&train.TrainTypeID, &trainType.ID, &trainType.Name,
	)
	if err != nil {
		return nil, err
	}

	train.TrainType = &trainType
	return &train, nil
}
