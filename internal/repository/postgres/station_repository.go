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

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO stations (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, station.Name, station.Latitude, station.Longitude).
		Scan(&station.ID)
	if err != nil {
		if isUniqueViolation(err, "stations_name_key") {
			return errors.NewConflict("name", "station with this name already exists")
		}
		r.logger.Error("Failed to create station", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *stationRepository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	query := `SELECT id, name, latitude, longitude FROM stations WHERE id = $1`

	var station domain.Station
	err := r.db.GetContext(ctx, &station, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get station by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &station, nil
}

func (r *stationRepository) List(ctx context.Context, page domain.Page) ([]*domain.Station, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM stations`); err != nil {
		r.logger.Error("Failed to count stations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT id, name, latitude, longitude
		FROM stations
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	stations := make([]*domain.Station, 0)
	err := r.db.SelectContext(ctx, &stations, query, page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list stations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return stations, total, nil
}

func (r *stationRepository) Update(ctx context.Context, station *domain.Station) error {
	query := `
		UPDATE stations
		SET name = $1, latitude = $2, longitude = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query, station.Name, station.Latitude, station.Longitude, station.ID)
	if err != nil {
		if isUniqueViolation(err, "stations_name_key") {
			return errors.NewConflict("name", "station with this name already exists")
		}
		r.logger.Error("Failed to update station", zap.Int64("id", station.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrStationNotFound
	}
	return nil
}

func (r *stationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete station", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrStationNotFound
	}
	return nil
}
