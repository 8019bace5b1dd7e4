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

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const routeSelect = `
	SELECT
		r.id, r.source_id, r.destination_id, r.distance,
		r.source_datetime, r.destination_datetime,
		s.id AS src_id, s.name AS src_name, s.latitude AS src_lat, s.longitude AS src_lon,
		d.id AS dst_id, d.name AS dst_name, d.latitude AS dst_lat, d.longitude AS dst_lon
	FROM routes r
	JOIN stations s ON s.id = r.source_id
	JOIN stations d ON d.id = r.destination_id
`

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (source_id, destination_id, distance, source_datetime, destination_datetime)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		route.SourceID, route.DestinationID, route.Distance,
		route.SourceDatetime, route.DestinationDatetime,
	).Scan(&route.ID)
	if err != nil {
		r.logger.Error("Failed to create route", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	row := r.db.QueryRowContext(ctx, routeSelect+` WHERE r.id = $1`, id)

	route, err := scanRoute(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

func (r *routeRepository) List(ctx context.Context, page domain.Page) ([]*domain.Route, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM routes`); err != nil {
		r.logger.Error("Failed to count routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, routeSelect+` ORDER BY r.id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			r.logger.Error("Failed to scan route", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		routes = append(routes, route)
	}

	return routes, total, nil
}

func (r *routeRepository) Update(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes
		SET source_id = $1, destination_id = $2, distance = $3,
		    source_datetime = $4, destination_datetime = $5
		WHERE id = $6
	`

	res, err := r.db.ExecContext(
		ctx, query,
		route.SourceID, route.DestinationID, route.Distance,
		route.SourceDatetime, route.DestinationDatetime, route.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update route", zap.Int64("id", route.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrRouteNotFound
	}
	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrRouteNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(row rowScanner) (*domain.Route, error) {
	var route domain.Route
	var src, dst domain.Station

	err := row.Scan(
		&route.ID, &route.SourceID, &route.DestinationID, &route.Distance,
		&route.SourceDatetime, &route.DestinationDatetime,
		&src.ID, &src.Name, &src.Latitude, &src.Longitude,
		&dst.ID, &dst.Name, &dst.Latitude, &dst.Longitude,
	)
	if err != nil {
		return nil, err
	}

	route.Source = &src
	route.Destination = &dst
	return &route, nil
}
