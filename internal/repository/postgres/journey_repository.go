package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
)

type journeyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewJourneyRepository(db *DB) repository.JourneyRepository {
	return &journeyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// tickets_available is derived from train capacity and the committed ticket
// count at query time. It is never stored or cached, so every read reflects
// the latest committed bookings.
const journeySelect = `
	SELECT
		j.id, j.route_id, j.train_id, j.departure_time, j.arrival_time,
		t.carriage_count * t.seats_per_carriage - COUNT(tk.id) AS tickets_available,
		r.id, r.source_id, r.destination_id, r.distance, r.source_datetime, r.destination_datetime,
		s.id, s.name, s.latitude, s.longitude,
		d.id, d.name, d.latitude, d.longitude,
		t.id, t.name, t.carriage_count, t.seats_per_carriage, t.train_type_id,
		tt.id, tt.name
	FROM journeys j
	JOIN routes r ON r.id = j.route_id
	JOIN stations s ON s.id = r.source_id
	JOIN stations d ON d.id = r.destination_id
	JOIN trains t ON t.id = j.train_id
	JOIN train_types tt ON tt.id = t.train_type_id
	LEFT JOIN tickets tk ON tk.journey_id = j.id
`

const journeyGroupBy = ` GROUP BY j.id, r.id, s.id, d.id, t.id, tt.id`

func (r *journeyRepository) Create(ctx context.Context, journey *domain.Journey) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO journeys (route_id, train_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRowContext(
		ctx, query,
		journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime,
	).Scan(&journey.ID)
	if err != nil {
		r.logger.Error("Failed to create journey", zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := replaceJourneyCrew(ctx, tx, journey.ID, journey.CrewIDs); err != nil {
		r.logger.Error("Failed to link journey crew", zap.Int64("id", journey.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit journey", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *journeyRepository) GetByID(ctx context.Context, id int64) (*domain.Journey, error) {
	row := r.db.QueryRowContext(ctx, journeySelect+` WHERE j.id = $1`+journeyGroupBy, id)

	journey, err := scanJourney(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrJourneyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get journey by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.attachCrew(ctx, []*domain.Journey{journey}); err != nil {
		return nil, err
	}
	return journey, nil
}

func (r *journeyRepository) List(
	ctx context.Context,
	filter domain.JourneyFilter,
	page domain.Page,
) ([]*domain.Journey, int, error) {
	where := ""
	args := []interface{}{}

	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		clause := fmt.Sprintf(cond, len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	if filter.Source != "" {
		addCond("s.name ILIKE '%%' || $%d || '%%'", filter.Source)
	}
	if filter.Destination != "" {
		addCond("d.name ILIKE '%%' || $%d || '%%'", filter.Destination)
	}
	if filter.DepartureDate != nil {
		addCond("j.departure_time::date = $%d::date", *filter.DepartureDate)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM journeys j
		JOIN routes r ON r.id = j.route_id
		JOIN stations s ON s.id = r.source_id
		JOIN stations d ON d.id = r.destination_id
	` + where

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count journeys", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	args = append(args, page.Limit(), page.Offset())
	listQuery := journeySelect + where + journeyGroupBy +
		fmt.Sprintf(" ORDER BY j.departure_time, j.id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		r.logger.Error("Failed to list journeys", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	journeys := make([]*domain.Journey, 0)
	for rows.Next() {
		journey, err := scanJourney(rows)
		if err != nil {
			r.logger.Error("Failed to scan journey", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}
		journeys = append(journeys, journey)
	}

	if err := r.attachCrew(ctx, journeys); err != nil {
		return nil, 0, err
	}
	return journeys, total, nil
}

func (r *journeyRepository) Update(ctx context.Context, journey *domain.Journey) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		UPDATE journeys
		SET route_id = $1, train_id = $2, departure_time = $3, arrival_time = $4
		WHERE id = $5
	`

	res, err := tx.ExecContext(
		ctx, query,
		journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime, journey.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update journey", zap.Int64("id", journey.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrJourneyNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM journey_crew WHERE journey_id = $1`, journey.ID); err != nil {
		r.logger.Error("Failed to clear journey crew", zap.Int64("id", journey.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if err := replaceJourneyCrew(ctx, tx, journey.ID, journey.CrewIDs); err != nil {
		r.logger.Error("Failed to link journey crew", zap.Int64("id", journey.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit journey update", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *journeyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journeys WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete journey", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrJourneyNotFound
	}
	return nil
}

func replaceJourneyCrew(ctx context.Context, tx *sqlx.Tx, journeyID int64, crewIDs []int64) error {
	for _, crewID := range crewIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO journey_crew (journey_id, crew_id) VALUES ($1, $2)`,
			journeyID, crewID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *journeyRepository) attachCrew(ctx context.Context, journeys []*domain.Journey) error {
	if len(journeys) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(journeys))
	byID := make(map[int64]*domain.Journey, len(journeys))
	for _, j := range journeys {
		ids = append(ids, j.ID)
		byID[j.ID] = j
		j.Crew = make([]domain.Crew, 0)
	}

	query, args, err := sqlx.In(`
		SELECT jc.journey_id, c.id, c.first_name, c.last_name, c.hired_at, c.image_path
		FROM journey_crew jc
		JOIN crews c ON c.id = jc.crew_id
		WHERE jc.journey_id IN (?)
		ORDER BY c.id
	`, ids)
	if err != nil {
		r.logger.Error("Failed to build crew query", zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.logger.Error("Failed to load journey crew", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var journeyID int64
		var crew domain.Crew
		if err := rows.Scan(
			&journeyID, &crew.ID, &crew.FirstName, &crew.LastName, &crew.HiredAt, &crew.ImagePath,
		); err != nil {
			r.logger.Error("Failed to scan crew member", zap.Error(err))
			return errors.ErrDatabaseError
		}
		if j, ok := byID[journeyID]; ok {
			j.Crew = append(j.Crew, crew)
			j.CrewIDs = append(j.CrewIDs, crew.ID)
		}
	}

	return nil
}

func scanJourney(row rowScanner) (*domain.Journey, error) {
	var journey domain.Journey
	var available int
	var route domain.Route
	var src, dst domain.Station
	var train domain.Train
	var trainType domain.TrainType

	err := row.Scan(
		&journey.ID, &journey.RouteID, &journey.TrainID,
		&journey.DepartureTime, &journey.ArrivalTime,
		&available,
		&route.ID, &route.SourceID, &route.DestinationID, &route.Distance,
		&route.SourceDatetime, &route.DestinationDatetime,
		&src.ID, &src.Name, &src.Latitude, &src.Longitude,
		&dst.ID, &dst.Name, &dst.Latitude, &dst.Longitude,
		&train.ID, &train.Name, &train.CarriageCount, &train.SeatsPerCarriage, &train.TrainTypeID,
		&trainType.ID, &trainType.Name,
	)
	if err != nil {
		return nil, err
	}

	route.Source = &src
	route.Destination = &dst
	train.TrainType = &trainType
	journey.Route = &route
	journey.Train = &train
	journey.TicketsAvailable = &available
	return &journey, nil
}
