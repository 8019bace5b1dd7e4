package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SeedUser inserts a user and returns its ID
func SeedUser(db *sqlx.DB, email string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id`,
		email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed user %s: %w", email, err)
	}
	return id, nil
}

// SeedStation inserts a station and returns its ID
func SeedStation(db *sqlx.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO stations (name, latitude, longitude) VALUES ($1, 0, 0) RETURNING id`,
		name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed station %s: %w", name, err)
	}
	return id, nil
}

// SeedRoute inserts a route between two stations and returns its ID
func SeedRoute(db *sqlx.DB, sourceID, destinationID int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, 100) RETURNING id`,
		sourceID, destinationID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed route %d->%d: %w", sourceID, destinationID, err)
	}
	return id, nil
}

// SeedTrain inserts a train type and a train, returns the train ID
func SeedTrain(db *sqlx.DB, name string, carriageCount, seatsPerCarriage int) (int64, error) {
	var typeID int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO train_types (name) VALUES ($1 || '-type') RETURNING id`,
		name).Scan(&typeID)
	if err != nil {
		return 0, fmt.Errorf("seed train type for %s: %w", name, err)
	}

	var id int64
	err = db.QueryRowContext(context.Background(),
		`INSERT INTO trains (name, carriage_count, seats_per_carriage, train_type_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		name, carriageCount, seatsPerCarriage, typeID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed train %s: %w", name, err)
	}
	return id, nil
}

// SeedJourney inserts a journey departing in the future and returns its ID
func SeedJourney(db *sqlx.DB, routeID, trainID int64) (int64, error) {
	departure := time.Now().Add(24 * time.Hour)
	arrival := departure.Add(6 * time.Hour)

	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO journeys (route_id, train_id, departure_time, arrival_time)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		routeID, trainID, departure, arrival).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed journey on route %d: %w", routeID, err)
	}
	return id, nil
}

// SeedBookingFixture seeds a user, two stations, a route, a train and a
// journey on it. Returns the user, journey and train IDs.
func SeedBookingFixture(db *sqlx.DB, carriageCount, seatsPerCarriage int) (userID, journeyID, trainID int64, err error) {
	userID, err = SeedUser(db, fmt.Sprintf("user-%d@test.local", time.Now().UnixNano()))
	if err != nil {
		return 0, 0, 0, err
	}

	suffix := time.Now().UnixNano()
	sourceID, err := SeedStation(db, fmt.Sprintf("Source-%d", suffix))
	if err != nil {
		return 0, 0, 0, err
	}
	destinationID, err := SeedStation(db, fmt.Sprintf("Destination-%d", suffix))
	if err != nil {
		return 0, 0, 0, err
	}

	routeID, err := SeedRoute(db, sourceID, destinationID)
	if err != nil {
		return 0, 0, 0, err
	}

	trainID, err = SeedTrain(db, fmt.Sprintf("Train-%d", suffix), carriageCount, seatsPerCarriage)
	if err != nil {
		return 0, 0, 0, err
	}

	journeyID, err = SeedJourney(db, routeID, trainID)
	if err != nil {
		return 0, 0, 0, err
	}

	return userID, journeyID, trainID, nil
}
