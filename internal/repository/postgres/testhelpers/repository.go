package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewStationRepositoryForTest creates a station repository with test database and logger
func NewStationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StationRepository {
	return postgres.NewStationRepository(NewDBForTest(db, logger))
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(NewDBForTest(db, logger))
}

// NewTrainRepositoryForTest creates a train repository with test database and logger
func NewTrainRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TrainRepository {
	return postgres.NewTrainRepository(NewDBForTest(db, logger))
}

// NewJourneyRepositoryForTest creates a journey repository with test database and logger
func NewJourneyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.JourneyRepository {
	return postgres.NewJourneyRepository(NewDBForTest(db, logger))
}

// NewOrderRepositoryForTest creates an order repository with test database and logger
func NewOrderRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OrderRepository {
	return postgres.NewOrderRepository(NewDBForTest(db, logger))
}

// NewTicketRepositoryForTest creates a ticket repository with test database and logger
func NewTicketRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TicketRepository {
	return postgres.NewTicketRepository(NewDBForTest(db, logger))
}
