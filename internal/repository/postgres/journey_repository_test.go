package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/repository/postgres/testhelpers"
)

// JourneyRepositoryTestSuite tests journey reads, filters and the derived
// availability figure against a real database.
type JourneyRepositoryTestSuite struct {
	suite.Suite
	testDB    *testhelpers.TestDB
	repo      repository.JourneyRepository
	orderRepo repository.OrderRepository
	ctx       context.Context

	userID     int64
	trainID    int64
	routeID    int64
	journeyID  int64
	departure  time.Time
	sourceName string
}

// SetupSuite runs once before all tests in the suite
func (s *JourneyRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	err := s.testDB.Cleanup(context.Background())
	s.NoError(err, "Failed to cleanup test database")

	s.repo = testhelpers.NewJourneyRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.orderRepo = testhelpers.NewOrderRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	suffix := time.Now().UnixNano()
	s.sourceName = fmt.Sprintf("Barcelona Sants %d", suffix)

	s.userID, err = testhelpers.SeedUser(s.testDB.DB, fmt.Sprintf("journeys-%d@test.local", suffix))
	s.Require().NoError(err)

	sourceID, err := testhelpers.SeedStation(s.testDB.DB, s.sourceName)
	s.Require().NoError(err)
	destinationID, err := testhelpers.SeedStation(s.testDB.DB, fmt.Sprintf("Madrid Atocha %d", suffix))
	s.Require().NoError(err)

	s.routeID, err = testhelpers.SeedRoute(s.testDB.DB, sourceID, destinationID)
	s.Require().NoError(err)

	s.trainID, err = testhelpers.SeedTrain(s.testDB.DB, fmt.Sprintf("AVE-%d", suffix), 2, 10)
	s.Require().NoError(err)

	s.journeyID, err = testhelpers.SeedJourney(s.testDB.DB, s.routeID, s.trainID)
	s.Require().NoError(err)

	journey, err := s.repo.GetByID(context.Background(), s.journeyID)
	s.Require().NoError(err)
	s.departure = journey.DepartureTime
}

// TearDownSuite runs once after all tests in the suite
func (s *JourneyRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *JourneyRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *JourneyRepositoryTestSuite) TestGetByID_EmbedsDetails() {
	journey, err := s.repo.GetByID(s.ctx, s.journeyID)

	s.NoError(err)
	s.Require().NotNil(journey.Route)
	s.Equal(s.sourceName, journey.Route.Source.Name)
	s.Require().NotNil(journey.Train)
	s.Equal(2, journey.Train.CarriageCount)
	s.Require().NotNil(journey.Train.TrainType)
	s.NotNil(journey.Crew)
}

func (s *JourneyRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 999999999)
	s.Equal(errors.ErrJourneyNotFound, err)
}

func (s *JourneyRepositoryTestSuite) TestAvailability_DerivedPerRead() {
	journey, err := s.repo.GetByID(s.ctx, s.journeyID)
	s.Require().NoError(err)
	before := *journey.TicketsAvailable

	// Re-reading without bookings yields the identical figure.
	again, err := s.repo.GetByID(s.ctx, s.journeyID)
	s.Require().NoError(err)
	s.Equal(before, *again.TicketsAvailable)

	order := &domain.Order{
		UserID:  s.userID,
		Tickets: []domain.Ticket{{Carriage: 2, Seat: 10, JourneyID: s.journeyID}},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, order))

	after, err := s.repo.GetByID(s.ctx, s.journeyID)
	s.Require().NoError(err)
	s.Equal(before-1, *after.TicketsAvailable)
}

func (s *JourneyRepositoryTestSuite) TestList_SourceFilterIsCaseInsensitiveSubstring() {
	page := domain.Page{Number: 1, Size: 10}

	journeys, total, err := s.repo.List(s.ctx, domain.JourneyFilter{Source: "barcelona sants"}, page)
	s.NoError(err)
	s.GreaterOrEqual(total, 1)

	found := false
	for _, j := range journeys {
		if j.ID == s.journeyID {
			found = true
		}
		s.Contains(j.Route.Source.Name, "Barcelona Sants")
	}
	s.True(found)
}

func (s *JourneyRepositoryTestSuite) TestList_NoMatches() {
	journeys, total, err := s.repo.List(s.ctx,
		domain.JourneyFilter{Source: "Nowhere Terminal"},
		domain.Page{Number: 1, Size: 10},
	)

	s.NoError(err)
	s.Zero(total)
	s.Empty(journeys)
}

func (s *JourneyRepositoryTestSuite) TestList_DepartureDateFilter() {
	page := domain.Page{Number: 1, Size: 10}

	date := time.Date(
		s.departure.Year(), s.departure.Month(), s.departure.Day(),
		0, 0, 0, 0, s.departure.Location(),
	)
	journeys, total, err := s.repo.List(s.ctx, domain.JourneyFilter{DepartureDate: &date}, page)
	s.NoError(err)
	s.GreaterOrEqual(total, 1)
	s.NotEmpty(journeys)

	// A date with no departures matches nothing.
	off := date.AddDate(1, 0, 0)
	_, total, err = s.repo.List(s.ctx, domain.JourneyFilter{DepartureDate: &off}, page)
	s.NoError(err)
	s.Zero(total)
}

func TestJourneyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JourneyRepositoryTestSuite))
}
