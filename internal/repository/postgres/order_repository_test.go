package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/repository/postgres/testhelpers"
)

// OrderRepositoryTestSuite tests the booking transaction end to end against
// a real database.
type OrderRepositoryTestSuite struct {
	suite.Suite
	testDB      *testhelpers.TestDB
	orderRepo   repository.OrderRepository
	ticketRepo  repository.TicketRepository
	journeyRepo repository.JourneyRepository
	ctx         context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *OrderRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (skip if tables already exist)
	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	err := s.testDB.Cleanup(context.Background())
	s.NoError(err, "Failed to cleanup test database")

	s.orderRepo = testhelpers.NewOrderRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.ticketRepo = testhelpers.NewTicketRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.journeyRepo = testhelpers.NewJourneyRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *OrderRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *OrderRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *OrderRepositoryTestSuite) availability(journeyID int64) int {
	journey, err := s.journeyRepo.GetByID(s.ctx, journeyID)
	s.Require().NoError(err)
	s.Require().NotNil(journey.TicketsAvailable)
	return *journey.TicketsAvailable
}

func (s *OrderRepositoryTestSuite) TestCreateWithTickets_Success() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	s.Equal(8, s.availability(journeyID))

	// Tickets arrive unsorted; reads return them ordered by seat key.
	order := &domain.Order{
		UserID: userID,
		Tickets: []domain.Ticket{
			{Carriage: 2, Seat: 1, JourneyID: journeyID},
			{Carriage: 1, Seat: 3, JourneyID: journeyID},
		},
	}

	err = s.orderRepo.CreateWithTickets(s.ctx, order)
	s.NoError(err)
	s.NotZero(order.ID)
	s.False(order.CreatedAt.IsZero())
	s.Equal(2, order.TotalTickets)

	s.Equal(1, order.Tickets[0].Carriage)
	s.Equal(3, order.Tickets[0].Seat)
	s.Equal(2, order.Tickets[1].Carriage)
	s.Equal(1, order.Tickets[1].Seat)
	for _, ticket := range order.Tickets {
		s.NotZero(ticket.ID)
		s.Equal(order.ID, ticket.OrderID)
	}

	// Availability drops by exactly the committed ticket count.
	s.Equal(6, s.availability(journeyID))
}

func (s *OrderRepositoryTestSuite) TestCreateWithTickets_DuplicateSeatRollsBack() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	first := &domain.Order{
		UserID:  userID,
		Tickets: []domain.Ticket{{Carriage: 1, Seat: 1, JourneyID: journeyID}},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, first))

	// One valid ticket plus one collision: the whole order must vanish.
	second := &domain.Order{
		UserID: userID,
		Tickets: []domain.Ticket{
			{Carriage: 1, Seat: 2, JourneyID: journeyID},
			{Carriage: 1, Seat: 1, JourneyID: journeyID},
		},
	}

	err = s.orderRepo.CreateWithTickets(s.ctx, second)
	s.Error(err)

	appErr, ok := err.(*errors.AppError)
	s.True(ok)
	s.Equal(errors.CodeConflict, appErr.Code)
	s.Contains(appErr.Details, "seat")

	orders, total, err := s.orderRepo.ListByUser(s.ctx, userID, domain.Page{Number: 1, Size: 10})
	s.NoError(err)
	s.Equal(1, total)
	s.Len(orders, 1)
	s.Equal(7, s.availability(journeyID))
}

func (s *OrderRepositoryTestSuite) TestCreateWithTickets_ConcurrentSameSeat() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	results := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			order := &domain.Order{
				UserID:  userID,
				Tickets: []domain.Ticket{{Carriage: 1, Seat: 1, JourneyID: journeyID}},
			}
			results[i] = s.orderRepo.CreateWithTickets(context.Background(), order)
		}(i)
	}
	wg.Wait()

	// Exactly one booking wins, the loser gets a seat conflict.
	var successes, conflicts int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		appErr, ok := err.(*errors.AppError)
		s.True(ok)
		s.Equal(errors.CodeConflict, appErr.Code)
		conflicts++
	}

	s.Equal(1, successes)
	s.Equal(1, conflicts)
	s.Equal(7, s.availability(journeyID))
}

func (s *OrderRepositoryTestSuite) TestReplaceTickets_Reconciles() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	order := &domain.Order{
		UserID: userID,
		Tickets: []domain.Ticket{
			{Carriage: 1, Seat: 1, JourneyID: journeyID},
			{Carriage: 1, Seat: 2, JourneyID: journeyID},
		},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, order))
	keptID := order.Tickets[0].ID

	// Keep and amend (1,1)->(2,2), drop (1,2), add (1,4).
	updated, err := s.orderRepo.ReplaceTickets(s.ctx, order.ID, userID, []domain.Ticket{
		{ID: keptID, Carriage: 2, Seat: 2, JourneyID: journeyID},
		{Carriage: 1, Seat: 4, JourneyID: journeyID},
	})

	s.NoError(err)
	s.Equal(2, updated.TotalTickets)
	s.Equal(1, updated.Tickets[0].Carriage)
	s.Equal(4, updated.Tickets[0].Seat)
	s.Equal(2, updated.Tickets[1].Carriage)
	s.Equal(2, updated.Tickets[1].Seat)
	s.Equal(keptID, updated.Tickets[1].ID)

	s.Equal(6, s.availability(journeyID))
}

func (s *OrderRepositoryTestSuite) TestReplaceTickets_IntraOrderReshuffle() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	order := &domain.Order{
		UserID: userID,
		Tickets: []domain.Ticket{
			{Carriage: 1, Seat: 1, JourneyID: journeyID},
		},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, order))

	// Drop the old ticket and rebook its exact seat in the same call.
	updated, err := s.orderRepo.ReplaceTickets(s.ctx, order.ID, userID, []domain.Ticket{
		{Carriage: 1, Seat: 1, JourneyID: journeyID},
	})

	s.NoError(err)
	s.Equal(1, updated.TotalTickets)
	s.NotEqual(order.Tickets[0].ID, updated.Tickets[0].ID)
}

func (s *OrderRepositoryTestSuite) TestReplaceTickets_UnknownTicketID() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	order := &domain.Order{
		UserID:  userID,
		Tickets: []domain.Ticket{{Carriage: 1, Seat: 1, JourneyID: journeyID}},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, order))

	updated, err := s.orderRepo.ReplaceTickets(s.ctx, order.ID, userID, []domain.Ticket{
		{ID: order.Tickets[0].ID + 1000, Carriage: 1, Seat: 2, JourneyID: journeyID},
	})

	s.Nil(updated)
	s.Equal(errors.ErrTicketNotFound, err)

	// The failed update must not have touched the stored set.
	reread, err := s.orderRepo.GetByID(s.ctx, order.ID, userID)
	s.NoError(err)
	s.Equal(1, reread.TotalTickets)
	s.Equal(1, reread.Tickets[0].Seat)
}

func (s *OrderRepositoryTestSuite) TestOrders_OwnerScoped() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	otherID, err := testhelpers.SeedUser(s.testDB.DB, "other@test.local")
	s.Require().NoError(err)

	order := &domain.Order{
		UserID:  userID,
		Tickets: []domain.Ticket{{Carriage: 1, Seat: 1, JourneyID: journeyID}},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, order))

	_, err = s.orderRepo.GetByID(s.ctx, order.ID, otherID)
	s.Equal(errors.ErrOrderNotFound, err)

	_, err = s.orderRepo.ReplaceTickets(s.ctx, order.ID, otherID, nil)
	s.Equal(errors.ErrOrderNotFound, err)

	_, total, err := s.orderRepo.ListByUser(s.ctx, otherID, domain.Page{Number: 1, Size: 10})
	s.NoError(err)
	s.Zero(total)

	_, err = s.ticketRepo.GetByID(s.ctx, order.Tickets[0].ID, otherID)
	s.Equal(errors.ErrTicketNotFound, err)
}

func (s *OrderRepositoryTestSuite) TestListByUser_NewestFirst() {
	userID, journeyID, _, err := testhelpers.SeedBookingFixture(s.testDB.DB, 2, 4)
	s.Require().NoError(err)

	first := &domain.Order{
		UserID:  userID,
		Tickets: []domain.Ticket{{Carriage: 1, Seat: 1, JourneyID: journeyID}},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, first))

	second := &domain.Order{
		UserID:  userID,
		Tickets: []domain.Ticket{{Carriage: 1, Seat: 2, JourneyID: journeyID}},
	}
	s.Require().NoError(s.orderRepo.CreateWithTickets(s.ctx, second))

	orders, total, err := s.orderRepo.ListByUser(s.ctx, userID, domain.Page{Number: 1, Size: 10})
	s.NoError(err)
	s.Equal(2, total)
	s.Require().Len(orders, 2)
	s.Equal(second.ID, orders[0].ID)
	s.Equal(first.ID, orders[1].ID)
	s.Equal(1, orders[0].TotalTickets)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
