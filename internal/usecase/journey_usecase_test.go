package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

func newJourneyUseCase(
	journeyRepo *MockJourneyRepository,
	routeRepo *MockRouteRepository,
	trainRepo *MockTrainRepository,
	crewRepo *MockCrewRepository,
	now time.Time,
) *usecase.JourneyUseCase {
	return usecase.NewJourneyUseCase(journeyRepo, routeRepo, trainRepo, crewRepo, zap.NewNop()).
		WithClock(func() time.Time { return now })
}

func TestJourneyUseCase_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		journeyRepo := &MockJourneyRepository{}
		routeRepo := &MockRouteRepository{}
		trainRepo := &MockTrainRepository{}
		crewRepo := &MockCrewRepository{}
		uc := newJourneyUseCase(journeyRepo, routeRepo, trainRepo, crewRepo, now)

		routeRepo.On("GetByID", ctx, int64(1)).Return(&domain.Route{ID: 1}, nil)
		trainRepo.On("GetByID", ctx, int64(2)).Return(&domain.Train{ID: 2}, nil)
		crewRepo.On("GetByID", ctx, int64(3)).Return(&domain.Crew{ID: 3}, nil)

		journeyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Journey")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Journey).ID = 9
			}).
			Return(nil)
		journeyRepo.On("GetByID", ctx, int64(9)).
			Return(&domain.Journey{ID: 9, RouteID: 1, TrainID: 2}, nil)

		journey, err := uc.Create(ctx, dto.JourneyRequest{
			Route:         1,
			Train:         2,
			Crew:          []int64{3},
			DepartureTime: now.Add(time.Hour),
			ArrivalTime:   now.Add(7 * time.Hour),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(9), journey.ID)
		journeyRepo.AssertExpectations(t)
	})

	t.Run("past departure rejected against injected clock", func(t *testing.T) {
		journeyRepo := &MockJourneyRepository{}
		uc := newJourneyUseCase(journeyRepo, &MockRouteRepository{}, &MockTrainRepository{}, &MockCrewRepository{}, now)

		journey, err := uc.Create(ctx, dto.JourneyRequest{
			Route:         1,
			Train:         2,
			DepartureTime: now.Add(-time.Minute),
			ArrivalTime:   now.Add(time.Hour),
		})

		assert.Nil(t, journey)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.CodeValidationError, appErr.Code)
		assert.Contains(t, appErr.Details, "departure_time")
		journeyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown crew member rejected", func(t *testing.T) {
		journeyRepo := &MockJourneyRepository{}
		routeRepo := &MockRouteRepository{}
		trainRepo := &MockTrainRepository{}
		crewRepo := &MockCrewRepository{}
		uc := newJourneyUseCase(journeyRepo, routeRepo, trainRepo, crewRepo, now)

		routeRepo.On("GetByID", ctx, int64(1)).Return(&domain.Route{ID: 1}, nil)
		trainRepo.On("GetByID", ctx, int64(2)).Return(&domain.Train{ID: 2}, nil)
		crewRepo.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrCrewNotFound)

		journey, err := uc.Create(ctx, dto.JourneyRequest{
			Route:         1,
			Train:         2,
			Crew:          []int64{99},
			DepartureTime: now.Add(time.Hour),
			ArrivalTime:   now.Add(2 * time.Hour),
		})

		assert.Nil(t, journey)
		assert.Equal(t, errors.ErrCrewNotFound, err)
	})
}

func TestJourneyUseCase_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	page := domain.Page{Number: 1, Size: 10}

	t.Run("filters forwarded", func(t *testing.T) {
		journeyRepo := &MockJourneyRepository{}
		uc := newJourneyUseCase(journeyRepo, &MockRouteRepository{}, &MockTrainRepository{}, &MockCrewRepository{}, now)

		date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		journeyRepo.On("List", ctx,
			domain.JourneyFilter{Source: "Madrid", Destination: "Sevilla", DepartureDate: &date},
			page,
		).Return([]*domain.Journey{{ID: 1}}, 1, nil)

		journeys, total, err := uc.List(ctx, dto.JourneyListRequest{
			Source:        "Madrid",
			Destination:   "Sevilla",
			DepartureDate: "2026-04-01",
		}, page)

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, journeys, 1)
		journeyRepo.AssertExpectations(t)
	})

	t.Run("malformed departure date", func(t *testing.T) {
		journeyRepo := &MockJourneyRepository{}
		uc := newJourneyUseCase(journeyRepo, &MockRouteRepository{}, &MockTrainRepository{}, &MockCrewRepository{}, now)

		journeys, total, err := uc.List(ctx, dto.JourneyListRequest{DepartureDate: "01-04-2026"}, page)

		assert.Nil(t, journeys)
		assert.Zero(t, total)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.CodeValidationError, appErr.Code)
		assert.Contains(t, appErr.Details, "departure-date")
		journeyRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty filter lists everything", func(t *testing.T) {
		journeyRepo := &MockJourneyRepository{}
		uc := newJourneyUseCase(journeyRepo, &MockRouteRepository{}, &MockTrainRepository{}, &MockCrewRepository{}, now)

		journeyRepo.On("List", ctx, domain.JourneyFilter{}, page).
			Return([]*domain.Journey{}, 0, nil)

		_, total, err := uc.List(ctx, dto.JourneyListRequest{}, page)

		assert.NoError(t, err)
		assert.Zero(t, total)
	})
}
