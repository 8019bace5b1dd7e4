package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/usecase/dto"
)

type JourneyUseCase struct {
	journeyRepo repository.JourneyRepository
	routeRepo   repository.RouteRepository
	trainRepo   repository.TrainRepository
	crewRepo    repository.CrewRepository
	logger      *zap.Logger

	// Injected for the "no past departures" check.
	now func() time.Time
}

func NewJourneyUseCase(
	journeyRepo repository.JourneyRepository,
	routeRepo repository.RouteRepository,
	trainRepo repository.TrainRepository,
	crewRepo repository.CrewRepository,
	logger *zap.Logger,
) *JourneyUseCase {
	return &JourneyUseCase{
		journeyRepo: journeyRepo,
		routeRepo:   routeRepo,
		trainRepo:   trainRepo,
		crewRepo:    crewRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock overrides the wall clock; used by tests.
func (uc *JourneyUseCase) WithClock(now func() time.Time) *JourneyUseCase {
	uc.now = now
	return uc
}

func (uc *JourneyUseCase) Create(ctx context.Context, req dto.JourneyRequest) (*domain.Journey, error) {
	if err := uc.validate(ctx, req); err != nil {
		return nil, err
	}

	journey := &domain.Journey{
		RouteID:       req.Route,
		TrainID:       req.Train,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.Crew,
	}

	if err := uc.journeyRepo.Create(ctx, journey); err != nil {
		return nil, err
	}
	return uc.journeyRepo.GetByID(ctx, journey.ID)
}

func (uc *JourneyUseCase) Get(ctx context.Context, id int64) (*domain.Journey, error) {
	return uc.journeyRepo.GetByID(ctx, id)
}

func (uc *JourneyUseCase) List(
	ctx context.Context,
	req dto.JourneyListRequest,
	page domain.Page,
) ([]*domain.Journey, int, error) {
	filter := domain.JourneyFilter{
		Source:      req.Source,
		Destination: req.Destination,
	}

	if req.DepartureDate != "" {
		date, err := time.Parse("2006-01-02", req.DepartureDate)
		if err != nil {
			return nil, 0, errors.NewValidation(
				"departure-date",
				"must be a date in YYYY-MM-DD format",
			)
		}
		filter.DepartureDate = &date
	}

	return uc.journeyRepo.List(ctx, filter, page)
}

func (uc *JourneyUseCase) Update(ctx context.Context, id int64, req dto.JourneyRequest) (*domain.Journey, error) {
	if err := uc.validate(ctx, req); err != nil {
		return nil, err
	}

	journey := &domain.Journey{
		ID:            id,
		RouteID:       req.Route,
		TrainID:       req.Train,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.Crew,
	}

	if err := uc.journeyRepo.Update(ctx, journey); err != nil {
		return nil, err
	}
	return uc.journeyRepo.GetByID(ctx, id)
}

func (uc *JourneyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.journeyRepo.Delete(ctx, id)
}

func (uc *JourneyUseCase) validate(ctx context.Context, req dto.JourneyRequest) error {
	if err := domain.ValidateJourneyTimes(req.DepartureTime, req.ArrivalTime, uc.now()); err != nil {
		return err
	}

	if _, err := uc.routeRepo.GetByID(ctx, req.Route); err != nil {
		return err
	}
	if _, err := uc.trainRepo.GetByID(ctx, req.Train); err != nil {
		return err
	}
	for _, crewID := range req.Crew {
		if _, err := uc.crewRepo.GetByID(ctx, crewID); err != nil {
			return err
		}
	}
	return nil
}
