package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/usecase/dto"
)

type RouteUseCase struct {
	routeRepo   repository.RouteRepository
	stationRepo repository.StationRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:   routeRepo,
		stationRepo: stationRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *RouteUseCase) Create(ctx context.Context, req dto.RouteRequest) (*domain.Route, error) {
	route, err := uc.buildRoute(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}
	return uc.routeRepo.GetByID(ctx, route.ID)
}

func (uc *RouteUseCase) Get(ctx context.Context, id int64) (*domain.Route, error) {
	return uc.routeRepo.GetByID(ctx, id)
}

func (uc *RouteUseCase) List(ctx context.Context, page domain.Page) ([]*domain.Route, int, error) {
	return uc.routeRepo.List(ctx, page)
}

func (uc *RouteUseCase) Update(ctx context.Context, id int64, req dto.RouteRequest) (*domain.Route, error) {
	route, err := uc.buildRoute(ctx, req)
	if err != nil {
		return nil, err
	}
	route.ID = id

	if err := uc.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}
	return uc.routeRepo.GetByID(ctx, id)
}

func (uc *RouteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.routeRepo.Delete(ctx, id)
}

// buildRoute applies schedule defaults, runs the domain validator and checks
// both endpoints exist. All validation happens before any write.
func (uc *RouteUseCase) buildRoute(ctx context.Context, req dto.RouteRequest) (*domain.Route, error) {
	sourceDatetime := uc.now()
	if req.SourceDatetime != nil {
		sourceDatetime = *req.SourceDatetime
	}
	destinationDatetime := sourceDatetime.Add(24 * time.Hour)
	if req.DestinationDatetime != nil {
		destinationDatetime = *req.DestinationDatetime
	}

	if err := domain.ValidateRoute(req.Source, req.Destination, sourceDatetime, destinationDatetime); err != nil {
		return nil, err
	}

	if _, err := uc.stationRepo.GetByID(ctx, req.Source); err != nil {
		return nil, err
	}
	if _, err := uc.stationRepo.GetByID(ctx, req.Destination); err != nil {
		return nil, err
	}

	return &domain.Route{
		SourceID:            req.Source,
		DestinationID:       req.Destination,
		Distance:            req.Distance,
		SourceDatetime:      sourceDatetime,
		DestinationDatetime: destinationDatetime,
	}, nil
}
