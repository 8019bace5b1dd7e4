package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/usecase/dto"
)

type StationUseCase struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

func NewStationUseCase(stationRepo repository.StationRepository, logger *zap.Logger) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

func (uc *StationUseCase) Create(ctx context.Context, req dto.StationRequest) (*domain.Station, error) {
	station := &domain.Station{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := uc.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (uc *StationUseCase) Get(ctx context.Context, id int64) (*domain.Station, error) {
	return uc.stationRepo.GetByID(ctx, id)
}

func (uc *StationUseCase) List(ctx context.Context, page domain.Page) ([]*domain.Station, int, error) {
	return uc.stationRepo.List(ctx, page)
}

func (uc *StationUseCase) Update(ctx context.Context, id int64, req dto.StationRequest) (*domain.Station, error) {
	station := &domain.Station{
		ID:        id,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := uc.stationRepo.Update(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (uc *StationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.stationRepo.Delete(ctx, id)
}
