package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/usecase/dto"
)

type TrainUseCase struct {
	trainRepo     repository.TrainRepository
	trainTypeRepo repository.TrainTypeRepository
	logger        *zap.Logger
}

func NewTrainUseCase(
	trainRepo repository.TrainRepository,
	trainTypeRepo repository.TrainTypeRepository,
	logger *zap.Logger,
) *TrainUseCase {
	return &TrainUseCase{
		trainRepo:     trainRepo,
		trainTypeRepo: trainTypeRepo,
		logger:        logger,
	}
}

func (uc *TrainUseCase) Create(ctx context.Context, req dto.TrainRequest) (*domain.Train, error) {
	if _, err := uc.trainTypeRepo.GetByID(ctx, req.TrainType); err != nil {
		return nil, err
	}

	train := &domain.Train{
		Name:             req.Name,
		CarriageCount:    req.CarriageCount,
		SeatsPerCarriage: req.SeatsPerCarriage,
		TrainTypeID:      req.TrainType,
	}

	if err := uc.trainRepo.Create(ctx, train); err != nil {
		return nil, err
	}
	return uc.trainRepo.GetByID(ctx, train.ID)
}

func (uc *TrainUseCase) Get(ctx context.Context, id int64) (*domain.Train, error) {
	return uc.trainRepo.GetByID(ctx, id)
}

func (uc *TrainUseCase) List(ctx context.Context, page domain.Page) ([]*domain.Train, int, error) {
	return uc.trainRepo.List(ctx, page)
}

func (uc *TrainUseCase) Update(ctx context.Context, id int64, req dto.TrainRequest) (*domain.Train, error) {
	if _, err := uc.trainTypeRepo.GetByID(ctx, req.TrainType); err != nil {
		return nil, err
	}

	train := &domain.Train{
		ID:               id,
		Name:             req.Name,
		CarriageCount:    req.CarriageCount,
		SeatsPerCarriage: req.SeatsPerCarriage,
		TrainTypeID:      req.TrainType,
	}

	if err := uc.trainRepo.Update(ctx, train); err != nil {
		return nil, err
	}
	return uc.trainRepo.GetByID(ctx, id)
}

func (uc *TrainUseCase) Delete(ctx context.Context, id int64) error {
	return uc.trainRepo.Delete(ctx, id)
}

func (uc *TrainUseCase) CreateType(ctx context.Context, req dto.TrainTypeRequest) (*domain.TrainType, error) {
	trainType := &domain.TrainType{Name: req.Name}
	if err := uc.trainTypeRepo.Create(ctx, trainType); err != nil {
		return nil, err
	}
	return trainType, nil
}

func (uc *TrainUseCase) GetType(ctx context.Context, id int64) (*domain.TrainType, error) {
	return uc.trainTypeRepo.GetByID(ctx, id)
}

func (uc *TrainUseCase) ListTypes(ctx context.Context, page domain.Page) ([]*domain.TrainType, int, error) {
	return uc.trainTypeRepo.List(ctx, page)
}

func (uc *TrainUseCase) UpdateType(ctx context.Context, id int64, req dto.TrainTypeRequest) (*domain.TrainType, error) {
	trainType := &domain.TrainType{ID: id, Name: req.Name}
	if err := uc.trainTypeRepo.Update(ctx, trainType); err != nil {
		return nil, err
	}
	return trainType, nil
}

func (uc *TrainUseCase) DeleteType(ctx context.Context, id int64) error {
	return uc.trainTypeRepo.Delete(ctx, id)
}
