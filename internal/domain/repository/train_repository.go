package repository

import (
	"context"

	"github.com/station-booking/internal/domain"
)

type TrainRepository interface {
	Create(ctx context.Context, train *domain.Train) error
	GetByID(ctx context.Context, id int64) (*domain.Train, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Train, int, error)
	Update(ctx context.Context, train *domain.Train) error
	Delete(ctx context.Context, id int64) error
}

// TrainTypeRepository persists train types. Names are unique.
type TrainTypeRepository interface {
	Create(ctx context.Context, trainType *domain.TrainType) error
	GetByID(ctx context.Context, id int64) (*domain.TrainType, error)
	List(ctx context.Context, page domain.Page) ([]*domain.TrainType, int, error)
	Update(ctx context.Context, trainType *domain.TrainType) error
	Delete(ctx context.Context, id int64) error
}
