package repository

import (
	"context"

	"github.com/station-booking/internal/domain"
)

// JourneyRepository persists journeys. Reads embed route, train and crew and
// compute tickets_available from train capacity and the committed ticket
// count at query time; the value is never stored.
type JourneyRepository interface {
	Create(ctx context.Context, journey *domain.Journey) error
	GetByID(ctx context.Context, id int64) (*domain.Journey, error)
	List(ctx context.Context, filter domain.JourneyFilter, page domain.Page) ([]*domain.Journey, int, error)
	Update(ctx context.Context, journey *domain.Journey) error
	Delete(ctx context.Context, id int64) error
}
