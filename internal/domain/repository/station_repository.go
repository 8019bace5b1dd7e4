package repository

import (
	"context"

	"github.com/station-booking/internal/domain"
)

// StationRepository persists stations. Create and Update surface a duplicate
// name as a field-keyed conflict error.
type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Station, int, error)
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id int64) error
}
