package repository

import (
	"context"

	"github.com/station-booking/internal/domain"
)

// RouteRepository persists routes. Reads embed the source and destination
// stations.
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Route, int, error)
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id int64) error
}
