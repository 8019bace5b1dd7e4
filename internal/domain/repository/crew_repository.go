package repository

import (
	"context"

	"github.com/station-booking/internal/domain"
)

type CrewRepository interface {
	Create(ctx context.Context, crew *domain.Crew) error
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Crew, int, error)
	Update(ctx context.Context, crew *domain.Crew) error
	Delete(ctx context.Context, id int64) error

	// SetImagePath records the stored image file for a crew member.
	SetImagePath(ctx context.Context, id int64, path string) error
}
