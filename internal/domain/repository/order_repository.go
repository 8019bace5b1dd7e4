package repository

import (
	"context"

	"github.com/station-booking/internal/domain"
)

// OrderRepository persists orders together with their tickets. Both write
// operations run inside a single database transaction: either the whole
// order lands or nothing does. A seat-key collision surfaces as a conflict
// error from the unique constraint, never as a partial write.
type OrderRepository interface {
	// CreateWithTickets inserts the order and its tickets in the supplied
	// order, atomically. On success order.ID, ticket IDs and CreatedAt are
	// populated.
	CreateWithTickets(ctx context.Context, order *domain.Order) error

	// ReplaceTickets reconciles the stored ticket set with the incoming one
	// in one transaction: kept tickets stay, absent ones are deleted, new
	// ones are inserted.
	ReplaceTickets(ctx context.Context, orderID, userID int64, tickets []domain.Ticket) (*domain.Order, error)

	GetByID(ctx context.Context, id, userID int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, page domain.Page) ([]*domain.Order, int, error)
}

// TicketRepository gives owner-scoped access to individual tickets.
type TicketRepository interface {
	GetByID(ctx context.Context, id, userID int64) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID int64, page domain.Page) ([]*domain.Ticket, int, error)
	Update(ctx context.Context, ticket *domain.Ticket, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}
