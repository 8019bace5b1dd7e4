package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
)

// All queries join through orders so a caller only ever sees tickets of
// orders they own.
type ticketRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTicketRepository(db *DB) repository.TicketRepository {
	return &ticketRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *ticketRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := r.db.GetContext(ctx, &ticket, `
		SELECT t.id, t.carriage, t.seat, t.order_id, t.journey_id
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE t.id = $1 AND o.user_id = $2
	`, id, userID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTicketNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get ticket by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &ticket, nil
}

func (r *ticketRepository) ListByUser(
	ctx context.Context,
	userID int64,
	page domain.Page,
) ([]*domain.Ticket, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*)
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE o.user_id = $1
	`, userID)
	if err != nil {
		r.logger.Error("Failed to count tickets", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	tickets := make([]*domain.Ticket, 0)
	err = r.db.SelectContext(ctx, &tickets, `
		SELECT t.id, t.carriage, t.seat, t.order_id, t.journey_id
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE o.user_id = $1
		ORDER BY t.carriage, t.seat
		LIMIT $2 OFFSET $3
	`, userID, page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list tickets", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return tickets, total, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket, userID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tickets t
		SET carriage = $1, seat = $2, journey_id = $3
		FROM orders o
		WHERE t.id = $4 AND o.id = t.order_id AND o.user_id = $5
	`, ticket.Carriage, ticket.Seat, ticket.JourneyID, ticket.ID, userID)
	if err != nil {
		if isUniqueViolation(err, "tickets_seat_key") {
			return seatTakenError()
		}
		r.logger.Error("Failed to update ticket", zap.Int64("id", ticket.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM tickets t
		USING orders o
		WHERE t.id = $1 AND o.id = t.order_id AND o.user_id = $2
	`, id, userID)
	if err != nil {
		r.logger.Error("Failed to delete ticket", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTicketNotFound
	}
	return nil
}
