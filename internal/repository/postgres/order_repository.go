package postgres

import (
	"context"
	"database/sql"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
)

type orderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// CreateWithTickets runs the whole booking as one transaction. Tickets are
// inserted in the order supplied by the caller; the first failure rolls the
// entire order back. A seat-key collision is detected by the unique
// constraint at insert time and surfaced as a conflict, never retried.
func (r *orderRepository) CreateWithTickets(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin booking transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`,
		order.UserID,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create order", zap.Error(err))
		return errors.ErrDatabaseError
	}

	for i := range order.Tickets {
		ticket := &order.Tickets[i]
		ticket.OrderID = order.ID

		if err := insertTicket(ctx, tx, ticket); err != nil {
			if appErr, ok := err.(*errors.AppError); ok {
				return appErr
			}
			r.logger.Error("Failed to insert ticket",
				zap.Int64("journey", ticket.JourneyID),
				zap.Int("carriage", ticket.Carriage),
				zap.Int("seat", ticket.Seat),
				zap.Error(err),
			)
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err, "tickets_seat_key") {
			return seatTakenError()
		}
		r.logger.Error("Failed to commit booking", zap.Error(err))
		return errors.ErrDatabaseError
	}

	sortTickets(order.Tickets)
	order.TotalTickets = len(order.Tickets)
	return nil
}

// ReplaceTickets reconciles the stored ticket set with the incoming one in a
// single transaction: tickets whose IDs appear in the incoming list are
// amended in place, stored tickets absent from it are deleted, and specs
// without an ID are inserted. Deletions run first so a reshuffle within the
// same order does not collide with itself.
func (r *orderRepository) ReplaceTickets(
	ctx context.Context,
	orderID, userID int64,
	tickets []domain.Ticket,
) (*domain.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var order domain.Order
	err = tx.QueryRowContext(ctx,
		`SELECT id, user_id, created_at FROM orders WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		orderID, userID,
	).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.ErrOrderNotFound
	}
	if err != nil {
		r.logger.Error("Failed to load order", zap.Int64("id", orderID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	existing := make(map[int64]struct{})
	rows, err := tx.QueryContext(ctx, `SELECT id FROM tickets WHERE order_id = $1`, orderID)
	if err != nil {
		r.logger.Error("Failed to load order tickets", zap.Int64("id", orderID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, errors.ErrDatabaseError
		}
		existing[id] = struct{}{}
	}
	rows.Close()

	incoming := make(map[int64]struct{})
	for i := range tickets {
		if tickets[i].ID != 0 {
			incoming[tickets[i].ID] = struct{}{}
		}
	}

	for id := range existing {
		if _, keep := incoming[id]; keep {
			continue
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1 AND order_id = $2`, id, orderID); err != nil {
			r.logger.Error("Failed to delete ticket", zap.Int64("id", id), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
	}

	for i := range tickets {
		ticket := &tickets[i]
		ticket.OrderID = orderID

		if ticket.ID != 0 {
			if _, exists := existing[ticket.ID]; !exists {
				return nil, errors.ErrTicketNotFound
			}
			_, err := tx.ExecContext(ctx,
				`UPDATE tickets SET carriage = $1, seat = $2, journey_id = $3 WHERE id = $4 AND order_id = $5`,
				ticket.Carriage, ticket.Seat, ticket.JourneyID, ticket.ID, orderID)
			if err != nil {
				if isUniqueViolation(err, "tickets_seat_key") {
					return nil, seatTakenError()
				}
				r.logger.Error("Failed to amend ticket", zap.Int64("id", ticket.ID), zap.Error(err))
				return nil, errors.ErrDatabaseError
			}
			continue
		}

		if err := insertTicket(ctx, tx, ticket); err != nil {
			if appErr, ok := err.(*errors.AppError); ok {
				return nil, appErr
			}
			r.logger.Error("Failed to insert ticket", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err, "tickets_seat_key") {
			return nil, seatTakenError()
		}
		r.logger.Error("Failed to commit order update", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, orderID, userID)
}

func (r *orderRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order,
		`SELECT id, user_id, created_at FROM orders WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrOrderNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get order by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	order.Tickets = make([]domain.Ticket, 0)
	err = r.db.SelectContext(ctx, &order.Tickets,
		`SELECT id, carriage, seat, order_id, journey_id
		 FROM tickets WHERE order_id = $1
		 ORDER BY carriage, seat`,
		id)
	if err != nil {
		r.logger.Error("Failed to load order tickets", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	order.TotalTickets = len(order.Tickets)
	return &order, nil
}

func (r *orderRepository) ListByUser(
	ctx context.Context,
	userID int64,
	page domain.Page,
) ([]*domain.Order, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error("Failed to count orders", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	orders := make([]*domain.Order, 0)
	err = r.db.SelectContext(ctx, &orders,
		`SELECT id, user_id, created_at
		 FROM orders WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, page.Limit(), page.Offset())
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	if len(orders) == 0 {
		return orders, total, nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
		o.Tickets = make([]domain.Ticket, 0)
	}

	query, args, err := sqlx.In(`
		SELECT id, carriage, seat, order_id, journey_id
		FROM tickets WHERE order_id IN (?)
		ORDER BY carriage, seat
	`, ids)
	if err != nil {
		r.logger.Error("Failed to build tickets query", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	var tickets []domain.Ticket
	if err := r.db.SelectContext(ctx, &tickets, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to load tickets", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	for _, t := range tickets {
		if o, ok := byID[t.OrderID]; ok {
			o.Tickets = append(o.Tickets, t)
		}
	}
	for _, o := range orders {
		o.TotalTickets = len(o.Tickets)
	}

	return orders, total, nil
}

func insertTicket(ctx context.Context, tx *sqlx.Tx, ticket *domain.Ticket) error {
	err := tx.QueryRowContext(ctx,
		`INSERT INTO tickets (carriage, seat, order_id, journey_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		ticket.Carriage, ticket.Seat, ticket.OrderID, ticket.JourneyID,
	).Scan(&ticket.ID)
	if err != nil && isUniqueViolation(err, "tickets_seat_key") {
		return seatTakenError()
	}
	return err
}

func seatTakenError() *errors.AppError {
	return errors.NewConflict("seat", "this seat is already taken for the journey")
}

func sortTickets(tickets []domain.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].Carriage != tickets[j].Carriage {
			return tickets[i].Carriage < tickets[j].Carriage
		}
		return tickets[i].Seat < tickets[j].Seat
	})
}
