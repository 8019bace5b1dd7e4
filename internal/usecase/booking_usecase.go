package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/usecase/dto"
)

// BookingUseCase creates and modifies orders together with their tickets.
// Every ticket is validated against its journey's train before a single row
// is written; the repository then runs the whole order as one transaction,
// with the seat-key unique constraint as the only concurrency arbiter.
type BookingUseCase struct {
	orderRepo   repository.OrderRepository
	ticketRepo  repository.TicketRepository
	journeyRepo repository.JourneyRepository
	logger      *zap.Logger
}

func NewBookingUseCase(
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	journeyRepo repository.JourneyRepository,
	logger *zap.Logger,
) *BookingUseCase {
	return &BookingUseCase{
		orderRepo:   orderRepo,
		ticketRepo:  ticketRepo,
		journeyRepo: journeyRepo,
		logger:      logger,
	}
}

func (uc *BookingUseCase) CreateOrder(
	ctx context.Context,
	userID int64,
	req dto.OrderRequest,
) (*domain.Order, error) {
	tickets, err := uc.validateSpecs(ctx, req.Tickets)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:  userID,
		Tickets: tickets,
	}

	if err := uc.orderRepo.CreateWithTickets(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("tickets", order.TotalTickets),
	)
	return order, nil
}

func (uc *BookingUseCase) UpdateOrder(
	ctx context.Context,
	orderID, userID int64,
	req dto.OrderRequest,
) (*domain.Order, error) {
	tickets, err := uc.validateSpecs(ctx, req.Tickets)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.ReplaceTickets(ctx, orderID, userID, tickets)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Order updated",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID),
		zap.Int("tickets", order.TotalTickets),
	)
	return order, nil
}

func (uc *BookingUseCase) GetOrder(ctx context.Context, orderID, userID int64) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, orderID, userID)
}

func (uc *BookingUseCase) ListOrders(
	ctx context.Context,
	userID int64,
	page domain.Page,
) ([]*domain.Order, int, error) {
	return uc.orderRepo.ListByUser(ctx, userID, page)
}

func (uc *BookingUseCase) GetTicket(ctx context.Context, ticketID, userID int64) (*domain.Ticket, error) {
	return uc.ticketRepo.GetByID(ctx, ticketID, userID)
}

func (uc *BookingUseCase) ListTickets(
	ctx context.Context,
	userID int64,
	page domain.Page,
) ([]*domain.Ticket, int, error) {
	return uc.ticketRepo.ListByUser(ctx, userID, page)
}

func (uc *BookingUseCase) UpdateTicket(
	ctx context.Context,
	ticketID, userID int64,
	req dto.TicketUpdateRequest,
) (*domain.Ticket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID, userID)
	if err != nil {
		return nil, err
	}

	journey, err := uc.journeyRepo.GetByID(ctx, req.Journey)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTicket(req.Carriage, req.Seat, journey.Train); err != nil {
		return nil, err
	}

	ticket.Carriage = req.Carriage
	ticket.Seat = req.Seat
	ticket.JourneyID = req.Journey

	if err := uc.ticketRepo.Update(ctx, ticket, userID); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (uc *BookingUseCase) DeleteTicket(ctx context.Context, ticketID, userID int64) error {
	return uc.ticketRepo.Delete(ctx, ticketID, userID)
}

// validateSpecs checks every ticket spec against the train of its journey.
// Journeys are fetched once per distinct id. Runs entirely before any write,
// so a failing spec leaves nothing behind.
func (uc *BookingUseCase) validateSpecs(
	ctx context.Context,
	specs []dto.TicketSpec,
) ([]domain.Ticket, error) {
	journeys := make(map[int64]*domain.Journey)
	tickets := make([]domain.Ticket, 0, len(specs))

	for _, spec := range specs {
		journey, ok := journeys[spec.Journey]
		if !ok {
			var err error
			journey, err = uc.journeyRepo.GetByID(ctx, spec.Journey)
			if err != nil {
				return nil, err
			}
			journeys[spec.Journey] = journey
		}

		if err := domain.ValidateTicket(spec.Carriage, spec.Seat, journey.Train); err != nil {
			return nil, err
		}

		tickets = append(tickets, domain.Ticket{
			ID:        spec.ID,
			Carriage:  spec.Carriage,
			Seat:      spec.Seat,
			JourneyID: spec.Journey,
		})
	}

	return tickets, nil
}
