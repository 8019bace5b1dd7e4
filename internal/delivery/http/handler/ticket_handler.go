package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/station-booking/internal/delivery/http/middleware"
	"github.com/station-booking/internal/pkg/utils"
	"github.com/station-booking/internal/pkg/validator"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

// TicketHandler is owner-scoped through the ticket's order.
type TicketHandler struct {
	bookingUC *usecase.BookingUseCase
	pager     Pager
	logger    *zap.Logger
}

func NewTicketHandler(bookingUC *usecase.BookingUseCase, pager Pager, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{
		bookingUC: bookingUC,
		pager:     pager,
		logger:    logger,
	}
}

func (h *TicketHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	tickets, total, err := h.bookingUC.ListTickets(c.Context(), middleware.UserID(c), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tickets, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *TicketHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	ticket, err := h.bookingUC.GetTicket(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ticket, nil)
}

func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TicketUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ticket, err := h.bookingUC.UpdateTicket(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ticket, nil)
}

func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.bookingUC.DeleteTicket(c.Context(), id, middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
