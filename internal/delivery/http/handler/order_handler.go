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

// OrderHandler is owner-scoped: every operation acts on the orders of the
// authenticated caller only.
type OrderHandler struct {
	bookingUC *usecase.BookingUseCase
	pager     Pager
	logger    *zap.Logger
}

func NewOrderHandler(bookingUC *usecase.BookingUseCase, pager Pager, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		bookingUC: bookingUC,
		pager:     pager,
		logger:    logger,
	}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.bookingUC.CreateOrder(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, order)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	orders, total, err := h.bookingUC.ListOrders(c.Context(), middleware.UserID(c), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, orders, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.bookingUC.GetOrder(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, order, nil)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.bookingUC.UpdateOrder(c.Context(), id, middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, order, nil)
}
