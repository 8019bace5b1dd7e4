package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/station-booking/internal/pkg/utils"
	"github.com/station-booking/internal/pkg/validator"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	pager   Pager
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, pager Pager, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		pager:   pager,
		logger:  logger,
	}
}

func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, route)
}

func (h *RouteHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	routes, total, err := h.routeUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, routes, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *RouteHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

func (h *RouteHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routeUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.routeUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
