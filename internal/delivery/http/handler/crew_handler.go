package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/pkg/utils"
	"github.com/station-booking/internal/pkg/validator"
	"github.com/station-booking/internal/usecase"
	"github.com/station-booking/internal/usecase/dto"
)

type CrewHandler struct {
	crewUC *usecase.CrewUseCase
	pager  Pager
	logger *zap.Logger
}

func NewCrewHandler(crewUC *usecase.CrewUseCase, pager Pager, logger *zap.Logger) *CrewHandler {
	return &CrewHandler{
		crewUC: crewUC,
		pager:  pager,
		logger: logger,
	}
}

func (h *CrewHandler) Create(c *fiber.Ctx) error {
	var req dto.CrewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.crewUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, crew)
}

func (h *CrewHandler) List(c *fiber.Ctx) error {
	page := h.pager.Parse(c)

	crews, total, err := h.crewUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crews, &utils.Meta{
		Total: total,
		Page:  page.Number,
		Limit: page.Size,
	})
}

func (h *CrewHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.crewUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crew, nil)
}

func (h *CrewHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CrewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.crewUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crew, nil)
}

func (h *CrewHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.crewUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImage stores a profile image for a crew member. Admin only.
func (h *CrewHandler) UploadImage(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.SendError(c, errors.NewValidation("image", "image file is required"))
	}

	path, err := h.crewUC.NewImagePath(c.Context(), id, file.Filename)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := c.SaveFile(file, path); err != nil {
		h.logger.Error("Failed to save crew image", zap.Int64("crew_id", id), zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	crew, err := h.crewUC.SetImage(c.Context(), id, path)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crew, nil)
}
