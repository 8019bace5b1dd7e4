package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/pkg/errors"
)

// Pager turns page/page_size query parameters into a bounded page window.
type Pager struct {
	DefaultSize int
	MaxSize     int
}

func (p Pager) Parse(c *fiber.Ctx) domain.Page {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	size := c.QueryInt("page_size", p.DefaultSize)
	if size < 1 {
		size = p.DefaultSize
	}
	if size > p.MaxSize {
		size = p.MaxSize
	}

	return domain.Page{Number: page, Size: size}
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.ErrInvalidRequest
	}
	return id, nil
}
