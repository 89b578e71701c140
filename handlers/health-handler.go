package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/chrono-snap/models"
)

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Time travel camera API is running",
	})
}

func (h *Handler) TimePeriods(c *fiber.Ctx) error {
	return c.JSON(models.Eras())
}
