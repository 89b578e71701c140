package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/chrono-snap/models"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

func parseLimit(param string) (int, error) {
	if param == "" {
		return defaultHistoryLimit, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("invalid limit: must be an integer")
	}
	if value < 1 || value > maxHistoryLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxHistoryLimit)
	}
	return value, nil
}

func (h *Handler) ListTransformations(c *fiber.Ctx) error {
	if h.history == nil {
		return errorResponse(c, fiber.StatusInternalServerError, "History not configured", "")
	}

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid query", err.Error())
	}

	rows, err := h.history.Recent(c.UserContext(), limit)
	if err != nil {
		h.log.Error("failed to load transformation history", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load history", err.Error())
	}
	if rows == nil {
		rows = []models.Transformation{}
	}

	return c.JSON(fiber.Map{
		"transformations": rows,
		"count":           len(rows),
	})
}
