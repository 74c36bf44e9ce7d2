package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"keude/internal/service"
)

type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(s service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: s}
}

// GET /api/v1/activity-logs?limit=100
func (h *ActivityHandler) GetLogs(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil {
		limit = 100
	}

	logs, err := h.service.GetLatest(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity logs"})
	}
	return c.JSON(fiber.Map{"data": logs})
}

// DELETE /api/v1/activity-logs
func (h *ActivityHandler) ClearLogs(c *fiber.Ctx) error {
	if err := h.service.Clear(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clear activity logs"})
	}
	return c.JSON(fiber.Map{"message": "Activity logs cleared"})
}
