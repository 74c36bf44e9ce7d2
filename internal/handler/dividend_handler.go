package handler

import (
	"github.com/gofiber/fiber/v2"

	"keude/internal/model"
	"keude/internal/service"
)

type DividendHandler struct {
	service service.DividendService
}

func NewDividendHandler(s service.DividendService) *DividendHandler {
	return &DividendHandler{service: s}
}

// GET /api/v1/dividends/settings
func (h *DividendHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(settings)
}

// PUT /api/v1/dividends/settings
func (h *DividendHandler) SaveSettings(c *fiber.Ctx) error {
	var settings model.DividendSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SaveSettings(settings, getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Settings saved", "data": settings})
}

// GET /api/v1/dividends/capital
func (h *DividendHandler) GetCapital(c *fiber.Ctx) error {
	capital, err := h.service.GetCapital()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch capital"})
	}
	return c.JSON(fiber.Map{"capital": capital})
}

type CapitalRequest struct {
	Capital float64 `json:"capital"`
}

// PUT /api/v1/dividends/capital
func (h *DividendHandler) SaveCapital(c *fiber.Ctx) error {
	var req CapitalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SaveCapital(req.Capital, getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Capital saved", "capital": req.Capital})
}

// GetAllocation returns the running profit split across the buckets
// GET /api/v1/dividends/allocation
func (h *DividendHandler) GetAllocation(c *fiber.Ctx) error {
	allocation, err := h.service.GetAllocation()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute allocation"})
	}
	return c.JSON(allocation)
}
