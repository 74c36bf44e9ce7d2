package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"keude/internal/service"
)

type FundHandler struct {
	service service.FundService
}

func NewFundHandler(s service.FundService) *FundHandler {
	return &FundHandler{service: s}
}

// GetMatrix returns the per-member monthly savings grid for one year
// GET /api/v1/funds/matrix?year=2025
func (h *FundHandler) GetMatrix(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	matrix, err := h.service.GetMatrix(year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build fund matrix"})
	}
	return c.JSON(matrix)
}

type ToggleRequest struct {
	MemberID uuid.UUID `json:"member_id"`
	Year     int       `json:"year"`
	Month    int       `json:"month"` // 0-based, January = 0
}

// TogglePayment flips a member-month savings cell
// POST /api/v1/funds/toggle
func (h *FundHandler) TogglePayment(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.MemberID == uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "member_id is required"})
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}

	result, err := h.service.TogglePayment(req.MemberID, req.Year, req.Month, getUserName(c))
	if err != nil {
		if err == service.ErrMemberNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Payment toggled", "data": result})
}
