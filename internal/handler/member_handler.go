package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"keude/internal/service"
)

type MemberHandler struct {
	service service.MemberService
}

func NewMemberHandler(s service.MemberService) *MemberHandler {
	return &MemberHandler{service: s}
}

// GET /api/v1/members
func (h *MemberHandler) GetMembers(c *fiber.Ctx) error {
	members, err := h.service.GetAllMembers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch members"})
	}
	return c.JSON(fiber.Map{"data": members})
}

// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	member, err := h.service.GetMemberByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(member)
}

// POST /api/v1/members
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var req service.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	member, err := h.service.CreateMember(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Member created", "data": member})
}

// PUT /api/v1/members/:id
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	var req service.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	member, err := h.service.UpdateMember(id, &req, getUserName(c))
	if err != nil {
		if err == service.ErrMemberNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Member updated", "data": member})
}

// DELETE /api/v1/members/:id
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	if err := h.service.DeleteMember(id, getUserName(c)); err != nil {
		if err == service.ErrMemberNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Member deleted"})
}
