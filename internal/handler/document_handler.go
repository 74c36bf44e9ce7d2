package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"keude/internal/model"
	"keude/internal/service"
)

type DocumentHandler struct {
	service service.DocumentService
}

func NewDocumentHandler(s service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: s}
}

func parseKind(c *fiber.Ctx) (model.DocumentKind, bool) {
	kind := model.DocumentKind(c.Query("kind", c.Params("kind")))
	switch kind {
	case model.DocQuotation, model.DocInvoice, model.DocReceipt:
		return kind, true
	}
	return "", false
}

// GET /api/v1/documents?kind=invoice
func (h *DocumentHandler) GetDocuments(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "kind must be quotation, invoice, or receipt"})
	}

	docs, err := h.service.ListDocuments(kind)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch documents"})
	}
	return c.JSON(fiber.Map{"data": docs})
}

// GET /api/v1/documents/:id
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	doc, err := h.service.GetDocumentByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// NextNumber previews the next running number for a document kind
// GET /api/v1/documents/next-number?kind=invoice
func (h *DocumentHandler) NextNumber(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "kind must be quotation, invoice, or receipt"})
	}

	number, err := h.service.NextNumber(kind)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate number"})
	}
	return c.JSON(fiber.Map{"number": number})
}

// POST /api/v1/documents
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var req service.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	doc, err := h.service.SaveDocument(&req, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Document saved", "data": doc})
}

// PUT /api/v1/documents/:id
func (h *DocumentHandler) UpdateDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	var req service.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	doc, err := h.service.UpdateDocument(id, &req, getUserName(c))
	if err != nil {
		if err == service.ErrDocumentNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Document updated", "data": doc})
}

// DELETE /api/v1/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	if err := h.service.DeleteDocument(id, getUserName(c)); err != nil {
		if err == service.ErrDocumentNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Document deleted"})
}
