package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"keude/internal/ledger"
	"keude/internal/model"
	"keude/internal/repository"
	"keude/internal/ws"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService interface {
	ListDocuments(kind model.DocumentKind) ([]DocumentResponse, error)
	GetDocumentByID(id uuid.UUID) (*DocumentResponse, error)
	NextNumber(kind model.DocumentKind) (string, error)
	SaveDocument(req *DocumentRequest, userName string) (*DocumentResponse, error)
	UpdateDocument(id uuid.UUID, req *DocumentRequest, userName string) (*DocumentResponse, error)
	DeleteDocument(id uuid.UUID, userName string) error
}

type DocumentItemRequest struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type DocumentRequest struct {
	Kind        model.DocumentKind    `json:"kind" validate:"required,oneof=quotation invoice receipt"`
	Number      string                `json:"number"`
	Date        string                `json:"date"`
	Client      string                `json:"client"`
	Contact     string                `json:"contact"`
	Status      string                `json:"status"`
	DueDate     string                `json:"due_date"`
	DiscountPct float64               `json:"discount_pct" validate:"gte=0,lte=100"`
	TaxPct      float64               `json:"tax_pct" validate:"gte=0,lte=100"`
	Notes       string                `json:"notes"`
	Items       []DocumentItemRequest `json:"items"`

	// Receipt-only fields.
	ReceivedFrom string  `json:"received_from"`
	Purpose      string  `json:"purpose"`
	Method       string  `json:"method"`
	Amount       float64 `json:"amount" validate:"gte=0"`
}

// DocumentResponse decorates the stored header with derived figures so the
// client never recomputes totals itself.
type DocumentResponse struct {
	ID           uuid.UUID             `json:"id"`
	Kind         model.DocumentKind    `json:"kind"`
	Number       string                `json:"number"`
	Date         string                `json:"date"`
	Client       string                `json:"client"`
	Contact      string                `json:"contact"`
	Status       string                `json:"status"`
	DueDate      string                `json:"due_date,omitempty"`
	DiscountPct  float64               `json:"discount_pct"`
	TaxPct       float64               `json:"tax_pct"`
	Notes        string                `json:"notes"`
	Items        []model.DocumentItem  `json:"items"`
	Totals       ledger.DocumentTotals `json:"totals"`
	ReceivedFrom string                `json:"received_from,omitempty"`
	Purpose      string                `json:"purpose,omitempty"`
	Method       string                `json:"method,omitempty"`
	Amount       float64               `json:"amount,omitempty"`
	Terbilang    string                `json:"terbilang"`
	CreatedAt    time.Time             `json:"created_at"`
}

type documentService struct {
	docRepo repository.DocumentRepository
	audit   auditor
}

func NewDocumentService(docRepo repository.DocumentRepository, activityRepo repository.ActivityLogRepository, hub *ws.Hub) DocumentService {
	return &documentService{
		docRepo: docRepo,
		audit:   auditor{activityRepo: activityRepo, hub: hub},
	}
}

func toDocumentResponse(doc *model.Document) DocumentResponse {
	totals := ledger.ComputeDocumentTotal(doc.Items, doc.DiscountPct, doc.TaxPct)
	grand := totals.Total
	if doc.Kind == model.DocReceipt {
		grand = doc.Amount
	}

	resp := DocumentResponse{
		ID:           doc.ID,
		Kind:         doc.Kind,
		Number:       doc.Number,
		Date:         doc.Date.Format("2006-01-02"),
		Client:       doc.Client,
		Contact:      doc.Contact,
		Status:       doc.Status,
		DiscountPct:  doc.DiscountPct,
		TaxPct:       doc.TaxPct,
		Notes:        doc.Notes,
		Items:        doc.Items,
		Totals:       totals,
		ReceivedFrom: doc.ReceivedFrom,
		Purpose:      doc.Purpose,
		Method:       doc.Method,
		Amount:       doc.Amount,
		Terbilang:    ledger.AmountInWords(int64(grand)),
		CreatedAt:    doc.CreatedAt,
	}
	if doc.DueDate != nil {
		resp.DueDate = doc.DueDate.Format("2006-01-02")
	}
	return resp
}

func (s *documentService) ListDocuments(kind model.DocumentKind) ([]DocumentResponse, error) {
	docs, err := s.docRepo.FindByKind(kind)
	if err != nil {
		return nil, err
	}
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = toDocumentResponse(&docs[i])
	}
	return responses, nil
}

func (s *documentService) GetDocumentByID(id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	resp := toDocumentResponse(doc)
	return &resp, nil
}

// NextNumber derives the next running number from the row count, e.g.
// INV-0005 when four invoices exist. Numbers freed by deletes are not
// reused safely; the unique index catches collisions.
func (s *documentService) NextNumber(kind model.DocumentKind) (string, error) {
	count, err := s.docRepo.CountByKind(kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%04d", kind.NumberPrefix(), count+1), nil
}

func (s *documentService) buildDocument(doc *model.Document, req *DocumentRequest) error {
	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return errors.New("invalid date format, expected YYYY-MM-DD")
		}
		date = parsed
	}

	doc.Kind = req.Kind
	doc.Number = req.Number
	doc.Date = date
	doc.Client = req.Client
	doc.Contact = req.Contact
	doc.Status = req.Status
	if doc.Status == "" {
		doc.Status = "Draft"
	}
	doc.DiscountPct = req.DiscountPct
	doc.TaxPct = req.TaxPct
	doc.Notes = req.Notes
	doc.ReceivedFrom = req.ReceivedFrom
	doc.Purpose = req.Purpose
	doc.Method = req.Method
	doc.Amount = req.Amount

	doc.DueDate = nil
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			return errors.New("invalid due_date format, expected YYYY-MM-DD")
		}
		doc.DueDate = &parsed
	}

	doc.Items = make([]model.DocumentItem, len(req.Items))
	for i, item := range req.Items {
		doc.Items[i] = model.DocumentItem{
			Description: item.Description,
			Qty:         item.Qty,
			Price:       item.Price,
		}
	}
	return nil
}

func (s *documentService) SaveDocument(req *DocumentRequest, userName string) (*DocumentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	doc := &model.Document{}
	if err := s.buildDocument(doc, req); err != nil {
		return nil, err
	}
	if doc.Number == "" {
		number, err := s.NextNumber(doc.Kind)
		if err != nil {
			return nil, err
		}
		doc.Number = number
	}

	if err := s.docRepo.Create(doc); err != nil {
		return nil, errors.New("failed to save document")
	}

	resp := toDocumentResponse(doc)
	s.audit.record(model.ActionDocumentSave, "documents",
		"Menyimpan dokumen "+doc.Number, userName, resp)
	return &resp, nil
}

func (s *documentService) UpdateDocument(id uuid.UUID, req *DocumentRequest, userName string) (*DocumentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	if err := s.buildDocument(doc, req); err != nil {
		return nil, err
	}
	if doc.Number == "" {
		return nil, errors.New("document number is required")
	}

	if err := s.docRepo.Update(doc); err != nil {
		return nil, errors.New("failed to update document")
	}

	updated, err := s.docRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toDocumentResponse(updated)
	s.audit.record(model.ActionDocumentSave, "documents",
		"Memperbarui dokumen "+updated.Number, userName, resp)
	return &resp, nil
}

func (s *documentService) DeleteDocument(id uuid.UUID, userName string) error {
	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		return ErrDocumentNotFound
	}

	if err := s.docRepo.Delete(id); err != nil {
		return errors.New("failed to delete document")
	}

	s.audit.record(model.ActionDocumentDelete, "documents",
		"Menghapus dokumen "+doc.Number, userName, nil)
	return nil
}
