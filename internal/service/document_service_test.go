package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"keude/internal/model"
)

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*model.Document
}

func (r *fakeDocumentRepo) FindByKind(kind model.DocumentKind) ([]model.Document, error) {
	var out []model.Document
	for _, d := range r.docs {
		if d.Kind == kind {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) FindByID(id uuid.UUID) (*model.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDocumentRepo) Create(doc *model.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) Update(doc *model.Document) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) Delete(id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) CountByKind(kind model.DocumentKind) (int64, error) {
	var n int64
	for _, d := range r.docs {
		if d.Kind == kind {
			n++
		}
	}
	return n, nil
}

func newDocumentFixture() (DocumentService, *fakeDocumentRepo) {
	repo := &fakeDocumentRepo{docs: map[uuid.UUID]*model.Document{}}
	return NewDocumentService(repo, &fakeActivityRepo{}, nil), repo
}

func TestNextNumberPerKind(t *testing.T) {
	svc, repo := newDocumentFixture()

	number, err := svc.NextNumber(model.DocInvoice)
	if err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if number != "INV-0001" {
		t.Errorf("number = %q, want INV-0001", number)
	}

	id := uuid.New()
	repo.docs[id] = &model.Document{Kind: model.DocInvoice, Number: "INV-0001"}
	repo.docs[id].ID = id

	number, err = svc.NextNumber(model.DocInvoice)
	if err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if number != "INV-0002" {
		t.Errorf("number = %q, want INV-0002", number)
	}

	// Other kinds keep their own sequence.
	number, err = svc.NextNumber(model.DocReceipt)
	if err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if number != "RC-0001" {
		t.Errorf("number = %q, want RC-0001", number)
	}
}

func TestSaveDocumentAssignsNumberAndTotals(t *testing.T) {
	svc, _ := newDocumentFixture()

	req := &DocumentRequest{
		Kind:        model.DocInvoice,
		Date:        "2025-08-01",
		Client:      "PT Maju",
		DiscountPct: 10,
		TaxPct:      11,
		Items: []DocumentItemRequest{
			{Description: "Jasa desain", Qty: 2, Price: 500000},
		},
	}

	doc, err := svc.SaveDocument(req, "tester")
	if err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if doc.Number != "INV-0001" {
		t.Errorf("number = %q, want INV-0001", doc.Number)
	}
	// 1,000,000 - 10% = 900,000; + 11% = 999,000.
	if doc.Totals.Total != 999000 {
		t.Errorf("total = %v, want 999000", doc.Totals.Total)
	}
	if doc.Terbilang == "" {
		t.Error("expected a terbilang rendering for the total")
	}
	if doc.Status != "Draft" {
		t.Errorf("status = %q, want Draft", doc.Status)
	}
}

func TestSaveReceiptUsesAmountForTerbilang(t *testing.T) {
	svc, _ := newDocumentFixture()

	req := &DocumentRequest{
		Kind:         model.DocReceipt,
		Date:         "2025-08-01",
		ReceivedFrom: "CV Berkah",
		Purpose:      "Pembayaran DP proyek",
		Method:       "Transfer",
		Amount:       1500000,
	}

	doc, err := svc.SaveDocument(req, "tester")
	if err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if doc.Number != "RC-0001" {
		t.Errorf("number = %q, want RC-0001", doc.Number)
	}
	if doc.Terbilang != "Satu Juta Lima Ratus Ribu" {
		t.Errorf("terbilang = %q", doc.Terbilang)
	}
}

func TestDeleteDocumentUnknownID(t *testing.T) {
	svc, _ := newDocumentFixture()

	if err := svc.DeleteDocument(uuid.New(), "tester"); err != ErrDocumentNotFound {
		t.Errorf("err = %v, want ErrDocumentNotFound", err)
	}
}
