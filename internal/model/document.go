package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentKind string

const (
	DocQuotation DocumentKind = "quotation"
	DocInvoice   DocumentKind = "invoice"
	DocReceipt   DocumentKind = "receipt"
)

// NumberPrefix returns the running-number prefix for a document kind
// (QT-0001, INV-0001, RC-0001).
func (k DocumentKind) NumberPrefix() string {
	switch k {
	case DocQuotation:
		return "QT"
	case DocInvoice:
		return "INV"
	case DocReceipt:
		return "RC"
	}
	return "DOC"
}

// Document is a quotation, invoice, or kwitansi (receipt) header.
// Quotations and invoices carry line items; receipts carry a single Amount.
type Document struct {
	BaseModel
	Kind        DocumentKind `gorm:"type:varchar(10);not null;index" json:"kind" validate:"required,oneof=quotation invoice receipt"`
	Number      string       `gorm:"type:varchar(20);not null;uniqueIndex" json:"number"`
	Date        time.Time    `gorm:"type:date;not null" json:"-"`
	Client      string       `gorm:"type:varchar(255)" json:"client"`
	Contact     string       `gorm:"type:varchar(255)" json:"contact"`
	Status      string       `gorm:"type:varchar(20);default:'Draft'" json:"status"`
	DueDate     *time.Time   `gorm:"type:date" json:"-"`
	DiscountPct float64      `gorm:"default:0" json:"discount_pct"`
	TaxPct      float64      `gorm:"default:0" json:"tax_pct"`
	Notes       string       `gorm:"type:text" json:"notes"`

	// Receipt-only fields.
	ReceivedFrom string  `gorm:"type:varchar(255)" json:"received_from,omitempty"`
	Purpose      string  `gorm:"type:text" json:"purpose,omitempty"`
	Method       string  `gorm:"type:varchar(50)" json:"method,omitempty"`
	Amount       float64 `gorm:"default:0" json:"amount,omitempty"`

	Items []DocumentItem `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`
	Description string    `gorm:"type:text" json:"description"`
	Qty         float64   `gorm:"default:0" json:"qty"`
	Price       float64   `gorm:"default:0" json:"price"`
}

func (DocumentItem) TableName() string {
	return "document_items"
}

func (i *DocumentItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
