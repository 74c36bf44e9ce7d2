package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
	TxTax     TransactionType = "tax"
)

// Transaction statuses follow the labels the finance team already uses.
type TransactionStatus string

const (
	StatusLunas      TransactionStatus = "Lunas"
	StatusBelumBayar TransactionStatus = "Belum Dibayar"
	StatusMenunggu   TransactionStatus = "Menunggu"
	StatusDibatalkan TransactionStatus = "Dibatalkan"
)

// Preset categories shown in the entry form. Free text is still accepted,
// which is why category aggregation matches by substring too.
var PresetCategories = []string{
	"Pendapatan Jasa",
	"Pendapatan Proyek",
	"Gaji Karyawan",
	"Operasional",
	"Pajak",
	"Tabungan Karyawan",
	"Simpanan Wajib",
	"Lainnya",
}

type Transaction struct {
	BaseModel
	Date        time.Time         `gorm:"type:date;not null;index" json:"-"`
	Type        TransactionType   `gorm:"type:varchar(10);not null;index" json:"type" validate:"required,oneof=income expense tax"`
	Status      TransactionStatus `gorm:"type:varchar(20);not null" json:"status" validate:"required,oneof=Lunas 'Belum Dibayar' Menunggu Dibatalkan"`
	Category    string            `gorm:"type:varchar(100)" json:"category"`
	Description string            `gorm:"type:text" json:"description"`
	Amount      float64           `gorm:"not null" json:"amount" validate:"gte=0"` // whole Rupiah
	ProofImage  string            `gorm:"type:text" json:"proof_image,omitempty"`

	// Optional back-reference to a member. Deleting the member does not
	// cascade; a dangling reference renders as "-".
	RelatedMemberID *uuid.UUID `gorm:"type:uuid;index" json:"related_member_id,omitempty"`
	RelatedMember   *Member    `gorm:"foreignKey:RelatedMemberID;constraint:OnDelete:SET NULL" json:"related_member,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionResponse formats the date the way the frontend stores it (YYYY-MM-DD).
type TransactionResponse struct {
	ID              uuid.UUID         `json:"id"`
	Date            string            `json:"date"`
	Type            TransactionType   `json:"type"`
	Status          TransactionStatus `json:"status"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	Amount          float64           `json:"amount"`
	ProofImage      string            `json:"proof_image,omitempty"`
	RelatedMemberID *uuid.UUID        `json:"related_member_id,omitempty"`
	RelatedMember   string            `json:"related_member"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (t *Transaction) ToResponse() TransactionResponse {
	memberName := "-"
	if t.RelatedMember != nil {
		memberName = t.RelatedMember.Name
	}
	return TransactionResponse{
		ID:              t.ID,
		Date:            t.Date.Format("2006-01-02"),
		Type:            t.Type,
		Status:          t.Status,
		Category:        t.Category,
		Description:     t.Description,
		Amount:          t.Amount,
		ProofImage:      t.ProofImage,
		RelatedMemberID: t.RelatedMemberID,
		RelatedMember:   memberName,
		CreatedAt:       t.CreatedAt,
	}
}
