package model

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyObligation is the fixed savings amount every employee owes per month.
const MonthlyObligation = 50000

// Payment is one employee's savings payment state for a single month.
// Keyed by (member_id, year, month); a row existing means the month is paid.
// Toggling a paid month deletes the row, so there is no payment history
// beyond the current state.
type Payment struct {
	BaseModel
	MemberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payments_member_period" json:"member_id" validate:"uuid_required"`
	Member   *Member   `gorm:"foreignKey:MemberID" json:"member,omitempty" validate:"-"`
	Year     int       `gorm:"not null;uniqueIndex:idx_payments_member_period" json:"year" validate:"required"`
	Month    int       `gorm:"not null;uniqueIndex:idx_payments_member_period" json:"month" validate:"gte=0,lte=11"` // 0 = January
	Amount   float64   `gorm:"default:0" json:"amount"`
	Paid     bool      `gorm:"default:true" json:"paid"`
	Date     time.Time `json:"date"`
}

func (Payment) TableName() string {
	return "payments"
}
