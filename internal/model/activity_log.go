package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records one mutation made through the API (audit trail panel).
type ActivityLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Timestamp   time.Time      `gorm:"not null;index" json:"timestamp"`
	Action      string         `gorm:"type:varchar(50);not null" json:"action"`
	Description string         `gorm:"type:text" json:"description"`
	Details     datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	UserName    string         `gorm:"type:varchar(100)" json:"user_name"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return
}

// Activity log actions.
const (
	ActionTransactionAdd    = "TRANSACTION_ADD"
	ActionTransactionUpdate = "TRANSACTION_UPDATE"
	ActionTransactionDelete = "TRANSACTION_DELETE"
	ActionMemberAdd         = "MEMBER_ADD"
	ActionMemberUpdate      = "MEMBER_UPDATE"
	ActionMemberDelete      = "MEMBER_DELETE"
	ActionFundsUpdate       = "FUNDS_UPDATE"
	ActionDocumentSave      = "DOCUMENT_SAVE"
	ActionDocumentDelete    = "DOCUMENT_DELETE"
	ActionDividendUpdate    = "DIVIDEND_SETTINGS_UPDATE"
	ActionCapitalUpdate     = "CAPITAL_UPDATE"
)
