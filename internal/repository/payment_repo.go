package repository

import (
	"errors"

	"keude/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	FindByYear(year int) ([]model.Payment, error)
	FindByPeriod(memberID uuid.UUID, year, month int) (*model.Payment, error)
	Create(payment *model.Payment) error
	DeleteByPeriod(memberID uuid.UUID, year, month int) error
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) FindByYear(year int) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("year = ?", year).Find(&payments).Error
	return payments, err
}

// FindByPeriod returns nil without error when no record exists; an absent
// row just means the month is unpaid.
func (r *paymentRepo) FindByPeriod(memberID uuid.UUID, year, month int) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.Where("member_id = ? AND year = ? AND month = ?", memberID, year, month).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepo) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

// DeleteByPeriod removes the record permanently; the toggle relies on
// absence meaning unpaid.
func (r *paymentRepo) DeleteByPeriod(memberID uuid.UUID, year, month int) error {
	return r.db.Unscoped().
		Where("member_id = ? AND year = ? AND month = ?", memberID, year, month).
		Delete(&model.Payment{}).Error
}
