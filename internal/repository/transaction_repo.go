package repository

import (
	"keude/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindAll() ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	Create(tx *model.Transaction) error
	Update(id uuid.UUID, updates map[string]interface{}) (*model.Transaction, error)
	Delete(id uuid.UUID) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.Preload("RelatedMember").Order("date DESC, created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.Preload("RelatedMember").First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

// Update applies a partial merge patch and returns the updated row.
func (r *transactionRepo) Update(id uuid.UUID, updates map[string]interface{}) (*model.Transaction, error) {
	if err := r.db.Model(&model.Transaction{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes the row permanently. No soft delete for transactions.
func (r *transactionRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Transaction{}, "id = ?", id).Error
}
