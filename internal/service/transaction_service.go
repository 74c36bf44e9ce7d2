package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"keude/internal/ledger"
	"keude/internal/model"
	"keude/internal/repository"
	"keude/internal/ws"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionService interface {
	GetAllTransactions() ([]model.TransactionResponse, error)
	GetTransactionByID(id uuid.UUID) (*model.TransactionResponse, error)
	CreateTransaction(req *CreateTransactionRequest, userName string) (*model.TransactionResponse, error)
	UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest, userName string) (*model.TransactionResponse, error)
	DeleteTransaction(id uuid.UUID, userName string) error
}

type CreateTransactionRequest struct {
	Date            string                  `json:"date"`
	Type            model.TransactionType   `json:"type" validate:"required,oneof=income expense tax"`
	Status          model.TransactionStatus `json:"status" validate:"required,oneof=Lunas 'Belum Dibayar' Menunggu Dibatalkan"`
	Category        string                  `json:"category"`
	Description     string                  `json:"description"`
	Amount          float64                 `json:"amount" validate:"gte=0"`
	ProofImage      string                  `json:"proof_image"`
	RelatedMemberID *uuid.UUID              `json:"related_member_id"`
}

// UpdateTransactionRequest carries a partial edit; nil fields keep their
// stored value.
type UpdateTransactionRequest struct {
	Date            *string                  `json:"date"`
	Type            *model.TransactionType   `json:"type" validate:"omitempty,oneof=income expense tax"`
	Status          *model.TransactionStatus `json:"status" validate:"omitempty,oneof=Lunas 'Belum Dibayar' Menunggu Dibatalkan"`
	Category        *string                  `json:"category"`
	Description     *string                  `json:"description"`
	Amount          *float64                 `json:"amount" validate:"omitempty,gte=0"`
	ProofImage      *string                  `json:"proof_image"`
	RelatedMemberID *uuid.UUID               `json:"related_member_id"`
}

type transactionService struct {
	txRepo repository.TransactionRepository
	audit  auditor
}

func NewTransactionService(txRepo repository.TransactionRepository, activityRepo repository.ActivityLogRepository, hub *ws.Hub) TransactionService {
	return &transactionService{
		txRepo: txRepo,
		audit:  auditor{activityRepo: activityRepo, hub: hub},
	}
}

func (s *transactionService) GetAllTransactions() ([]model.TransactionResponse, error) {
	txs, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = txs[i].ToResponse()
	}
	return responses, nil
}

func (s *transactionService) GetTransactionByID(id uuid.UUID) (*model.TransactionResponse, error) {
	tx, err := s.txRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	resp := tx.ToResponse()
	return &resp, nil
}

func typeLabel(t model.TransactionType) string {
	switch t {
	case model.TxIncome:
		return "Pemasukan"
	case model.TxExpense:
		return "Pengeluaran"
	case model.TxTax:
		return "Pajak"
	}
	return string(t)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func (s *transactionService) CreateTransaction(req *CreateTransactionRequest, userName string) (*model.TransactionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return nil, errors.New("invalid date format, expected YYYY-MM-DD")
		}
		date = parsed
	}

	tx := &model.Transaction{
		Date:            date,
		Type:            req.Type,
		Status:          req.Status,
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		ProofImage:      req.ProofImage,
		RelatedMemberID: req.RelatedMemberID,
	}

	if err := s.txRepo.Create(tx); err != nil {
		return nil, errors.New("failed to create transaction")
	}

	s.audit.record(model.ActionTransactionAdd, "transactions",
		"Menambahkan transaksi "+typeLabel(tx.Type)+" sebesar "+ledger.FormatRupiah(tx.Amount),
		userName, tx.ToResponse())

	created, err := s.txRepo.FindByID(tx.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse()
	return &resp, nil
}

func (s *transactionService) UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest, userName string) (*model.TransactionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.txRepo.FindByID(id); err != nil {
		return nil, ErrTransactionNotFound
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return nil, errors.New("invalid date format, expected YYYY-MM-DD")
		}
		updates["date"] = parsed
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.ProofImage != nil {
		updates["proof_image"] = *req.ProofImage
	}
	if req.RelatedMemberID != nil {
		updates["related_member_id"] = *req.RelatedMemberID
	}

	tx, err := s.txRepo.Update(id, updates)
	if err != nil {
		return nil, errors.New("failed to update transaction")
	}

	s.audit.record(model.ActionTransactionUpdate, "transactions",
		"Memperbarui transaksi "+typeLabel(tx.Type)+" sebesar "+ledger.FormatRupiah(tx.Amount),
		userName, tx.ToResponse())

	resp := tx.ToResponse()
	return &resp, nil
}

func (s *transactionService) DeleteTransaction(id uuid.UUID, userName string) error {
	tx, err := s.txRepo.FindByID(id)
	if err != nil {
		return ErrTransactionNotFound
	}

	if err := s.txRepo.Delete(id); err != nil {
		return errors.New("failed to delete transaction")
	}

	s.audit.record(model.ActionTransactionDelete, "transactions",
		"Menghapus transaksi "+typeLabel(tx.Type)+" sebesar "+ledger.FormatRupiah(tx.Amount),
		userName, tx.ToResponse())
	return nil
}
