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

var ErrInvalidPeriod = errors.New("month must be between 0 and 11")

type FundService interface {
	GetMatrix(year int) (*ledger.FundMatrix, error)
	TogglePayment(memberID uuid.UUID, year, month int, userName string) (*ToggleResult, error)
}

// ToggleResult reports the paid state after a toggle.
type ToggleResult struct {
	MemberID uuid.UUID `json:"member_id"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Paid     bool      `json:"paid"`
	Amount   float64   `json:"amount,omitempty"`
}

type fundService struct {
	memberRepo  repository.MemberRepository
	paymentRepo repository.PaymentRepository
	audit       auditor
}

func NewFundService(memberRepo repository.MemberRepository, paymentRepo repository.PaymentRepository, activityRepo repository.ActivityLogRepository, hub *ws.Hub) FundService {
	return &fundService{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		audit:       auditor{activityRepo: activityRepo, hub: hub},
	}
}

func (s *fundService) GetMatrix(year int) (*ledger.FundMatrix, error) {
	members, err := s.memberRepo.FindAll()
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByYear(year)
	if err != nil {
		return nil, err
	}
	matrix := ledger.BuildFundMatrix(members, payments, year)
	return &matrix, nil
}

// TogglePayment flips one member-month cell: an existing record is removed,
// a missing one is created with the fixed monthly obligation. Toggling twice
// restores the original state.
func (s *fundService) TogglePayment(memberID uuid.UUID, year, month int, userName string) (*ToggleResult, error) {
	if month < 0 || month > 11 {
		return nil, ErrInvalidPeriod
	}

	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	existing, err := s.paymentRepo.FindByPeriod(memberID, year, month)
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{MemberID: memberID, Year: year, Month: month}
	if existing != nil {
		if err := s.paymentRepo.DeleteByPeriod(memberID, year, month); err != nil {
			return nil, errors.New("failed to remove payment")
		}
		result.Paid = false
	} else {
		payment := &model.Payment{
			MemberID: memberID,
			Year:     year,
			Month:    month,
			Amount:   model.MonthlyObligation,
			Paid:     true,
			Date:     time.Now(),
		}
		if err := s.paymentRepo.Create(payment); err != nil {
			return nil, errors.New("failed to record payment")
		}
		result.Paid = true
		result.Amount = payment.Amount
	}

	state := "lunas"
	if !result.Paid {
		state = "belum dibayar"
	}
	s.audit.record(model.ActionFundsUpdate, "payments",
		fmt.Sprintf("Menandai simpanan %s bulan %d/%d sebagai %s", member.Name, month+1, year, state),
		userName, result)

	return result, nil
}
