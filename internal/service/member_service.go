package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"keude/internal/model"
	"keude/internal/repository"
	"keude/internal/ws"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberService interface {
	GetAllMembers() ([]model.MemberResponse, error)
	GetMemberByID(id uuid.UUID) (*model.MemberResponse, error)
	CreateMember(req *MemberRequest, userName string) (*model.MemberResponse, error)
	UpdateMember(id uuid.UUID, req *MemberRequest, userName string) (*model.MemberResponse, error)
	DeleteMember(id uuid.UUID, userName string) error
}

type MemberRequest struct {
	Name              string           `json:"name" validate:"required"`
	NIK               string           `json:"nik"`
	Type              model.MemberType `json:"type" validate:"required,oneof=karyawan klien"`
	Company           string           `json:"company"`
	BankName          string           `json:"bank_name"`
	AccountNumber     string           `json:"account_number"`
	JoinDate          string           `json:"join_date"`
	InitialFund       float64          `json:"initial_fund" validate:"gte=0"`
	InitialFundStatus string           `json:"initial_fund_status"`
	Status            string           `json:"status"`
}

type memberService struct {
	memberRepo repository.MemberRepository
	audit      auditor
}

func NewMemberService(memberRepo repository.MemberRepository, activityRepo repository.ActivityLogRepository, hub *ws.Hub) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		audit:      auditor{activityRepo: activityRepo, hub: hub},
	}
}

func (s *memberService) GetAllMembers() ([]model.MemberResponse, error) {
	members, err := s.memberRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.MemberResponse, len(members))
	for i := range members {
		responses[i] = members[i].ToResponse()
	}
	return responses, nil
}

func (s *memberService) GetMemberByID(id uuid.UUID) (*model.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, ErrMemberNotFound
	}
	resp := member.ToResponse()
	return &resp, nil
}

func (s *memberService) applyRequest(member *model.Member, req *MemberRequest) error {
	joinDate := time.Now()
	if req.JoinDate != "" {
		parsed, err := parseDate(req.JoinDate)
		if err != nil {
			return errors.New("invalid join_date format, expected YYYY-MM-DD")
		}
		joinDate = parsed
	}

	member.Name = req.Name
	member.NIK = req.NIK
	member.Type = req.Type
	member.Company = req.Company
	member.BankName = req.BankName
	member.AccountNumber = req.AccountNumber
	member.JoinDate = joinDate
	member.InitialFund = req.InitialFund
	member.InitialFundStatus = req.InitialFundStatus
	if member.InitialFundStatus == "" {
		member.InitialFundStatus = "LUNAS"
	}
	member.Status = req.Status
	if member.Status == "" {
		member.Status = "Aktif"
	}
	return nil
}

func (s *memberService) CreateMember(req *MemberRequest, userName string) (*model.MemberResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	member := &model.Member{}
	if err := s.applyRequest(member, req); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, errors.New("failed to create member")
	}

	s.audit.record(model.ActionMemberAdd, "members",
		"Menambahkan anggota "+member.Name, userName, member.ToResponse())

	resp := member.ToResponse()
	return &resp, nil
}

func (s *memberService) UpdateMember(id uuid.UUID, req *MemberRequest, userName string) (*model.MemberResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	if err := s.applyRequest(member, req); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, errors.New("failed to update member")
	}

	s.audit.record(model.ActionMemberUpdate, "members",
		"Memperbarui anggota "+member.Name, userName, member.ToResponse())

	resp := member.ToResponse()
	return &resp, nil
}

// DeleteMember removes the member only. Transactions that referenced them
// keep a dangling id and render the member name as "-".
func (s *memberService) DeleteMember(id uuid.UUID, userName string) error {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return ErrMemberNotFound
	}

	if err := s.memberRepo.Delete(id); err != nil {
		return errors.New("failed to delete member")
	}

	s.audit.record(model.ActionMemberDelete, "members",
		"Menghapus anggota "+member.Name, userName, member.ToResponse())
	return nil
}
