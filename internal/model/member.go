package model

import (
	"time"

	"github.com/google/uuid"
)

type MemberType string

const (
	MemberKaryawan MemberType = "karyawan"
	MemberKlien    MemberType = "klien"
)

// Member is an internal employee or an external client.
type Member struct {
	BaseModel
	Name              string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	NIK               string     `gorm:"type:varchar(50)" json:"nik"`
	Type              MemberType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=karyawan klien"`
	Company           string     `gorm:"type:varchar(255)" json:"company"`
	BankName          string     `gorm:"type:varchar(100)" json:"bank_name"`
	AccountNumber     string     `gorm:"type:varchar(50)" json:"account_number"`
	JoinDate          time.Time  `gorm:"type:date" json:"-"`
	InitialFund       float64    `gorm:"default:0" json:"initial_fund" validate:"gte=0"`
	InitialFundStatus string     `gorm:"type:varchar(20);default:'LUNAS'" json:"initial_fund_status"`
	Status            string     `gorm:"type:varchar(20);default:'Aktif'" json:"status"`
}

func (Member) TableName() string {
	return "members"
}

type MemberResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	NIK               string     `json:"nik"`
	Type              MemberType `json:"type"`
	Company           string     `json:"company"`
	BankName          string     `json:"bank_name"`
	AccountNumber     string     `json:"account_number"`
	JoinDate          string     `json:"join_date"`
	InitialFund       float64    `json:"initial_fund"`
	InitialFundStatus string     `json:"initial_fund_status"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (m *Member) ToResponse() MemberResponse {
	return MemberResponse{
		ID:                m.ID,
		Name:              m.Name,
		NIK:               m.NIK,
		Type:              m.Type,
		Company:           m.Company,
		BankName:          m.BankName,
		AccountNumber:     m.AccountNumber,
		JoinDate:          m.JoinDate.Format("2006-01-02"),
		InitialFund:       m.InitialFund,
		InitialFundStatus: m.InitialFundStatus,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
	}
}
