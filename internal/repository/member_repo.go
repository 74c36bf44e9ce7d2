package repository

import (
	"keude/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository interface {
	FindAll() ([]model.Member, error)
	FindByID(id uuid.UUID) (*model.Member, error)
	Create(member *model.Member) error
	Update(member *model.Member) error
	Delete(id uuid.UUID) error
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db}
}

func (r *memberRepo) FindAll() ([]model.Member, error) {
	var members []model.Member
	err := r.db.Order("created_at ASC").Find(&members).Error
	return members, err
}

func (r *memberRepo) FindByID(id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) Create(member *model.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepo) Update(member *model.Member) error {
	return r.db.Save(member).Error
}

// Delete removes the member permanently. Transactions and payments that
// reference it keep their dangling member_id on purpose.
func (r *memberRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Member{}, "id = ?", id).Error
}
