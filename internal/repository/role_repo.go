package repository

import (
	"keude/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByCode(code string) (*model.Role, error)
	SeedDefaults() error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Privileges").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Preload("Privileges").Where("code = ?", code).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) SeedDefaults() error {
	for _, role := range model.DefaultRoles {
		var existing model.Role
		if err := r.db.Where("code = ?", role.Code).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&role).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
