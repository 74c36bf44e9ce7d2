package repository

import (
	"keude/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Create(log *model.ActivityLog) error
	FindLatest(limit int) ([]model.ActivityLog, error)
	Clear() error
}

type activityLogRepo struct {
	db *gorm.DB
}

func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db}
}

func (r *activityLogRepo) Create(log *model.ActivityLog) error {
	return r.db.Create(log).Error
}

func (r *activityLogRepo) FindLatest(limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *activityLogRepo) Clear() error {
	return r.db.Where("1 = 1").Delete(&model.ActivityLog{}).Error
}
