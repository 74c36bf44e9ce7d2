package repository

import (
	"encoding/json"
	"errors"

	"keude/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

// Get unmarshals the stored JSON value into out. The boolean reports
// whether the key exists; missing keys are not errors so callers can fall
// back to defaults.
func (r *settingRepo) Get(key string, out interface{}) (bool, error) {
	var setting model.AppSetting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(setting.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *settingRepo) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	setting := model.AppSetting{Key: key, Value: raw}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
