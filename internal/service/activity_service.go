package service

import (
	"keude/internal/model"
	"keude/internal/repository"
)

type ActivityService interface {
	GetLatest(limit int) ([]model.ActivityLog, error)
	Clear() error
}

type activityService struct {
	activityRepo repository.ActivityLogRepository
}

func NewActivityService(activityRepo repository.ActivityLogRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) GetLatest(limit int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.activityRepo.FindLatest(limit)
}

func (s *activityService) Clear() error {
	return s.activityRepo.Clear()
}
