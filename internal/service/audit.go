package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"keude/internal/model"
	"keude/internal/repository"
	"keude/internal/ws"
	"keude/pkg/logger"
	"keude/pkg/validator"
)

// validateRequest runs struct validation and surfaces the first failure
// as a plain error for the handler's envelope.
func validateRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		msg := fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		return errors.New(msg)
	}
	return nil
}

// auditor writes the activity log entry for a mutation and pushes a
// change notification to connected clients. Failures are logged, never
// propagated: a lost audit row must not fail the mutation itself.
type auditor struct {
	activityRepo repository.ActivityLogRepository
	hub          *ws.Hub
}

func (a auditor) record(action, table, description, userName string, details interface{}) {
	entry := &model.ActivityLog{
		Action:      action,
		Description: description,
		UserName:    userName,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = raw
		}
	}
	if err := a.activityRepo.Create(entry); err != nil {
		logger.Get().WithError(err).WithField("action", action).Warn("failed to write activity log")
	}
	if a.hub != nil {
		a.hub.NotifyChanged(table, action, userName)
	}
}
