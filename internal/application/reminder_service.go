package application

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/logging"
	"github.com/bnema/dreamlog/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderService struct {
	reminders ports.ReminderRepository
	newID     func() string
	logger    *zap.Logger
}

func NewReminderService(reminders ports.ReminderRepository, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		newID:     uuid.NewString,
		logger:    logging.OrNop(logger),
	}
}

func (s *ReminderService) Add(ctx context.Context, cmd AddReminderCommand) (domain.ReminderPreference, error) {
	if err := requireUser(cmd.UserID); err != nil {
		return domain.ReminderPreference{}, err
	}

	hours := slices.Clone(cmd.CustomHours)
	slices.Sort(hours)
	hours = slices.Compact(hours)

	reminder := domain.ReminderPreference{
		ID:          s.newID(),
		UserID:      cmd.UserID,
		Type:        cmd.Type,
		Frequency:   cmd.Frequency,
		CustomHours: hours,
		Message:     strings.TrimSpace(cmd.Message),
		Enabled:     true,
	}
	if err := reminder.Validate(); err != nil {
		return domain.ReminderPreference{}, err
	}

	if err := s.reminders.Save(ctx, reminder); err != nil {
		return domain.ReminderPreference{}, storageError("save reminder", err)
	}

	s.logger.Info("reminder added", zap.String("user_id", reminder.UserID), zap.String("reminder_id", reminder.ID))

	return reminder, nil
}

func (s *ReminderService) List(ctx context.Context, userID string) ([]domain.ReminderPreference, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	reminders, err := s.reminders.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError("list reminders", err)
	}

	return reminders, nil
}

func (s *ReminderService) SetEnabled(ctx context.Context, userID, id string, enabled bool) (domain.ReminderPreference, error) {
	reminders, err := s.List(ctx, userID)
	if err != nil {
		return domain.ReminderPreference{}, err
	}

	idx := slices.IndexFunc(reminders, func(r domain.ReminderPreference) bool { return r.ID == id })
	if idx < 0 {
		return domain.ReminderPreference{}, domain.ErrReminderNotFound
	}

	reminder := reminders[idx]
	reminder.Enabled = enabled
	if err := s.reminders.Save(ctx, reminder); err != nil {
		return domain.ReminderPreference{}, storageError("save reminder", err)
	}

	return reminder, nil
}

func (s *ReminderService) Delete(ctx context.Context, userID, id string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	if err := s.reminders.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return err
		}
		return storageError("delete reminder", err)
	}

	s.logger.Info("reminder deleted", zap.String("user_id", userID), zap.String("reminder_id", id))

	return nil
}
