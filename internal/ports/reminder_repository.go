package ports

import (
	"context"

	"github.com/bnema/dreamlog/internal/domain"
)

type ReminderRepository interface {
	Save(ctx context.Context, reminder domain.ReminderPreference) error
	ListByUser(ctx context.Context, userID string) ([]domain.ReminderPreference, error)
	Delete(ctx context.Context, userID, id string) error
}
