package ports

import (
	"context"

	"github.com/bnema/dreamlog/internal/domain"
)

// SessionRepository is an append-only ritual session log. Append must either
// persist the whole session or nothing.
type SessionRepository interface {
	Append(ctx context.Context, session domain.RitualSession) error
	ListByUser(ctx context.Context, userID string) ([]domain.RitualSession, error)
}
