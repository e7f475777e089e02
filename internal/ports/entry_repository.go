package ports

import (
	"context"

	"github.com/bnema/dreamlog/internal/domain"
)

type EntryRepository interface {
	Insert(ctx context.Context, entry domain.Entry) error
	// ListByUser returns the user's entries in insertion order. An empty
	// entryType selects every type.
	ListByUser(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.Entry, error)
}
