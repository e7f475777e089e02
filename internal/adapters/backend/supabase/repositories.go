package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/ports"
	"github.com/supabase-community/postgrest-go"
	supabasego "github.com/supabase-community/supabase-go"
)

var (
	_ ports.SessionRepository = (*SessionRepository)(nil)
	_ ports.EntryRepository   = (*EntryRepository)(nil)
)

// SessionRepository stores ritual sessions in the ritual_sessions table.
type SessionRepository struct {
	client *supabasego.Client
}

func NewSessionRepository(client *supabasego.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Append(ctx context.Context, session domain.RitualSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := r.client.From(sessionsTable).
		Insert(toSessionRow(session), false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert %s: %w", sessionsTable, err)
	}

	return nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]domain.RitualSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Rows have no insertion order in Postgres; completed_at is stamped at
	// append time and stands in for it.
	data, _, err := r.client.From(sessionsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("completed_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", sessionsTable, err)
	}

	var rows []sessionRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", sessionsTable, err)
	}

	sessions := make([]domain.RitualSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, row.toDomain())
	}

	return sessions, nil
}

// EntryRepository stores dream and mood entries in the entries table.
type EntryRepository struct {
	client *supabasego.Client
}

func NewEntryRepository(client *supabasego.Client) *EntryRepository {
	return &EntryRepository{client: client}
}

func (r *EntryRepository) Insert(ctx context.Context, entry domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := r.client.From(entriesTable).
		Insert(toEntryRow(entry), false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert %s: %w", entriesTable, err)
	}

	return nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.client.From(entriesTable).
		Select("*", "", false).
		Eq("user_id", userID)
	if entryType != "" {
		query = query.Eq("type", string(entryType))
	}

	data, _, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", entriesTable, err)
	}

	var rows []entryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", entriesTable, err)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}

	return entries, nil
}
