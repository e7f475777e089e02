package toml

import (
	"context"
	"fmt"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/ports"
)

var (
	_ ports.SessionRepository  = (*SessionRepository)(nil)
	_ ports.EntryRepository    = (*EntryRepository)(nil)
	_ ports.ReminderRepository = (*ReminderRepository)(nil)
)

type SessionRepository struct {
	journal *Journal
}

func (r *SessionRepository) Append(ctx context.Context, session domain.RitualSession) error {
	return r.journal.update(ctx, func(file *journalSchema) error {
		file.Sessions = append(file.Sessions, toSessionSchema(session))
		return nil
	})
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string) ([]domain.RitualSession, error) {
	var sessions []domain.RitualSession
	err := r.journal.view(ctx, func(file journalSchema) error {
		sessions = make([]domain.RitualSession, 0, len(file.Sessions))
		for _, session := range file.Sessions {
			if session.UserID != userID {
				continue
			}
			decoded, err := fromSessionSchema(session)
			if err != nil {
				return fmt.Errorf("decode journal file: %w", err)
			}
			sessions = append(sessions, decoded)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

type EntryRepository struct {
	journal *Journal
}

func (r *EntryRepository) Insert(ctx context.Context, entry domain.Entry) error {
	return r.journal.update(ctx, func(file *journalSchema) error {
		file.Entries = append(file.Entries, toEntrySchema(entry))
		return nil
	})
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := r.journal.view(ctx, func(file journalSchema) error {
		entries = make([]domain.Entry, 0, len(file.Entries))
		for _, entry := range file.Entries {
			if entry.UserID != userID {
				continue
			}
			if entryType != "" && entry.Type != string(entryType) {
				continue
			}
			decoded, err := fromEntrySchema(entry)
			if err != nil {
				return fmt.Errorf("decode journal file: %w", err)
			}
			entries = append(entries, decoded)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

type ReminderRepository struct {
	journal *Journal
}

// Save replaces the reminder with the same id or appends a new one.
func (r *ReminderRepository) Save(ctx context.Context, reminder domain.ReminderPreference) error {
	return r.journal.update(ctx, func(file *journalSchema) error {
		encoded := toReminderSchema(reminder)
		for i := range file.Reminders {
			if file.Reminders[i].ID == encoded.ID {
				file.Reminders[i] = encoded
				return nil
			}
		}
		file.Reminders = append(file.Reminders, encoded)
		return nil
	})
}

func (r *ReminderRepository) ListByUser(ctx context.Context, userID string) ([]domain.ReminderPreference, error) {
	var reminders []domain.ReminderPreference
	err := r.journal.view(ctx, func(file journalSchema) error {
		reminders = make([]domain.ReminderPreference, 0, len(file.Reminders))
		for _, reminder := range file.Reminders {
			if reminder.UserID != userID {
				continue
			}
			decoded, err := fromReminderSchema(reminder)
			if err != nil {
				return fmt.Errorf("decode journal file: %w", err)
			}
			reminders = append(reminders, decoded)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *ReminderRepository) Delete(ctx context.Context, userID, id string) error {
	return r.journal.update(ctx, func(file *journalSchema) error {
		for i := range file.Reminders {
			if file.Reminders[i].ID == id && file.Reminders[i].UserID == userID {
				file.Reminders = append(file.Reminders[:i], file.Reminders[i+1:]...)
				return nil
			}
		}
		return domain.ErrReminderNotFound
	})
}
