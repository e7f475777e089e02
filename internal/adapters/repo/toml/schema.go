package toml

import (
	"fmt"

	"github.com/bnema/dreamlog/internal/domain"
)

const currentSchemaVersion = 1

type journalSchema struct {
	Version   int              `toml:"version"`
	Sessions  []sessionSchema  `toml:"sessions"`
	Entries   []entrySchema    `toml:"entries"`
	Reminders []reminderSchema `toml:"reminders"`
}

func (s *journalSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s journalSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID          string  `toml:"id"`
	RitualID    string  `toml:"ritual_id"`
	UserID      string  `toml:"user_id"`
	CompletedAt string  `toml:"completed_at"`
	Rating      *int    `toml:"rating,omitempty"`
	Notes       *string `toml:"notes,omitempty"`
}

type entrySchema struct {
	ID        string   `toml:"id"`
	UserID    string   `toml:"user_id"`
	CreatedAt string   `toml:"created_at"`
	Type      string   `toml:"type"`
	Text      string   `toml:"text,omitempty"`
	Mood      string   `toml:"mood,omitempty"`
	VoiceURL  string   `toml:"voice_url,omitempty"`
	Summary   string   `toml:"summary,omitempty"`
	Tags      []string `toml:"tags,omitempty"`
	Insights  []string `toml:"insights,omitempty"`
}

type reminderSchema struct {
	ID          string `toml:"id"`
	UserID      string `toml:"user_id"`
	Type        string `toml:"type"`
	Frequency   string `toml:"frequency"`
	CustomHours []int  `toml:"custom_hours,omitempty"`
	Message     string `toml:"message"`
	Enabled     bool   `toml:"enabled"`
	LastSent    string `toml:"last_sent,omitempty"`
}

func toSessionSchema(session domain.RitualSession) sessionSchema {
	return sessionSchema{
		ID:          session.ID,
		RitualID:    session.RitualID,
		UserID:      session.UserID,
		CompletedAt: formatTime(session.CompletedAt),
		Rating:      session.Rating,
		Notes:       session.Notes,
	}
}

func fromSessionSchema(session sessionSchema) (domain.RitualSession, error) {
	completedAt, err := parseTime("completed_at", session.CompletedAt)
	if err != nil {
		return domain.RitualSession{}, fmt.Errorf("session %s: %w", session.ID, err)
	}

	return domain.RitualSession{
		ID:          session.ID,
		RitualID:    session.RitualID,
		UserID:      session.UserID,
		CompletedAt: completedAt,
		Rating:      session.Rating,
		Notes:       session.Notes,
	}, nil
}

func toEntrySchema(entry domain.Entry) entrySchema {
	return entrySchema{
		ID:        entry.ID,
		UserID:    entry.UserID,
		CreatedAt: formatTime(entry.CreatedAt),
		Type:      string(entry.Type),
		Text:      entry.Text,
		Mood:      entry.Mood,
		VoiceURL:  entry.VoiceURL,
		Summary:   entry.Summary,
		Tags:      entry.Tags,
		Insights:  entry.Insights,
	}
}

func fromEntrySchema(entry entrySchema) (domain.Entry, error) {
	createdAt, err := parseTime("created_at", entry.CreatedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("entry %s: %w", entry.ID, err)
	}

	return domain.Entry{
		ID:        entry.ID,
		UserID:    entry.UserID,
		CreatedAt: createdAt,
		Type:      domain.EntryType(entry.Type),
		Text:      entry.Text,
		Mood:      entry.Mood,
		VoiceURL:  entry.VoiceURL,
		Summary:   entry.Summary,
		Tags:      entry.Tags,
		Insights:  entry.Insights,
	}, nil
}

func toReminderSchema(reminder domain.ReminderPreference) reminderSchema {
	return reminderSchema{
		ID:          reminder.ID,
		UserID:      reminder.UserID,
		Type:        string(reminder.Type),
		Frequency:   string(reminder.Frequency),
		CustomHours: reminder.CustomHours,
		Message:     reminder.Message,
		Enabled:     reminder.Enabled,
		LastSent:    formatTime(reminder.LastSent),
	}
}

func fromReminderSchema(reminder reminderSchema) (domain.ReminderPreference, error) {
	lastSent, err := parseTime("last_sent", reminder.LastSent)
	if err != nil {
		return domain.ReminderPreference{}, fmt.Errorf("reminder %s: %w", reminder.ID, err)
	}

	return domain.ReminderPreference{
		ID:          reminder.ID,
		UserID:      reminder.UserID,
		Type:        domain.ReminderType(reminder.Type),
		Frequency:   domain.ReminderFrequency(reminder.Frequency),
		CustomHours: reminder.CustomHours,
		Message:     reminder.Message,
		Enabled:     reminder.Enabled,
		LastSent:    lastSent,
	}, nil
}
