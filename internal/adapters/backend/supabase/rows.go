package supabase

import (
	"time"

	"github.com/bnema/dreamlog/internal/domain"
)

type sessionRow struct {
	ID          string    `json:"id"`
	RitualID    string    `json:"ritual_id"`
	UserID      string    `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
	Rating      *int      `json:"rating"`
	Notes       *string   `json:"notes"`
}

func toSessionRow(session domain.RitualSession) sessionRow {
	return sessionRow{
		ID:          session.ID,
		RitualID:    session.RitualID,
		UserID:      session.UserID,
		CompletedAt: session.CompletedAt.UTC(),
		Rating:      session.Rating,
		Notes:       session.Notes,
	}
}

func (r sessionRow) toDomain() domain.RitualSession {
	return domain.RitualSession{
		ID:          r.ID,
		RitualID:    r.RitualID,
		UserID:      r.UserID,
		CompletedAt: r.CompletedAt,
		Rating:      r.Rating,
		Notes:       r.Notes,
	}
}

type entryRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Text      *string   `json:"text"`
	Mood      *string   `json:"mood"`
	VoiceURL  *string   `json:"voice_url"`
	Summary   *string   `json:"summary"`
	Tags      []string  `json:"tags"`
	Insights  []string  `json:"insights"`
}

func toEntryRow(entry domain.Entry) entryRow {
	return entryRow{
		ID:        entry.ID,
		UserID:    entry.UserID,
		CreatedAt: entry.CreatedAt.UTC(),
		Type:      string(entry.Type),
		Text:      nullable(entry.Text),
		Mood:      nullable(entry.Mood),
		VoiceURL:  nullable(entry.VoiceURL),
		Summary:   nullable(entry.Summary),
		Tags:      entry.Tags,
		Insights:  entry.Insights,
	}
}

func (r entryRow) toDomain() domain.Entry {
	return domain.Entry{
		ID:        r.ID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		Type:      domain.EntryType(r.Type),
		Text:      deref(r.Text),
		Mood:      deref(r.Mood),
		VoiceURL:  deref(r.VoiceURL),
		Summary:   deref(r.Summary),
		Tags:      r.Tags,
		Insights:  r.Insights,
	}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
