package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJournalServiceAddDreamEntryCachesAnalysis(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 7, 15, 0, 0, time.UTC)
	repo := &inMemoryEntryRepo{}
	svc := newTestJournalService(repo, now)

	entry, analysis, err := svc.AddDreamEntry(context.Background(), AddDreamEntryCommand{
		UserID: "u1",
		Text:   "falling into the river, terrified",
	})
	require.NoError(t, err)

	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, domain.EntryTypeDream, entry.Type)
	assert.Equal(t, now, entry.CreatedAt)
	assert.Equal(t, []string{"falling", "water", "fear"}, entry.Tags)
	assert.Equal(t, analysis.Summary, entry.Summary)
	assert.Equal(t, analysis.Insights, entry.Insights)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, entry, repo.entries[0])
}

func TestJournalServiceAddDreamEntryRejectsBlankText(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockEntryRepository(t)
	svc := NewJournalService(repo, NewAnalysisService(domain.DefaultDreamTaxonomy(), 0, nil), nil, nil)

	_, _, err := svc.AddDreamEntry(context.Background(), AddDreamEntryCommand{UserID: "u1", Text: "  "})
	require.ErrorIs(t, err, domain.ErrEmptyEntry)
}

func TestJournalServiceAddDreamEntryRequiresUser(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockEntryRepository(t)
	svc := NewJournalService(repo, NewAnalysisService(domain.DefaultDreamTaxonomy(), 0, nil), nil, nil)

	_, _, err := svc.AddDreamEntry(context.Background(), AddDreamEntryCommand{Text: "flying"})
	require.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestJournalServiceAddDreamEntryWrapsInsertFailure(t *testing.T) {
	t.Parallel()

	insertErr := errors.New("connection reset")
	repo := mocks.NewMockEntryRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("domain.Entry")).Return(insertErr)
	svc := NewJournalService(repo, NewAnalysisService(domain.DefaultDreamTaxonomy(), 0, nil), nil, nil)

	_, _, err := svc.AddDreamEntry(context.Background(), AddDreamEntryCommand{UserID: "u1", Text: "flying"})
	require.ErrorIs(t, err, domain.ErrStorage)
	require.ErrorIs(t, err, insertErr)
}

func TestJournalServiceAddEmotionEntryNormalizesTags(t *testing.T) {
	t.Parallel()

	repo := &inMemoryEntryRepo{}
	svc := newTestJournalService(repo, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	entry, err := svc.AddEmotionEntry(context.Background(), AddEmotionEntryCommand{
		UserID: "u1",
		Mood:   " anxious ",
		Text:   "big meeting today ",
		Tags:   []string{"Work", " work", "", "sleep"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.EntryTypeEmotion, entry.Type)
	assert.Equal(t, "anxious", entry.Mood)
	assert.Equal(t, "big meeting today", entry.Text)
	assert.Equal(t, []string{"work", "sleep"}, entry.Tags)
}

func TestJournalServiceAddEmotionEntryRequiresMood(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockEntryRepository(t)
	svc := NewJournalService(repo, nil, nil, nil)

	_, err := svc.AddEmotionEntry(context.Background(), AddEmotionEntryCommand{UserID: "u1"})
	require.ErrorIs(t, err, domain.ErrEmptyEntry)
}

func TestJournalServiceEntriesFiltersByType(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockEntryRepository(t)
	dreams := []domain.Entry{{ID: "d1", UserID: "u1", Type: domain.EntryTypeDream}}
	repo.EXPECT().ListByUser(mock.Anything, "u1", domain.EntryTypeDream).Return(dreams, nil)
	svc := NewJournalService(repo, nil, nil, nil)

	got, err := svc.Entries(context.Background(), "u1", domain.EntryTypeDream)
	require.NoError(t, err)
	assert.Equal(t, dreams, got)
}

func TestJournalServiceRecentEntriesNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := &inMemoryEntryRepo{}
	for i := range 7 {
		repo.entries = append(repo.entries, domain.Entry{
			ID:        fmt.Sprintf("e%d", i),
			UserID:    "u1",
			Type:      domain.EntryTypeDream,
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	repo.entries = append(repo.entries, domain.Entry{ID: "other", UserID: "u2", CreatedAt: base.AddDate(1, 0, 0)})
	svc := newTestJournalService(repo, base)

	recent, err := svc.RecentEntries(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"e6", "e5", "e4", "e3", "e2"}, entryIDs(recent))

	recent, err = svc.RecentEntries(context.Background(), "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"e6", "e5"}, entryIDs(recent))
}

func TestJournalServiceRecentEntriesOfType(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := &inMemoryEntryRepo{entries: []domain.Entry{
		{ID: "d1", UserID: "u1", Type: domain.EntryTypeDream, CreatedAt: base},
		{ID: "m1", UserID: "u1", Type: domain.EntryTypeEmotion, CreatedAt: base.Add(time.Hour)},
		{ID: "d2", UserID: "u1", Type: domain.EntryTypeDream, CreatedAt: base.Add(2 * time.Hour)},
	}}
	svc := newTestJournalService(repo, base)

	dreams, err := svc.RecentEntriesOfType(context.Background(), "u1", domain.EntryTypeDream, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2", "d1"}, entryIDs(dreams))

	moods, err := svc.RecentEntriesOfType(context.Background(), "u1", domain.EntryTypeEmotion, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, entryIDs(moods))
}

func TestJournalServiceEntryByID(t *testing.T) {
	t.Parallel()

	repo := &inMemoryEntryRepo{entries: []domain.Entry{
		{ID: "e1", UserID: "u1", Type: domain.EntryTypeDream, Text: "flying"},
		{ID: "e2", UserID: "u2", Type: domain.EntryTypeDream, Text: "someone else"},
	}}
	svc := newTestJournalService(repo, time.Now())

	entry, err := svc.EntryByID(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, "flying", entry.Text)

	_, err = svc.EntryByID(context.Background(), "u1", "e2")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.NotErrorIs(t, err, domain.ErrStorage)

	_, err = svc.EntryByID(context.Background(), "", "e1")
	require.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestJournalServiceTopTags(t *testing.T) {
	t.Parallel()

	repo := &inMemoryEntryRepo{entries: []domain.Entry{
		{ID: "1", UserID: "u1", Tags: []string{"water", "fear"}},
		{ID: "2", UserID: "u1", Tags: []string{"flying", "water"}},
		{ID: "3", UserID: "u1", Tags: []string{"fear", "water", "work"}},
		{ID: "4", UserID: "u1"},
	}}
	svc := newTestJournalService(repo, time.Now())

	tags, err := svc.TopTags(context.Background(), "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, []TagCount{
		{Tag: "water", Count: 3},
		{Tag: "fear", Count: 2},
		{Tag: "flying", Count: 1},
	}, tags)
}

func TestJournalServiceStreakDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &inMemoryEntryRepo{entries: []domain.Entry{
		{ID: "1", UserID: "u1", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "2", UserID: "u1", CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "3", UserID: "u1", CreatedAt: now.AddDate(0, 0, -4)},
	}}
	svc := newTestJournalService(repo, now)

	streak, err := svc.StreakDays(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func newTestJournalService(repo *inMemoryEntryRepo, now time.Time) *JournalService {
	svc := NewJournalService(repo, NewAnalysisService(domain.DefaultDreamTaxonomy(), 0, nil), fixedClock{now: now}, nil)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	}
	return svc
}

func entryIDs(entries []domain.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

type inMemoryEntryRepo struct {
	entries []domain.Entry
}

func (r *inMemoryEntryRepo) Insert(_ context.Context, entry domain.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *inMemoryEntryRepo) ListByUser(_ context.Context, userID string, entryType domain.EntryType) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		if entryType != "" && entry.Type != entryType {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
