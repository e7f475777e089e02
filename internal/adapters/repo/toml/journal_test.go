package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T, path string) *Journal {
	t.Helper()

	config := viper.New()
	config.Set(JournalPathKey, path)

	journal, err := NewJournal(config)
	require.NoError(t, err)
	return journal
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	journal := newTestJournal(t, filepath.Join(t.TempDir(), "journal.toml"))
	sessions := journal.Sessions()

	rating := 5
	notes := "counted seven fingers"
	completedAt := time.Date(2026, 3, 10, 7, 30, 15, 250, time.UTC)
	first := domain.RitualSession{
		ID:          "s1",
		RitualID:    "reality-check-hands",
		UserID:      "u1",
		CompletedAt: completedAt,
		Rating:      &rating,
		Notes:       &notes,
	}
	second := domain.RitualSession{ID: "s2", RitualID: "mild-technique", UserID: "u1", CompletedAt: completedAt.Add(time.Hour)}
	other := domain.RitualSession{ID: "s3", RitualID: "mild-technique", UserID: "u2", CompletedAt: completedAt}

	require.NoError(t, sessions.Append(context.Background(), first))
	require.NoError(t, sessions.Append(context.Background(), second))
	require.NoError(t, sessions.Append(context.Background(), other))

	got, err := sessions.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.RitualSession{first, second}, got)
}

func TestSessionRepositoryFailedWriteKeepsPriorSessions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	journal := newTestJournal(t, filepath.Join(dir, "journal.toml"))
	sessions := journal.Sessions()

	kept := domain.RitualSession{ID: "s1", RitualID: "reality-check-hands", UserID: "u1", CompletedAt: time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)}
	require.NoError(t, sessions.Append(context.Background(), kept))

	renameErr := errors.New("device busy")
	journal.rename = func(string, string) error { return renameErr }

	err := sessions.Append(context.Background(), domain.RitualSession{ID: "s2", RitualID: "mild-technique", UserID: "u1"})
	require.ErrorIs(t, err, renameErr)
	assert.ErrorContains(t, err, "replace journal file")

	journal.rename = os.Rename
	got, err := sessions.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.RitualSession{kept}, got)

	leftovers, err := filepath.Glob(filepath.Join(dir, ".journal-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestEntryRepositoryFiltersByUserAndType(t *testing.T) {
	t.Parallel()

	journal := newTestJournal(t, filepath.Join(t.TempDir(), "journal.toml"))
	entries := journal.Entries()
	createdAt := time.Date(2026, 3, 10, 6, 45, 0, 0, time.UTC)

	dream := domain.Entry{
		ID:        "e1",
		UserID:    "u1",
		CreatedAt: createdAt,
		Type:      domain.EntryTypeDream,
		Text:      "falling into the river, terrified",
		Summary:   "This dream features themes of falling, water with emotional undertones of fear.",
		Tags:      []string{"falling", "water", "fear"},
		Insights:  []string{"Water in dreams often relates to emotions and the unconscious mind."},
	}
	mood := domain.Entry{
		ID:        "e2",
		UserID:    "u1",
		CreatedAt: createdAt.Add(time.Hour),
		Type:      domain.EntryTypeEmotion,
		Mood:      "rested",
		Tags:      []string{"sleep"},
	}
	foreign := domain.Entry{ID: "e3", UserID: "u2", CreatedAt: createdAt, Type: domain.EntryTypeDream, Text: "flying"}

	for _, entry := range []domain.Entry{dream, mood, foreign} {
		require.NoError(t, entries.Insert(context.Background(), entry))
	}

	all, err := entries.ListByUser(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{dream, mood}, all)

	dreams, err := entries.ListByUser(context.Background(), "u1", domain.EntryTypeDream)
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{dream}, dreams)

	moods, err := entries.ListByUser(context.Background(), "u2", domain.EntryTypeEmotion)
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestReminderRepositorySaveUpdatesAndDeletes(t *testing.T) {
	t.Parallel()

	journal := newTestJournal(t, filepath.Join(t.TempDir(), "journal.toml"))
	reminders := journal.Reminders()

	reminder := domain.ReminderPreference{
		ID:          "r1",
		UserID:      "u1",
		Type:        domain.ReminderTypeRealityCheck,
		Frequency:   domain.ReminderFrequencyCustom,
		CustomHours: []int{9, 13, 18},
		Message:     "Are you dreaming?",
		Enabled:     true,
	}
	require.NoError(t, reminders.Save(context.Background(), reminder))

	reminder.Enabled = false
	reminder.LastSent = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, reminders.Save(context.Background(), reminder))

	got, err := reminders.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.ReminderPreference{reminder}, got)

	err = reminders.Delete(context.Background(), "u2", "r1")
	require.ErrorIs(t, err, domain.ErrReminderNotFound)

	require.NoError(t, reminders.Delete(context.Background(), "u1", "r1"))
	got, err = reminders.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJournalSharesOneFileAcrossRepositories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.toml")
	journal := newTestJournal(t, path)

	require.NoError(t, journal.Sessions().Append(context.Background(), domain.RitualSession{ID: "s1", RitualID: "wake-back-bed", UserID: "u1"}))
	require.NoError(t, journal.Entries().Insert(context.Background(), domain.Entry{ID: "e1", UserID: "u1", Type: domain.EntryTypeEmotion, Mood: "calm"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "version = 1")
	assert.Contains(t, content, "[[sessions]]")
	assert.Contains(t, content, "[[entries]]")
	assert.Contains(t, content, "wake-back-bed")
}

func TestNewJournalUsesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	journal, err := NewJournal(viper.New())
	require.NoError(t, err)

	require.NoError(t, journal.Sessions().Append(context.Background(), domain.RitualSession{ID: "s1", RitualID: "mild-technique", UserID: "u1"}))

	path := filepath.Join(homeDir, ".dreamlog", "journal.toml")
	assert.Equal(t, path, journal.Path())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestJournalMissingFileListsNothing(t *testing.T) {
	t.Parallel()

	journal := newTestJournal(t, filepath.Join(t.TempDir(), "missing", "journal.toml"))

	sessions, err := journal.Sessions().ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, sessions)

	err = journal.Reminders().Delete(context.Background(), "u1", "r1")
	require.ErrorIs(t, err, domain.ErrReminderNotFound)
}

func TestJournalMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, os.WriteFile(path, []byte("sessions = ["), 0o600))

	_, err := newTestJournal(t, path).Sessions().ListByUser(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode journal file")
}

func TestJournalMalformedTimestampsReturnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		list    func(*Journal) error
		want    string
	}{
		{
			name: "session completed_at",
			content: strings.Join([]string{
				"version = 1",
				"",
				"[[sessions]]",
				`id = "s1"`,
				`ritual_id = "reality-check-hands"`,
				`user_id = "u1"`,
				`completed_at = "yesterday-ish"`,
				"",
			}, "\n"),
			list: func(j *Journal) error {
				_, err := j.Sessions().ListByUser(context.Background(), "u1")
				return err
			},
			want: `invalid completed_at "yesterday-ish"`,
		},
		{
			name: "entry created_at",
			content: strings.Join([]string{
				"version = 1",
				"",
				"[[entries]]",
				`id = "e1"`,
				`user_id = "u1"`,
				`created_at = "last night"`,
				`type = "dream"`,
				"",
			}, "\n"),
			list: func(j *Journal) error {
				_, err := j.Entries().ListByUser(context.Background(), "u1", "")
				return err
			},
			want: `invalid created_at "last night"`,
		},
		{
			name: "reminder last_sent",
			content: strings.Join([]string{
				"version = 1",
				"",
				"[[reminders]]",
				`id = "r1"`,
				`user_id = "u1"`,
				`type = "reality_check"`,
				`frequency = "daily"`,
				`message = "check"`,
				"enabled = true",
				`last_sent = "2024-13-45"`,
				"",
			}, "\n"),
			list: func(j *Journal) error {
				_, err := j.Reminders().ListByUser(context.Background(), "u1")
				return err
			},
			want: `invalid last_sent "2024-13-45"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "journal.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			err := tt.list(newTestJournal(t, path))
			require.Error(t, err)
			assert.ErrorContains(t, err, "decode journal file")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestJournalMalformedTimestampOfOtherUserIsIgnored(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[sessions]]",
		`id = "s1"`,
		`ritual_id = "reality-check-hands"`,
		`user_id = "u2"`,
		`completed_at = "yesterday-ish"`,
		"",
	}, "\n")), 0o600))

	sessions, err := newTestJournal(t, path).Sessions().ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestJournalFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
		"sessions = []",
		"",
	}, "\n")), 0o600))

	_, err := newTestJournal(t, path).Entries().ListByUser(context.Background(), "u1", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported journal schema version")
}

func TestJournalCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	journal := newTestJournal(t, filepath.Join(t.TempDir(), "journal.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := journal.Sessions().Append(ctx, domain.RitualSession{ID: "s1", UserID: "u1"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestJournalConcurrentAppendsAcrossInstancesPreserveAllSessions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.toml")
	repoA := newTestJournal(t, path).Sessions()
	repoB := newTestJournal(t, path).Sessions()

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *SessionRepository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Append(context.Background(), domain.RitualSession{ID: prefix + strconv.Itoa(i), RitualID: "reality-check-hands", UserID: "u1"})
		}
	}

	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	sessions, err := repoA.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, sessions, perRepoWrites*2)
}
