package application

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/logging"
	"github.com/bnema/dreamlog/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRecentEntriesLimit = 5
	DefaultTopTagsLimit       = 5
)

type JournalService struct {
	entries  ports.EntryRepository
	analyzer *AnalysisService
	clock    ports.Clock
	newID    func() string
	logger   *zap.Logger
}

func NewJournalService(entries ports.EntryRepository, analyzer *AnalysisService, clock ports.Clock, logger *zap.Logger) *JournalService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &JournalService{
		entries:  entries,
		analyzer: analyzer,
		clock:    clock,
		newID:    uuid.NewString,
		logger:   logging.OrNop(logger),
	}
}

// AddDreamEntry analyzes the text and stores it with the analysis cached on
// the entry.
func (s *JournalService) AddDreamEntry(ctx context.Context, cmd AddDreamEntryCommand) (domain.Entry, domain.DreamAnalysisResult, error) {
	if err := requireUser(cmd.UserID); err != nil {
		return domain.Entry{}, domain.DreamAnalysisResult{}, err
	}
	if strings.TrimSpace(cmd.Text) == "" {
		return domain.Entry{}, domain.DreamAnalysisResult{}, fmt.Errorf("%w: dream text is required", domain.ErrEmptyEntry)
	}

	analysis := s.analyzer.Analyze(cmd.Text)
	entry := domain.Entry{
		ID:        s.newID(),
		UserID:    cmd.UserID,
		CreatedAt: s.clock.Now(),
		Type:      domain.EntryTypeDream,
		Text:      cmd.Text,
		VoiceURL:  cmd.VoiceURL,
		Summary:   analysis.Summary,
		Tags:      analysis.Tags(),
		Insights:  analysis.Insights,
	}

	if err := s.entries.Insert(ctx, entry); err != nil {
		return domain.Entry{}, domain.DreamAnalysisResult{}, storageError("insert dream entry", err)
	}

	s.logger.Info("dream entry saved", zap.String("user_id", entry.UserID), zap.String("entry_id", entry.ID))

	return entry, analysis, nil
}

func (s *JournalService) AddEmotionEntry(ctx context.Context, cmd AddEmotionEntryCommand) (domain.Entry, error) {
	if err := requireUser(cmd.UserID); err != nil {
		return domain.Entry{}, err
	}
	mood := strings.TrimSpace(cmd.Mood)
	if mood == "" {
		return domain.Entry{}, fmt.Errorf("%w: mood is required", domain.ErrEmptyEntry)
	}

	entry := domain.Entry{
		ID:        s.newID(),
		UserID:    cmd.UserID,
		CreatedAt: s.clock.Now(),
		Type:      domain.EntryTypeEmotion,
		Mood:      mood,
		Text:      strings.TrimSpace(cmd.Text),
		Tags:      domain.NormalizeTags(cmd.Tags),
	}

	if err := s.entries.Insert(ctx, entry); err != nil {
		return domain.Entry{}, storageError("insert emotion entry", err)
	}

	s.logger.Info("mood entry saved", zap.String("user_id", entry.UserID), zap.String("entry_id", entry.ID))

	return entry, nil
}

func (s *JournalService) Entries(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByUser(ctx, userID, entryType)
	if err != nil {
		return nil, storageError("list entries", err)
	}

	return entries, nil
}

// RecentEntries returns entries of every type, newest first.
func (s *JournalService) RecentEntries(ctx context.Context, userID string, limit int) ([]domain.Entry, error) {
	return s.RecentEntriesOfType(ctx, userID, "", limit)
}

// RecentEntriesOfType is RecentEntries restricted to one entry type. An
// empty type matches every entry.
func (s *JournalService) RecentEntriesOfType(ctx context.Context, userID string, entryType domain.EntryType, limit int) ([]domain.Entry, error) {
	entries, err := s.Entries(ctx, userID, entryType)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentEntriesLimit
	}

	slices.SortStableFunc(entries, func(a, b domain.Entry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

func (s *JournalService) EntryByID(ctx context.Context, userID, id string) (domain.Entry, error) {
	entries, err := s.Entries(ctx, userID, "")
	if err != nil {
		return domain.Entry{}, err
	}

	idx := slices.IndexFunc(entries, func(e domain.Entry) bool { return e.ID == id })
	if idx < 0 {
		return domain.Entry{}, domain.ErrEntryNotFound
	}

	return entries[idx], nil
}

// TopTags ranks tags by frequency across all entries. Ties keep the order
// in which tags first appeared.
func (s *JournalService) TopTags(ctx context.Context, userID string, limit int) ([]TagCount, error) {
	entries, err := s.Entries(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopTagsLimit
	}

	counts := make([]TagCount, 0)
	index := make(map[string]int)
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b TagCount) int {
		return b.Count - a.Count
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}

	return counts, nil
}

func (s *JournalService) StreakDays(ctx context.Context, userID string) (int, error) {
	entries, err := s.Entries(ctx, userID, "")
	if err != nil {
		return 0, err
	}

	createdAt := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		createdAt = append(createdAt, entry.CreatedAt)
	}

	return domain.StreakDays(createdAt, s.clock.Now()), nil
}
