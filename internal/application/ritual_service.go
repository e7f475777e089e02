package application

import (
	"context"
	"time"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/logging"
	"github.com/bnema/dreamlog/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const quickRitualMaxDuration = 5 * time.Minute

type RitualService struct {
	catalog  []domain.Ritual
	sessions ports.SessionRepository
	clock    ports.Clock
	newID    func() string
	logger   *zap.Logger
}

func NewRitualService(catalog []domain.Ritual, sessions ports.SessionRepository, clock ports.Clock, logger *zap.Logger) *RitualService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &RitualService{
		catalog:  catalog,
		sessions: sessions,
		clock:    clock,
		newID:    uuid.NewString,
		logger:   logging.OrNop(logger),
	}
}

func (s *RitualService) ListAll() []domain.Ritual {
	return s.filter(func(domain.Ritual) bool { return true })
}

func (s *RitualService) ListByCategory(category domain.RitualCategory) []domain.Ritual {
	return s.filter(func(r domain.Ritual) bool { return r.Category == category })
}

func (s *RitualService) ListByDifficulty(difficulty domain.Difficulty) []domain.Ritual {
	return s.filter(func(r domain.Ritual) bool { return r.Difficulty == difficulty })
}

func (s *RitualService) BeginnerRituals() []domain.Ritual {
	return s.ListByDifficulty(domain.DifficultyBeginner)
}

func (s *RitualService) QuickRituals() []domain.Ritual {
	return s.filter(func(r domain.Ritual) bool { return r.DurationTime() <= quickRitualMaxDuration })
}

func (s *RitualService) GetByID(id string) (domain.Ritual, error) {
	for _, ritual := range s.catalog {
		if ritual.ID == id {
			return ritual, nil
		}
	}

	return domain.Ritual{}, domain.ErrRitualNotFound
}

func (s *RitualService) filter(keep func(domain.Ritual) bool) []domain.Ritual {
	rituals := make([]domain.Ritual, 0, len(s.catalog))
	for _, ritual := range s.catalog {
		if keep(ritual) {
			rituals = append(rituals, ritual)
		}
	}
	return rituals
}

// RecordCompletion appends a session stamped with the current time. The
// ritual id is stored as given, even when the catalog does not know it.
func (s *RitualService) RecordCompletion(ctx context.Context, cmd RecordCompletionCommand) (domain.RitualSession, error) {
	if err := requireUser(cmd.UserID); err != nil {
		return domain.RitualSession{}, err
	}

	session := domain.RitualSession{
		ID:          s.newID(),
		RitualID:    cmd.RitualID,
		UserID:      cmd.UserID,
		CompletedAt: s.clock.Now(),
		Rating:      cmd.Rating,
		Notes:       cmd.Notes,
	}

	if err := s.sessions.Append(ctx, session); err != nil {
		s.logger.Warn("append ritual session failed",
			zap.String("user_id", cmd.UserID),
			zap.String("ritual_id", cmd.RitualID),
			zap.Error(err),
		)
		return domain.RitualSession{}, storageError("append ritual session", err)
	}

	s.logger.Info("ritual completed",
		zap.String("user_id", session.UserID),
		zap.String("ritual_id", session.RitualID),
		zap.String("session_id", session.ID),
	)

	return session, nil
}

func (s *RitualService) SessionsForUser(ctx context.Context, userID string) ([]domain.RitualSession, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageError("list ritual sessions", err)
	}

	return sessions, nil
}

func (s *RitualService) TodaysSessionsForUser(ctx context.Context, userID string) ([]domain.RitualSession, error) {
	sessions, err := s.SessionsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.todays(sessions), nil
}

// CompletedTodayIDs returns the distinct ritual ids completed today in first
// completion order.
func (s *RitualService) CompletedTodayIDs(ctx context.Context, userID string) ([]string, error) {
	today, err := s.TodaysSessionsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return distinctRitualIDs(today), nil
}

// CategoryCounts has a key for every category. Sessions whose ritual is no
// longer in the catalog are skipped.
func (s *RitualService) CategoryCounts(ctx context.Context, userID string) (map[domain.RitualCategory]int, error) {
	sessions, err := s.SessionsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.categoryCounts(sessions), nil
}

func (s *RitualService) Stats(ctx context.Context, userID string) (RitualStats, error) {
	sessions, err := s.SessionsForUser(ctx, userID)
	if err != nil {
		return RitualStats{}, err
	}

	today := s.todays(sessions)
	completedAt := make([]time.Time, 0, len(sessions))
	for _, session := range sessions {
		completedAt = append(completedAt, session.CompletedAt)
	}

	return RitualStats{
		Today:          len(today),
		Total:          len(sessions),
		ByCategory:     s.categoryCounts(sessions),
		CompletedToday: distinctRitualIDs(today),
		StreakDays:     domain.StreakDays(completedAt, s.clock.Now()),
	}, nil
}

func (s *RitualService) todays(sessions []domain.RitualSession) []domain.RitualSession {
	now := s.clock.Now()
	today := make([]domain.RitualSession, 0, len(sessions))
	for _, session := range sessions {
		if domain.SameDay(session.CompletedAt, now, now.Location()) {
			today = append(today, session)
		}
	}
	return today
}

func (s *RitualService) categoryCounts(sessions []domain.RitualSession) map[domain.RitualCategory]int {
	counts := make(map[domain.RitualCategory]int, len(domain.RitualCategories()))
	for _, category := range domain.RitualCategories() {
		counts[category] = 0
	}

	for _, session := range sessions {
		ritual, err := s.GetByID(session.RitualID)
		if err != nil {
			s.logger.Debug("skipping session for unknown ritual",
				zap.String("session_id", session.ID),
				zap.String("ritual_id", session.RitualID),
			)
			continue
		}
		counts[ritual.Category]++
	}

	return counts
}

func distinctRitualIDs(sessions []domain.RitualSession) []string {
	ids := make([]string, 0, len(sessions))
	seen := make(map[string]struct{}, len(sessions))
	for _, session := range sessions {
		if _, ok := seen[session.RitualID]; ok {
			continue
		}
		seen[session.RitualID] = struct{}{}
		ids = append(ids, session.RitualID)
	}
	return ids
}
