package application

import (
	"time"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/logging"
	"go.uber.org/zap"
)

// DefaultAnalysisDelay models the latency of a remote analysis call.
const DefaultAnalysisDelay = time.Second

type AnalysisService struct {
	taxonomy domain.DreamTaxonomy
	delay    time.Duration
	logger   *zap.Logger
}

func NewAnalysisService(taxonomy domain.DreamTaxonomy, delay time.Duration, logger *zap.Logger) *AnalysisService {
	if delay < 0 {
		delay = 0
	}

	return &AnalysisService{
		taxonomy: taxonomy,
		delay:    delay,
		logger:   logging.OrNop(logger),
	}
}

func (s *AnalysisService) Analyze(text string) domain.DreamAnalysisResult {
	result := domain.AnalyzeDream(text, s.taxonomy)
	s.logger.Debug("dream analyzed",
		zap.Int("themes", len(result.Themes)),
		zap.Int("emotions", len(result.Emotions)),
		zap.Bool("lucid", result.IsLucid()),
	)
	return result
}

// AnalyzeAsync delivers the same result as Analyze after the configured
// delay. The channel is buffered so an abandoned receiver does not leak the
// goroutine. The delay cannot be cancelled.
func (s *AnalysisService) AnalyzeAsync(text string) <-chan domain.DreamAnalysisResult {
	out := make(chan domain.DreamAnalysisResult, 1)

	go func() {
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		out <- s.Analyze(text)
		close(out)
	}()

	return out
}
