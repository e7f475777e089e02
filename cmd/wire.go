package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	supabasebackend "github.com/bnema/dreamlog/internal/adapters/backend/supabase"
	localidentity "github.com/bnema/dreamlog/internal/adapters/identity/local"
	analysisrender "github.com/bnema/dreamlog/internal/adapters/render/analysis"
	ritualrender "github.com/bnema/dreamlog/internal/adapters/render/rituals"
	tomlrepo "github.com/bnema/dreamlog/internal/adapters/repo/toml"
	chainstore "github.com/bnema/dreamlog/internal/adapters/secrets/chain"
	"github.com/bnema/dreamlog/internal/application"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/logging"
	"github.com/bnema/dreamlog/internal/ports"
	"github.com/spf13/viper"
	supabasego "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".dreamlog"
	credentialsFile = "credentials.toml"
	envPrefix       = "DREAMLOG"

	backendKey       = "backend"
	userIDKey        = "user.id"
	supabaseURLKey   = "supabase.url"
	supabaseKeyKey   = "supabase.key"
	analysisDelayKey = "analysis.delay"
	logLevelKey      = "log.level"
	logFormatKey     = "log.format"

	backendLocal    = "local"
	backendSupabase = "supabase"
	defaultUserID   = "local"
)

type app struct {
	config      *viper.Viper
	logger      *zap.Logger
	backend     string
	identity    ports.Identity
	secretStore ports.SecretStore
	analysis    *application.AnalysisService
	rituals     *application.RitualService
	journal     *application.JournalService
	reminders   *application.ReminderService

	analysisRenderer func(domain.DreamAnalysisResult) (string, error)
	catalogRenderer  func([]domain.Ritual, []string) (string, error)
	ritualRenderer   func(domain.Ritual) (string, error)
	sessionsRenderer func([]domain.RitualSession, []domain.Ritual, *time.Location) (string, error)
	statsRenderer    func(application.RitualStats) (string, error)
	now              func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := loadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.GetString(logLevelKey),
		Format: cfg.GetString(logFormatKey),
	}, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	journal, err := tomlrepo.NewJournal(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire journal: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, configDir, credentialsFile), logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	var (
		identity ports.Identity
		sessions ports.SessionRepository = journal.Sessions()
		entries  ports.EntryRepository   = journal.Entries()
	)

	backend := strings.ToLower(strings.TrimSpace(cfg.GetString(backendKey)))
	switch backend {
	case backendLocal:
		identity = localidentity.NewIdentity(cfg.GetString(userIDKey))
	case backendSupabase:
		client, err := newSupabaseClient(cfg, secretStore)
		if err != nil {
			return nil, fmt.Errorf("wire supabase backend: %w", err)
		}
		identity = supabasebackend.NewIdentity(client, secretStore)
		sessions = supabasebackend.NewSessionRepository(client)
		entries = supabasebackend.NewEntryRepository(client)
	default:
		return nil, fmt.Errorf("unsupported backend %q (expected %s or %s)", backend, backendLocal, backendSupabase)
	}

	analysis := application.NewAnalysisService(domain.DefaultDreamTaxonomy(), cfg.GetDuration(analysisDelayKey), logger)
	clock := ports.SystemClock{}

	logger.Debug("app wired",
		zap.String("backend", backend),
		zap.String("journal", journal.Path()),
	)

	return &app{
		config:           cfg,
		logger:           logger,
		backend:          backend,
		identity:         identity,
		secretStore:      secretStore,
		analysis:         analysis,
		rituals:          application.NewRitualService(domain.PredefinedRituals(), sessions, clock, logger),
		journal:          application.NewJournalService(entries, analysis, clock, logger),
		reminders:        application.NewReminderService(journal.Reminders(), logger),
		analysisRenderer: analysisrender.Render,
		catalogRenderer:  ritualrender.RenderCatalog,
		ritualRenderer:   ritualrender.RenderRitual,
		sessionsRenderer: ritualrender.RenderSessions,
		statsRenderer:    ritualrender.RenderStats,
		now:              time.Now,
	}, nil
}

func loadConfig(homeDir string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(tomlrepo.JournalPathKey, filepath.Join(homeDir, configDir, "journal.toml"))
	cfg.SetDefault(backendKey, backendLocal)
	cfg.SetDefault(userIDKey, defaultUserID)
	cfg.SetDefault(analysisDelayKey, application.DefaultAnalysisDelay)
	cfg.SetDefault(logLevelKey, logging.DefaultConfig().Level)
	cfg.SetDefault(logFormatKey, logging.DefaultConfig().Format)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

// newSupabaseClient signs table requests with the stored access token when
// there is one. Without it the identity lookup reports that login is needed.
func newSupabaseClient(cfg *viper.Viper, secrets ports.SecretStore) (*supabasego.Client, error) {
	token, err := secrets.Get(context.Background(), supabasebackend.AccessTokenKey)
	if err != nil && !errors.Is(err, ports.ErrSecretNotFound) {
		return nil, fmt.Errorf("load access token: %w", err)
	}

	return supabasebackend.NewClient(supabasebackend.Config{
		URL:         cfg.GetString(supabaseURLKey),
		Key:         cfg.GetString(supabaseKeyKey),
		AccessToken: token,
	})
}

// currentUser resolves the user id for commands that read or write journal
// data.
func (a *app) currentUser(ctx context.Context) (string, error) {
	userID, err := a.identity.CurrentUserID(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationRequired) {
			return "", fmt.Errorf("%w: run `dreamlog auth login` or set %s", err, userIDKey)
		}
		return "", err
	}
	return userID, nil
}
