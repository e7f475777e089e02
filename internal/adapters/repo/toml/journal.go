package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	JournalPathKey    = "journal.path"
	journalFileMode   = 0o600
	journalDirMode    = 0o700
	journalConfigDir  = ".dreamlog"
	journalConfigFile = "journal.toml"
	tempFilePattern   = ".journal-*.toml.tmp"
)

// Journal is the local journal file. Sessions, entries and reminders share
// one file and one lock; each repository view reads and rewrites the whole
// document.
type Journal struct {
	path   string
	mu     *sync.RWMutex
	rename func(oldpath, newpath string) error
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewJournal(cfg *viper.Viper) (*Journal, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(JournalPathKey)
	if path == "" {
		defaultPath, err := DefaultJournalPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	path, err := normalizeJournalPath(path)
	if err != nil {
		return nil, err
	}

	return &Journal{path: path, mu: lockForPath(path), rename: os.Rename}, nil
}

func DefaultJournalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, journalConfigDir, journalConfigFile), nil
}

func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) Sessions() *SessionRepository {
	return &SessionRepository{journal: j}
}

func (j *Journal) Entries() *EntryRepository {
	return &EntryRepository{journal: j}
}

func (j *Journal) Reminders() *ReminderRepository {
	return &ReminderRepository{journal: j}
}

func (j *Journal) view(ctx context.Context, read func(file journalSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	file, err := j.readSchema()
	if err != nil {
		return err
	}

	return read(file)
}

// update runs mutate against the current document and replaces the file only
// when mutate succeeds.
func (j *Journal) update(ctx context.Context, mutate func(file *journalSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := j.readSchema()
	if err != nil {
		return err
	}

	if err := mutate(&file); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return j.writeSchema(file)
}

func (j *Journal) readSchema() (journalSchema, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := journalSchema{}
			file.applyDefaults()
			return file, nil
		}
		return journalSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var file journalSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return journalSchema{}, fmt.Errorf("decode journal file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return journalSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (j *Journal) writeSchema(file journalSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(j.path), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode journal file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(j.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}

	if err := tempFile.Chmod(journalFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}

	if err := j.rename(tempName, j.path); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(j.path, journalFileMode); err != nil {
		return fmt.Errorf("chmod journal file: %w", err)
	}

	return nil
}

func normalizeJournalPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve journal path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// parseTime reads an RFC 3339 timestamp. An empty value is the zero time.
func parseTime(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}

	return parsed, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}
