package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/dreamlog/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeDirMode        = 0o700
	credentialsFileMode = 0o600
	tempFilePattern     = ".credentials-*.toml.tmp"
)

type credentialsFile struct {
	Secrets map[string]string `toml:"secrets"`
}

// Store keeps secrets in a single TOML credentials file readable only by
// the owner.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.read()
	if err != nil {
		return err
	}
	creds.Secrets[key] = value

	return s.write(creds)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := creds.Secrets[key]
	if !ok {
		return "", fmt.Errorf("credentials file %q: %w", key, ports.ErrSecretNotFound)
	}

	return value, nil
}

// Delete is a no-op for keys that are not stored.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := creds.Secrets[key]; !ok {
		return nil
	}
	delete(creds.Secrets, key)

	return s.write(creds)
}

func (s *Store) read() (credentialsFile, error) {
	creds := credentialsFile{Secrets: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return creds, nil
		}
		return credentialsFile{}, fmt.Errorf("read credentials file: %w", err)
	}

	if err := toml.Unmarshal(data, &creds); err != nil {
		return credentialsFile{}, fmt.Errorf("decode credentials file: %w", err)
	}
	if creds.Secrets == nil {
		creds.Secrets = map[string]string{}
	}

	return creds, nil
}

func (s *Store) write(creds credentialsFile) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	data, err := toml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}
	tempName := tempFile.Name()
	defer func() { _ = os.Remove(tempName) }()

	if err := tempFile.Chmod(credentialsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credentials file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credentials file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credentials file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}

	return nil
}

func normalizeKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}
	if strings.ContainsAny(trimmed, "\n\r") {
		return "", fmt.Errorf("invalid secret key %q", key)
	}

	return trimmed, nil
}
