package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/dreamlog/internal/adapters/secrets/file"
	passstore "github.com/bnema/dreamlog/internal/adapters/secrets/pass"
	"github.com/bnema/dreamlog/internal/logging"
	"github.com/bnema/dreamlog/internal/ports"
	"go.uber.org/zap"
)

// Store reads and writes through a primary store and falls back to a second
// one when the primary fails. Deletes go to both.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   *zap.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, logger *zap.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: logging.OrNop(logger)}, nil
}

// NewPassFirstWithFileFallback prefers the password-store and keeps a
// credentials file for machines without pass.
func NewPassFirstWithFileFallback(credentialsPath string, logger *zap.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(passstore.DefaultPrefix), filestore.NewStore(credentialsPath), logger)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}
	s.logFallback("put", key, err)

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary secret store put: %w; fallback secret store put: %w", err, fallbackErr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}
	s.logFallback("get", key, err)

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr != nil {
		return "", fmt.Errorf("primary secret store get: %w; fallback secret store get: %w", err, fallbackErr)
	}

	return value, nil
}

// Delete removes the key from both stores so a value written by an earlier
// fallback does not survive a logout.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if isContextError(primaryErr) {
		return primaryErr
	}

	fallbackErr := s.fallback.Delete(ctx, key)

	if primaryErr == nil || fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary secret store delete: %w; fallback secret store delete: %w", primaryErr, fallbackErr)
}

func (s *Store) logFallback(op, key string, err error) {
	s.logger.Debug("secret store falling back",
		zap.String("op", op),
		zap.String("key", key),
		zap.Bool("primary_unavailable", errors.Is(err, passstore.ErrUnavailable)),
		zap.Error(err),
	)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
