package ports

import (
	"context"
	"errors"
)

// ErrSecretNotFound is returned by Get when no value is stored under the key.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore keeps credentials such as the hosted backend access token
// outside the journal file.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
