package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/ports"
	supabasego "github.com/supabase-community/supabase-go"
)

// AccessTokenKey is where the signed-in user's JWT lives in the secret store.
const AccessTokenKey = "supabase/access_token"

var _ ports.Identity = (*Identity)(nil)

// Identity resolves the current user from the stored access token through
// the auth API.
type Identity struct {
	client  *supabasego.Client
	secrets ports.SecretStore
}

func NewIdentity(client *supabasego.Client, secrets ports.SecretStore) *Identity {
	return &Identity{client: client, secrets: secrets}
}

func (i *Identity) CurrentUserID(ctx context.Context) (string, error) {
	token, err := i.secrets.Get(ctx, AccessTokenKey)
	if err != nil {
		if errors.Is(err, ports.ErrSecretNotFound) {
			return "", domain.ErrAuthenticationRequired
		}
		return "", fmt.Errorf("load access token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrAuthenticationRequired
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	user, err := i.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthenticationRequired, err)
	}

	return user.ID.String(), nil
}
