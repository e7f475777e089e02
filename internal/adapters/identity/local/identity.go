package local

import (
	"context"
	"strings"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/ports"
)

// Identity is the user configured for a single-user local journal.
type Identity struct {
	userID string
}

var _ ports.Identity = Identity{}

func NewIdentity(userID string) Identity {
	return Identity{userID: strings.TrimSpace(userID)}
}

func (i Identity) CurrentUserID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if i.userID == "" {
		return "", domain.ErrAuthenticationRequired
	}
	return i.userID, nil
}
