package ports

import "context"

// Identity resolves the signed-in user. Implementations return
// domain.ErrAuthenticationRequired when nobody is signed in.
type Identity interface {
	CurrentUserID(ctx context.Context) (string, error)
}
