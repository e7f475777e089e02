package supabase

import (
	"errors"
	"strings"

	supabasego "github.com/supabase-community/supabase-go"
)

const (
	sessionsTable = "ritual_sessions"
	entriesTable  = "entries"
)

var ErrMissingConfig = errors.New("supabase url and key are required")

type Config struct {
	URL string
	Key string
	// AccessToken is the signed-in user's JWT. When set, table requests run
	// as that user so row level security applies.
	AccessToken string
}

func NewClient(cfg Config) (*supabasego.Client, error) {
	url := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	key := strings.TrimSpace(cfg.Key)
	if url == "" || key == "" {
		return nil, ErrMissingConfig
	}

	var options *supabasego.ClientOptions
	if token := strings.TrimSpace(cfg.AccessToken); token != "" {
		options = &supabasego.ClientOptions{
			Headers: map[string]string{"Authorization": "Bearer " + token},
		}
	}

	return supabasego.NewClient(url, key, options)
}
