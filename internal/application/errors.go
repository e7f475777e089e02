package application

import (
	"fmt"
	"strings"

	"github.com/bnema/dreamlog/internal/domain"
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrAuthenticationRequired
	}
	return nil
}
