package port

import (
	"context"

	"shiprecon/internal/domain"
)

// UserRepository persists application logins.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
