package repository

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserRepository is the persistence contract for users. Usecases depend
// on the interface so tests can substitute closure-based fakes.
// Lookups return domain.ErrUserNotFound when no row matches.
type UserRepository interface {
	// Create inserts a new user. The unique constraints on username and
	// email are the final arbiter of uniqueness; violations surface as
	// domain.ErrUsernameTaken / domain.ErrEmailTaken.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	FindByName(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
