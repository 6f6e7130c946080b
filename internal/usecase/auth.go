package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/email"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/validate"
)

type AuthUsecase struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(
	users repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
	sender email.Sender,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		email:  sender,
		logger: logger.With("component", "auth_usecase"),
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register runs the registration checks in a fixed order; the first
// failing check wins. The username/email pre-checks are best-effort —
// the storage unique constraints settle races, and a violation there is
// reported with the same message as the pre-check.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) error {
	if !validate.Username(input.Username) {
		return domain.ValidationError("invalid username")
	}

	if _, err := u.users.FindByName(ctx, input.Username); err == nil {
		return domain.ValidationError("username already exists")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.DatabaseFailureError(err)
	}

	if !validate.Email(input.Email) {
		return domain.ValidationError("invalid email")
	}

	if _, err := u.users.FindByEmail(ctx, input.Email); err == nil {
		return domain.ValidationError("email already exists")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.DatabaseFailureError(err)
	}

	if !validate.Password(input.Password) {
		return domain.ValidationError("password is not strong enough")
	}

	hashed, err := u.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, repository.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return domain.ValidationError("username already exists")
		case errors.Is(err, domain.ErrEmailTaken):
			return domain.ValidationError("email already exists")
		}
		return domain.DatabaseFailureError(err)
	}

	// Welcome mail is best-effort: the account already exists, so a
	// delivery failure must not fail the request.
	subject := "Welcome to Taskdeck"
	body := fmt.Sprintf("<p>Hi %s, your account is ready.</p>", user.Username)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.WarnContext(ctx, "welcome email", "user_id", user.ID, "error", err)
	}

	return nil
}

type LoginInput struct {
	Username string
	Password string
}

// Login exchanges valid credentials for a signed token. An unknown
// username and a wrong password produce the exact same error so the
// response cannot be used to probe which usernames exist.
func (u *AuthUsecase) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := u.users.FindByName(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.InvalidCredentialsError()
		}
		return "", domain.DatabaseFailureError(err)
	}

	if !u.hasher.Compare(input.Password, user.PasswordHash) {
		return "", domain.InvalidCredentialsError()
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
