package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
)

const (
	// ContextUserKey holds the authenticated *domain.User.
	ContextUserKey = "user"
	// ContextUserIDKey holds the authenticated user's id.
	ContextUserIDKey = "userID"

	errUnauthorized   = "Unauthorized"
	errInternalServer = "Internal server error"
)

// tokenVerifier is the subset of auth.TokenService the middleware needs.
// Defined here (point of use) so tests can inject a fake.
type tokenVerifier interface {
	Verify(raw string) (string, bool)
}

// userFinder is the single user-directory lookup the middleware needs.
type userFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth gates protected routes. It resolves the bearer token to a user
// record and attaches it to the request; any failure along the way is a
// plain 401. Only an infrastructure failure during the user lookup is
// treated as a 500.
func Auth(tokens tokenVerifier, users userFinder, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errUnauthorized})
			return
		}

		subject, ok := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errUnauthorized})
			return
		}

		user, err := users.FindByID(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errUnauthorized})
				return
			}
			logger.ErrorContext(c.Request.Context(), "auth user lookup", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
