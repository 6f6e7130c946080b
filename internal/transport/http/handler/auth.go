package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) error
	Login(ctx context.Context, input usecase.LoginInput) (string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

// No binding tags here: field presence and format are the usecase's
// job, so that check ordering and messages stay in one place.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/register
// 201 with no body on success, 400 with the first failing check's message.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBody})
		return
	}

	err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		respondError(c, h.logger, "register", err)
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	c.Status(http.StatusCreated)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
// Returns {"token": "<jwt>"} on success. Unknown username and wrong
// password are indistinguishable in the response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBody})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var apiErr *domain.Error
		if errors.As(err, &apiErr) && apiErr.Code == domain.CodeInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		respondError(c, h.logger, "login", err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}
