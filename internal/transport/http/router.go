package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/transport/http/handler"
	"github.com/taskdeck/taskdeck/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

// Deps collects the collaborators the router wires into routes.
type Deps struct {
	Auth   *handler.AuthHandler
	Task   *handler.TaskHandler
	AuthMW gin.HandlerFunc
}

func NewRouter(logger *slog.Logger, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", deps.Auth.Register)
	auth.POST("/login", deps.Auth.Login)

	// Protected task routes
	tasks := v1.Group("/task", deps.AuthMW)
	tasks.GET("", deps.Task.List)
	tasks.POST("", deps.Task.Create)
	tasks.GET("/:taskId", deps.Task.GetByID)
	tasks.PUT("/:taskId", deps.Task.Update)
	tasks.DELETE("/:taskId", deps.Task.Delete)

	return r
}
