package repository

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type CreateTaskInput struct {
	UserID  string
	Title   string
	DueDate *time.Time
}

// UpdateTaskInput carries the mutable fields of a task. Nil means
// "leave unchanged".
type UpdateTaskInput struct {
	Title     *string
	Completed *bool
}

// TaskRepository is the persistence contract for tasks. FindByID and
// Delete return domain.ErrTaskNotFound when no row matches.
type TaskRepository interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error

	// Reminder scanner methods.
	ListDueSoon(ctx context.Context, until time.Time, limit int) ([]*domain.Task, error)
	MarkReminded(ctx context.Context, id string) error
}
