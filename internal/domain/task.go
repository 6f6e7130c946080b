package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

const (
	TaskTitleMinLen = 1
	TaskTitleMaxLen = 256
)

// Task is a to-do item. UserID references the owning user; only that
// user may read or mutate the task.
type Task struct {
	ID        string
	UserID    string
	Title     string
	DueDate   *time.Time // nil means no due date
	Completed bool

	RemindedAt *time.Time // set once a due-date reminder has been sent
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
