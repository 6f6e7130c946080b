package usecase

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/validate"
)

type TaskUsecase struct {
	tasks repository.TaskRepository
}

func NewTaskUsecase(tasks repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

type CreateTaskInput struct {
	UserID  string
	Title   string
	DueDate *time.Time
}

func (u *TaskUsecase) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if input.UserID == "" {
		return nil, domain.UnauthenticatedError("User is not authenticated")
	}
	if err := checkTitle(input.Title); err != nil {
		return nil, err
	}

	task, err := u.tasks.Create(ctx, repository.CreateTaskInput{
		UserID:  input.UserID,
		Title:   input.Title,
		DueDate: input.DueDate,
	})
	if err != nil {
		return nil, domain.DatabaseFailureError(err)
	}
	return task, nil
}

// List returns the caller's own tasks. Scoping to the authenticated
// user id is the only access control a listing needs.
func (u *TaskUsecase) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	if userID == "" {
		return nil, domain.UnauthenticatedError("User is not authenticated")
	}

	tasks, err := u.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.DatabaseFailureError(err)
	}
	return tasks, nil
}

func (u *TaskUsecase) Get(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	task, err := u.load(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

type UpdateTaskInput struct {
	Title     *string
	Completed *bool
}

func (u *TaskUsecase) Update(ctx context.Context, taskID, userID string, input UpdateTaskInput) (*domain.Task, error) {
	if input.Title == nil && input.Completed == nil {
		return nil, domain.InvalidInputError("Information of updated task is missing")
	}
	if input.Title != nil {
		if err := checkTitle(*input.Title); err != nil {
			return nil, err
		}
	}

	if _, err := u.load(ctx, taskID, userID); err != nil {
		return nil, err
	}

	task, err := u.tasks.Update(ctx, taskID, repository.UpdateTaskInput{
		Title:     input.Title,
		Completed: input.Completed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.NotFoundError("The task was not found")
		}
		return nil, domain.DatabaseFailureError(err)
	}
	return task, nil
}

func (u *TaskUsecase) Delete(ctx context.Context, taskID, userID string) error {
	if _, err := u.load(ctx, taskID, userID); err != nil {
		return err
	}

	if err := u.tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.NotFoundError("The task was not found")
		}
		return domain.DatabaseFailureError(err)
	}
	return nil
}

// load fetches a task and runs the shared per-task gate: well-formed id,
// task exists, caller owns it.
func (u *TaskUsecase) load(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	if !validate.ID(taskID) {
		return nil, domain.InvalidIDError("Task id is not valid")
	}
	if userID == "" {
		return nil, domain.UnauthenticatedError("User is not authenticated")
	}

	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.NotFoundError("The task was not found")
		}
		return nil, domain.DatabaseFailureError(err)
	}

	if task.UserID != userID {
		return nil, domain.UnauthorizedError()
	}
	return task, nil
}

// checkTitle bounds the title in characters, matching the schema's
// char_length constraint.
func checkTitle(title string) error {
	if title == "" {
		return domain.InvalidInputError("Task title was not specified")
	}
	if utf8.RuneCountInString(title) > domain.TaskTitleMaxLen {
		return domain.InvalidInputError("Task title is too long")
	}
	return nil
}
