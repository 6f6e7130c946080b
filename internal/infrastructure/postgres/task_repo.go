package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/repository"
)

const taskColumns = `id, user_id, title, due_date, completed, reminded_at, created_at, updated_at`

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, input repository.CreateTaskInput) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, due_date)
		VALUES ($1, $2, $3)
		RETURNING `+taskColumns,
		input.UserID, input.Title, input.DueDate,
	)
	t, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, input repository.UpdateTaskInput) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title      = COALESCE($2, title),
		    completed  = COALESCE($3, completed),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+taskColumns,
		id, input.Title, input.Completed,
	)
	return scanTask(row)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// ListDueSoon returns unreminded, uncompleted tasks whose due date falls
// at or before the cutoff.
func (r *TaskRepository) ListDueSoon(ctx context.Context, until time.Time, limit int) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE due_date IS NOT NULL
		  AND due_date <= $1
		  AND completed = FALSE
		  AND reminded_at IS NULL
		ORDER BY due_date
		LIMIT $2`, until, limit)
	if err != nil {
		return nil, fmt.Errorf("list due tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list due tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) MarkReminded(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE tasks SET reminded_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.DueDate, &t.Completed, &t.RemindedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
