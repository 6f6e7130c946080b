// Package reminder implements the due-date reminder daemon: a cron-driven
// scan that emails owners of tasks coming due and marks them reminded so
// each task is mailed at most once.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/taskdeck/taskdeck/internal/email"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/repository"
)

const scanBatchLimit = 500

type Scanner struct {
	tasks  repository.TaskRepository
	users  repository.UserRepository
	email  email.Sender
	logger *slog.Logger
	window time.Duration
}

func NewScanner(
	tasks repository.TaskRepository,
	users repository.UserRepository,
	sender email.Sender,
	logger *slog.Logger,
	window time.Duration,
) *Scanner {
	return &Scanner{
		tasks:  tasks,
		users:  users,
		email:  sender,
		logger: logger.With("component", "reminder"),
		window: window,
	}
}

// Start runs scans on the given cron spec until ctx is cancelled. It
// also runs one scan immediately so a restart never delays reminders by
// a full cron interval.
func (s *Scanner) Start(ctx context.Context, cronSpec string) error {
	c := cron.New()
	if _, err := c.AddFunc(cronSpec, func() { s.Scan(ctx) }); err != nil {
		return fmt.Errorf("parse reminder cron %q: %w", cronSpec, err)
	}

	s.Scan(ctx)
	c.Start()

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	s.logger.Info("reminder scanner stopped")
	return nil
}

// Scan mails one batch of due-soon tasks. Failures on individual tasks
// are logged and skipped; an unreminded task is picked up again on the
// next cycle.
func (s *Scanner) Scan(ctx context.Context) {
	start := time.Now()
	defer func() {
		metrics.ReminderCycleDuration.Observe(time.Since(start).Seconds())
	}()

	due, err := s.tasks.ListDueSoon(ctx, time.Now().Add(s.window), scanBatchLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "list due tasks", "error", err)
		return
	}

	for _, task := range due {
		owner, err := s.users.FindByID(ctx, task.UserID)
		if err != nil {
			s.logger.ErrorContext(ctx, "reminder owner lookup", "task_id", task.ID, "error", err)
			continue
		}

		subject := "Task due soon: " + task.Title
		body := fmt.Sprintf(
			"<p>Hi %s, your task <b>%s</b> is due at %s.</p>",
			owner.Username, task.Title, task.DueDate.Format(time.RFC1123),
		)
		if err := s.email.Send(ctx, owner.Email, subject, body); err != nil {
			s.logger.ErrorContext(ctx, "send reminder", "task_id", task.ID, "error", err)
			continue
		}

		if err := s.tasks.MarkReminded(ctx, task.ID); err != nil {
			s.logger.ErrorContext(ctx, "mark reminded", "task_id", task.ID, "error", err)
			continue
		}
		metrics.RemindersSentTotal.Inc()
	}

	if len(due) > 0 {
		s.logger.InfoContext(ctx, "reminder cycle done", "candidates", len(due))
	}
}
