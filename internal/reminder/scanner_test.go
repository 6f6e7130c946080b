package reminder_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/reminder"
	"github.com/taskdeck/taskdeck/internal/repository"
)

type fakeTaskRepo struct {
	listDueSoon  func(ctx context.Context, until time.Time, limit int) ([]*domain.Task, error)
	markReminded func(ctx context.Context, id string) error
}

func (r *fakeTaskRepo) Create(_ context.Context, _ repository.CreateTaskInput) (*domain.Task, error) {
	panic("not used")
}
func (r *fakeTaskRepo) FindByID(_ context.Context, _ string) (*domain.Task, error) {
	panic("not used")
}
func (r *fakeTaskRepo) ListByUser(_ context.Context, _ string) ([]*domain.Task, error) {
	panic("not used")
}
func (r *fakeTaskRepo) Update(_ context.Context, _ string, _ repository.UpdateTaskInput) (*domain.Task, error) {
	panic("not used")
}
func (r *fakeTaskRepo) Delete(_ context.Context, _ string) error {
	panic("not used")
}

func (r *fakeTaskRepo) ListDueSoon(ctx context.Context, until time.Time, limit int) ([]*domain.Task, error) {
	return r.listDueSoon(ctx, until, limit)
}

func (r *fakeTaskRepo) MarkReminded(ctx context.Context, id string) error {
	return r.markReminded(ctx, id)
}

type fakeUserRepo struct {
	findByID func(ctx context.Context, id string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(_ context.Context, _ repository.CreateUserInput) (*domain.User, error) {
	panic("not used")
}
func (r *fakeUserRepo) FindByName(_ context.Context, _ string) (*domain.User, error) {
	panic("not used")
}
func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

type fakeSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

func dueTask(id string) *domain.Task {
	due := time.Now().Add(2 * time.Hour)
	return &domain.Task{ID: id, UserID: "user-1", Title: "pay bill", DueDate: &due}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestScan_SendsAndMarksReminded(t *testing.T) {
	var reminded []string
	tasks := &fakeTaskRepo{
		listDueSoon: func(_ context.Context, until time.Time, _ int) ([]*domain.Task, error) {
			if !until.After(time.Now()) {
				t.Error("cutoff is not in the future")
			}
			return []*domain.Task{dueTask("task-1"), dueTask("task-2")}, nil
		},
		markReminded: func(_ context.Context, id string) error {
			reminded = append(reminded, id)
			return nil
		},
	}
	users := &fakeUserRepo{
		findByID: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Username: "gopher_dev", Email: "gopher@example.com"}, nil
		},
	}

	var sentTo []string
	sender := &fakeSender{
		send: func(_ context.Context, to, _, _ string) error {
			sentTo = append(sentTo, to)
			return nil
		},
	}

	s := reminder.NewScanner(tasks, users, sender, testLogger(), 24*time.Hour)
	s.Scan(context.Background())

	if len(sentTo) != 2 {
		t.Errorf("sent %d reminders, want 2", len(sentTo))
	}
	if len(reminded) != 2 {
		t.Errorf("marked %d tasks reminded, want 2", len(reminded))
	}
}

func TestScan_SendFailure_LeavesTaskUnreminded(t *testing.T) {
	markCalls := 0
	tasks := &fakeTaskRepo{
		listDueSoon: func(_ context.Context, _ time.Time, _ int) ([]*domain.Task, error) {
			return []*domain.Task{dueTask("task-1")}, nil
		},
		markReminded: func(_ context.Context, _ string) error {
			markCalls++
			return nil
		},
	}
	users := &fakeUserRepo{
		findByID: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Username: "gopher_dev", Email: "gopher@example.com"}, nil
		},
	}
	sender := &fakeSender{
		send: func(_ context.Context, _, _, _ string) error {
			return errors.New("smtp unavailable")
		},
	}

	s := reminder.NewScanner(tasks, users, sender, testLogger(), 24*time.Hour)
	s.Scan(context.Background())

	if markCalls != 0 {
		t.Errorf("task marked reminded despite send failure (%d calls)", markCalls)
	}
}

func TestScan_ListFailure_NoSends(t *testing.T) {
	tasks := &fakeTaskRepo{
		listDueSoon: func(_ context.Context, _ time.Time, _ int) ([]*domain.Task, error) {
			return nil, errors.New("db down")
		},
	}
	sends := 0
	sender := &fakeSender{
		send: func(_ context.Context, _, _, _ string) error {
			sends++
			return nil
		},
	}

	s := reminder.NewScanner(tasks, &fakeUserRepo{}, sender, testLogger(), 24*time.Hour)
	s.Scan(context.Background())

	if sends != 0 {
		t.Errorf("sent %d reminders after list failure, want 0", sends)
	}
}
