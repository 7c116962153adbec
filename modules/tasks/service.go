package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KodFikirSanat/focussuite/domain/tasklist"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
)

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the generator used for new entity ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) { s.newID = newID }
}

// Service enforces existence and ownership rules for task lists and tasks.
// It keeps no state between calls: every call reads fresh from the store.
type Service struct {
	store  tasklist.Store
	logger types.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewService creates a Service backed by store.
func NewService(store tasklist.Store, logger types.Logger, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTaskLists returns every task list owned by userID.
func (s *Service) ListTaskLists(ctx context.Context, userID uuid.UUID) ([]tasklist.TaskList, error) {
	lists, err := s.store.GetTaskListsByUser(ctx, userID)
	if err != nil {
		return nil, asStorageFailure("list task lists", err)
	}
	return lists, nil
}

// CreateTaskList stores a new list for userID and returns it as assembled.
func (s *Service) CreateTaskList(ctx context.Context, userID uuid.UUID, name string) (*tasklist.TaskList, error) {
	list := &tasklist.TaskList{
		ID:     s.newID(),
		UserID: userID,
		Name:   name,
	}
	if err := s.store.CreateTaskList(ctx, list); err != nil {
		return nil, asStorageFailure("create task list", err)
	}
	return list, nil
}

// AddTask creates an incomplete task without a due date in listID.
// It fails with tasklist.ErrTaskListNotFound when the list does not exist and
// with tasklist.ErrAccessDenied when it belongs to someone else; in both
// cases nothing is written.
func (s *Service) AddTask(ctx context.Context, userID, listID uuid.UUID, content string) (*tasklist.Task, error) {
	var task *tasklist.Task
	err := s.store.Transaction(ctx, func(tx tasklist.Store) error {
		list, err := tx.GetTaskListByID(ctx, listID)
		if err != nil {
			return asStorageFailure("get task list", err)
		}
		if err := checkListOwner(list, userID); err != nil {
			return err
		}

		t := &tasklist.Task{
			ID:          s.newID(),
			ListID:      list.ID,
			Content:     content,
			IsCompleted: false,
			CreatedAt:   s.now().UTC(),
		}
		if err := tx.CreateTask(ctx, t); err != nil {
			return asStorageFailure("create task", err)
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask marks taskID as completed. Completing an already completed
// task succeeds. A task whose list is missing yields an error matching both
// tasklist.ErrDataIntegrity and tasklist.ErrTaskListNotFound.
func (s *Service) CompleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	return s.store.Transaction(ctx, func(tx tasklist.Store) error {
		owner, err := tx.ResolveTaskOwner(ctx, taskID)
		if err != nil {
			return asStorageFailure("resolve task owner", err)
		}
		if owner == nil {
			return tasklist.ErrTaskNotFound
		}
		if owner.List == nil {
			s.logger.Error("Task references a missing task list",
				"taskID", taskID.String(),
				"listID", owner.Task.ListID.String())
			return fmt.Errorf("%w: task %s: %w", tasklist.ErrDataIntegrity, taskID, tasklist.ErrTaskListNotFound)
		}
		if !owner.List.OwnedBy(userID) {
			return tasklist.ErrAccessDenied
		}

		affected, err := tx.UpdateTaskCompletion(ctx, taskID, true)
		if err != nil {
			return asStorageFailure("update task completion", err)
		}
		// The lookup above ran in the same transaction, so this only
		// happens if the row vanished underneath it.
		if affected == 0 {
			return tasklist.ErrTaskNotFound
		}
		return nil
	})
}

// ListTasks returns the tasks of listID after the same checks as AddTask.
func (s *Service) ListTasks(ctx context.Context, userID, listID uuid.UUID) ([]tasklist.Task, error) {
	var tasks []tasklist.Task
	err := s.store.Transaction(ctx, func(tx tasklist.Store) error {
		list, err := tx.GetTaskListByID(ctx, listID)
		if err != nil {
			return asStorageFailure("get task list", err)
		}
		if err := checkListOwner(list, userID); err != nil {
			return err
		}

		tasks, err = tx.GetTasksByList(ctx, list.ID)
		if err != nil {
			return asStorageFailure("list tasks", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func checkListOwner(list *tasklist.TaskList, userID uuid.UUID) error {
	if list == nil {
		return tasklist.ErrTaskListNotFound
	}
	if !list.OwnedBy(userID) {
		return tasklist.ErrAccessDenied
	}
	return nil
}

// asStorageFailure makes sure a store fault reaches the caller as a
// *tasklist.StorageError, whatever Store implementation produced it.
func asStorageFailure(op string, err error) error {
	if errors.Is(err, tasklist.ErrStorage) {
		return err
	}
	return &tasklist.StorageError{Op: op, Err: err}
}
