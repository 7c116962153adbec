package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KodFikirSanat/focussuite/domain/tasklist"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
)

// TaskPort is the tasks module as seen by other modules. Errors match the
// tasklist sentinels (ErrTaskListNotFound, ErrAccessDenied, ...).
type TaskPort interface {
	ListTaskLists(ctx context.Context, userID uuid.UUID) ([]tasklist.TaskList, error)
	CreateTaskList(ctx context.Context, userID uuid.UUID, name string) (*tasklist.TaskList, error)
	AddTask(ctx context.Context, userID, listID uuid.UUID, content string) (*tasklist.Task, error)
	CompleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	ListTasks(ctx context.Context, userID, listID uuid.UUID) ([]tasklist.Task, error)
}

// TaskAdapter implements TaskPort over the tasks module's service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

var _ TaskPort = (*TaskAdapter)(nil)

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{container: container}
}

// call invokes a tasks service. Transport failures surface as storage failures.
func call[Req, Resp any](ctx context.Context, a *TaskAdapter, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx, a.container, service, json.Marshal, json.Unmarshal, req, resp,
	); err != nil {
		return &tasklist.StorageError{Op: service, Err: fmt.Errorf("request failed: %w", err)}
	}
	return nil
}

// ListTaskLists returns the user's task lists.
func (a *TaskAdapter) ListTaskLists(ctx context.Context, userID uuid.UUID) ([]tasklist.TaskList, error) {
	req := ListTaskListsRequest{UserID: userID.String()}
	var resp ListTaskListsResponse
	if err := call(ctx, a, "list-task-lists", &req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error.Err()
	}
	return resp.TaskLists, nil
}

// CreateTaskList creates a task list owned by userID.
func (a *TaskAdapter) CreateTaskList(ctx context.Context, userID uuid.UUID, name string) (*tasklist.TaskList, error) {
	req := CreateTaskListRequest{UserID: userID.String(), Name: name}
	var resp TaskListResponse
	if err := call(ctx, a, "create-task-list", &req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error.Err()
	}
	return resp.TaskList, nil
}

// AddTask adds a task to one of the user's lists.
func (a *TaskAdapter) AddTask(ctx context.Context, userID, listID uuid.UUID, content string) (*tasklist.Task, error) {
	req := AddTaskRequest{UserID: userID.String(), ListID: listID.String(), Content: content}
	var resp TaskResponse
	if err := call(ctx, a, "add-task", &req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error.Err()
	}
	return resp.Task, nil
}

// CompleteTask marks one of the user's tasks as completed.
func (a *TaskAdapter) CompleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	req := CompleteTaskRequest{UserID: userID.String(), TaskID: taskID.String()}
	var resp CompleteTaskResponse
	if err := call(ctx, a, "complete-task", &req, &resp); err != nil {
		return err
	}
	return resp.Error.Err()
}

// ListTasks returns the tasks of one of the user's lists.
func (a *TaskAdapter) ListTasks(ctx context.Context, userID, listID uuid.UUID) ([]tasklist.Task, error) {
	req := ListTasksRequest{UserID: userID.String(), ListID: listID.String()}
	var resp ListTasksResponse
	if err := call(ctx, a, "list-tasks", &req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error.Err()
	}
	return resp.Tasks, nil
}
