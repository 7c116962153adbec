package tasks

import "github.com/KodFikirSanat/focussuite/domain/tasklist"

// Error codes carried in ErrorInfo.Code.
const (
	CodeNotFound       = "not_found"
	CodeAccessDenied   = "access_denied"
	CodeDataIntegrity  = "data_integrity"
	CodeStorageFailure = "storage_failure"
	CodeInvalidRequest = "invalid_request"
)

// Entity names carried in ErrorInfo.Entity for not_found errors.
const (
	EntityTaskList = "task_list"
	EntityTask     = "task"
)

// ErrorInfo describes a failed request inside a service response, so the
// failure category survives the trip over the service boundary.
type ErrorInfo struct {
	Code    string `json:"code"`
	Entity  string `json:"entity,omitempty"`
	Message string `json:"message"`
}

// ListTaskListsRequest is the request for list-task-lists.
type ListTaskListsRequest struct {
	UserID string `json:"user_id"`
}

// ListTaskListsResponse is the response of list-task-lists.
type ListTaskListsResponse struct {
	TaskLists []tasklist.TaskList `json:"task_lists"`
	Error     *ErrorInfo          `json:"error,omitempty"`
}

// CreateTaskListRequest is the request for create-task-list.
type CreateTaskListRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// TaskListResponse carries a single task list.
type TaskListResponse struct {
	TaskList *tasklist.TaskList `json:"task_list,omitempty"`
	Error    *ErrorInfo         `json:"error,omitempty"`
}

// AddTaskRequest is the request for add-task.
type AddTaskRequest struct {
	UserID  string `json:"user_id"`
	ListID  string `json:"list_id"`
	Content string `json:"content"`
}

// TaskResponse carries a single task.
type TaskResponse struct {
	Task  *tasklist.Task `json:"task,omitempty"`
	Error *ErrorInfo     `json:"error,omitempty"`
}

// CompleteTaskRequest is the request for complete-task.
type CompleteTaskRequest struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id"`
}

// CompleteTaskResponse is the response of complete-task.
type CompleteTaskResponse struct {
	TaskID    string     `json:"task_id,omitempty"`
	Completed bool       `json:"completed"`
	Error     *ErrorInfo `json:"error,omitempty"`
}

// ListTasksRequest is the request for list-tasks.
type ListTasksRequest struct {
	UserID string `json:"user_id"`
	ListID string `json:"list_id"`
}

// ListTasksResponse is the response of list-tasks.
type ListTasksResponse struct {
	Tasks []tasklist.Task `json:"tasks"`
	Error *ErrorInfo      `json:"error,omitempty"`
}
