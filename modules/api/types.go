package api

import (
	"time"

	"github.com/KodFikirSanat/focussuite/domain/tasklist"
	"github.com/KodFikirSanat/focussuite/modules/activity"
)

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents an authentication token response.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// UserResponse represents a user response.
type UserResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskListRequest is the body of POST /api/v1/lists.
type CreateTaskListRequest struct {
	Name string `json:"name"`
}

// AddTaskRequest is the body of POST /api/v1/lists/:id/tasks.
type AddTaskRequest struct {
	Content string `json:"content"`
}

// TaskListsResponse lists the caller's task lists.
type TaskListsResponse struct {
	TaskLists []tasklist.TaskList `json:"task_lists"`
}

// TasksResponse lists the tasks of one list.
type TasksResponse struct {
	Tasks []tasklist.Task `json:"tasks"`
}

// CompleteTaskResponse confirms a completed task.
type CompleteTaskResponse struct {
	TaskID    string `json:"task_id"`
	Completed bool   `json:"completed"`
}

// ActivityResponse holds the caller's recent activity, newest first.
type ActivityResponse struct {
	Entries []activity.Entry `json:"entries"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
