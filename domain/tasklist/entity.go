// Package tasklist holds the task list and task entities together with the
// storage layer that persists them.
package tasklist

import (
	"time"

	"github.com/google/uuid"
)

// TaskList is a named collection of tasks owned by exactly one user.
type TaskList struct {
	ID     uuid.UUID `json:"list_id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// OwnedBy reports whether userID owns the list.
func (l TaskList) OwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}

// Task is a single item of a TaskList. Its owner is the owner of the list.
type Task struct {
	ID          uuid.UUID `json:"task_id"`
	ListID      uuid.UUID `json:"list_id"`
	Content     string    `json:"content"`
	IsCompleted bool      `json:"is_completed"`
	DueDate     *Date     `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskOwner is the result of resolving a task to the list that owns it.
// List is nil when the task references a list that no longer exists.
type TaskOwner struct {
	Task Task
	List *TaskList
}
