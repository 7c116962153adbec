// Package events declares the typed events published by the tasks module.
package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskListCreatedEvent is emitted after a task list has been stored.
type TaskListCreatedEvent struct {
	ListID    string    `json:"list_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskListCreatedV1 is the typed event definition for list creation.
// Subject: events.tasks.v1.task-list-created
var TaskListCreatedV1 = helper.EventDefinition[TaskListCreatedEvent](
	"tasks", "TaskListCreated", "v1",
)

// TaskAddedEvent is emitted after a task has been added to a list.
type TaskAddedEvent struct {
	TaskID    string    `json:"task_id"`
	ListID    string    `json:"list_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskAddedV1 is the typed event definition for task creation.
// Subject: events.tasks.v1.task-added
var TaskAddedV1 = helper.EventDefinition[TaskAddedEvent](
	"tasks", "TaskAdded", "v1",
)

// TaskCompletedEvent is emitted after a task has been marked complete.
type TaskCompletedEvent struct {
	TaskID      string    `json:"task_id"`
	UserID      string    `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// TaskCompletedV1 is the typed event definition for task completion.
// Subject: events.tasks.v1.task-completed
var TaskCompletedV1 = helper.EventDefinition[TaskCompletedEvent](
	"tasks", "TaskCompleted", "v1",
)
