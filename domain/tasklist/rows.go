package tasklist

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the persisted form of creation timestamps (RFC 3339, UTC).
const TimestampLayout = time.RFC3339Nano

type taskListRow struct {
	ListID string `gorm:"column:list_id;primaryKey"`
	UserID string `gorm:"column:user_id"`
	Name   string `gorm:"column:name"`
}

func (taskListRow) TableName() string {
	return "task_lists"
}

type taskRow struct {
	TaskID      string `gorm:"column:task_id;primaryKey"`
	ListID      string `gorm:"column:list_id"`
	Content     string `gorm:"column:content"`
	IsCompleted bool   `gorm:"column:is_completed"`
	DueDate     *Date  `gorm:"column:due_date"`
	CreatedAt   string `gorm:"column:created_at"`
}

func (taskRow) TableName() string {
	return "tasks"
}

// taskOwnerRow is a tasks row joined with its (possibly missing) list.
type taskOwnerRow struct {
	TaskID      string  `gorm:"column:task_id"`
	ListID      string  `gorm:"column:list_id"`
	Content     string  `gorm:"column:content"`
	IsCompleted bool    `gorm:"column:is_completed"`
	DueDate     *Date   `gorm:"column:due_date"`
	CreatedAt   string  `gorm:"column:created_at"`
	OwnerListID *string `gorm:"column:owner_list_id"`
	OwnerUserID *string `gorm:"column:owner_user_id"`
	OwnerName   *string `gorm:"column:owner_name"`
}

func newTaskListRow(l *TaskList) taskListRow {
	return taskListRow{
		ListID: l.ID.String(),
		UserID: l.UserID.String(),
		Name:   l.Name,
	}
}

func (r taskListRow) toEntity() (TaskList, error) {
	id, err := uuid.Parse(r.ListID)
	if err != nil {
		return TaskList{}, fmt.Errorf("task list id %q: %w", r.ListID, err)
	}
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return TaskList{}, fmt.Errorf("task list %s user id %q: %w", r.ListID, r.UserID, err)
	}
	return TaskList{ID: id, UserID: userID, Name: r.Name}, nil
}

func newTaskRow(t *Task) taskRow {
	return taskRow{
		TaskID:      t.ID.String(),
		ListID:      t.ListID.String(),
		Content:     t.Content,
		IsCompleted: t.IsCompleted,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt.UTC().Format(TimestampLayout),
	}
}

func (r taskRow) toEntity() (Task, error) {
	id, err := uuid.Parse(r.TaskID)
	if err != nil {
		return Task{}, fmt.Errorf("task id %q: %w", r.TaskID, err)
	}
	listID, err := uuid.Parse(r.ListID)
	if err != nil {
		return Task{}, fmt.Errorf("task %s list id %q: %w", r.TaskID, r.ListID, err)
	}
	createdAt, err := time.Parse(TimestampLayout, r.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %s created_at: %w", r.TaskID, err)
	}

	return Task{
		ID:          id,
		ListID:      listID,
		Content:     r.Content,
		IsCompleted: r.IsCompleted,
		DueDate:     r.DueDate,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

func (r taskOwnerRow) toEntity() (*TaskOwner, error) {
	task, err := taskRow{
		TaskID:      r.TaskID,
		ListID:      r.ListID,
		Content:     r.Content,
		IsCompleted: r.IsCompleted,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
	}.toEntity()
	if err != nil {
		return nil, err
	}

	owner := &TaskOwner{Task: task}
	if r.OwnerListID == nil {
		return owner, nil
	}

	list, err := taskListRow{
		ListID: *r.OwnerListID,
		UserID: deref(r.OwnerUserID),
		Name:   deref(r.OwnerName),
	}.toEntity()
	if err != nil {
		return nil, err
	}
	owner.List = &list
	return owner, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
