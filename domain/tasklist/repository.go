package tasklist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the storage contract for task lists and tasks. Lookups return
// (nil, nil) when the id does not resolve; every fault is a *StorageError.
type Store interface {
	CreateTaskList(ctx context.Context, list *TaskList) error
	CreateTask(ctx context.Context, task *Task) error
	GetTaskListByID(ctx context.Context, id uuid.UUID) (*TaskList, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*Task, error)
	GetTaskListsByUser(ctx context.Context, userID uuid.UUID) ([]TaskList, error)
	GetTasksByList(ctx context.Context, listID uuid.UUID) ([]Task, error)
	UpdateTaskCompletion(ctx context.Context, id uuid.UUID, completed bool) (int64, error)
	ResolveTaskOwner(ctx context.Context, taskID uuid.UUID) (*TaskOwner, error)

	// Transaction runs fn against a Store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise;
	// fn's error is returned unchanged.
	Transaction(ctx context.Context, fn func(Store) error) error
}

// Repository implements Store on top of GORM.
type Repository struct {
	db *gorm.DB
}

var _ Store = (*Repository)(nil)

// NewRepository creates a new Repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateTaskList inserts a new task list row.
func (r *Repository) CreateTaskList(ctx context.Context, list *TaskList) error {
	row := newTaskListRow(list)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return storageError("create task list", err)
	}
	return nil
}

// CreateTask inserts a new task row.
func (r *Repository) CreateTask(ctx context.Context, task *Task) error {
	row := newTaskRow(task)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return storageError("create task", err)
	}
	return nil
}

// GetTaskListByID returns the task list with the given id, or nil if there is none.
func (r *Repository) GetTaskListByID(ctx context.Context, id uuid.UUID) (*TaskList, error) {
	var row taskListRow
	err := r.db.WithContext(ctx).Where("list_id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("get task list", err)
	}

	list, err := row.toEntity()
	if err != nil {
		return nil, storageError("get task list", err)
	}
	return &list, nil
}

// GetTaskByID returns the task with the given id, or nil if there is none.
func (r *Repository) GetTaskByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Where("task_id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("get task", err)
	}

	task, err := row.toEntity()
	if err != nil {
		return nil, storageError("get task", err)
	}
	return &task, nil
}

// GetTaskListsByUser returns the user's task lists in insertion order.
func (r *Repository) GetTaskListsByUser(ctx context.Context, userID uuid.UUID) ([]TaskList, error) {
	var rows []taskListRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("list task lists", err)
	}

	lists := make([]TaskList, 0, len(rows))
	for _, row := range rows {
		list, err := row.toEntity()
		if err != nil {
			return nil, storageError("list task lists", err)
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// GetTasksByList returns the tasks of a list in insertion order.
func (r *Repository) GetTasksByList(ctx context.Context, listID uuid.UUID) ([]Task, error) {
	var rows []taskRow
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID.String()).
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("list tasks", err)
	}

	tasks := make([]Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toEntity()
		if err != nil {
			return nil, storageError("list tasks", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateTaskCompletion sets the completion flag and returns the number of
// rows affected; zero means no task has the given id.
func (r *Repository) UpdateTaskCompletion(ctx context.Context, id uuid.UUID, completed bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("task_id = ?", id.String()).
		Update("is_completed", completed)
	if result.Error != nil {
		return 0, storageError("update task completion", result.Error)
	}
	return result.RowsAffected, nil
}

const resolveTaskOwnerQuery = `
SELECT t.task_id, t.list_id, t.content, t.is_completed, t.due_date, t.created_at,
       l.list_id AS owner_list_id, l.user_id AS owner_user_id, l.name AS owner_name
FROM tasks AS t
LEFT JOIN task_lists AS l ON l.list_id = t.list_id
WHERE t.task_id = ?
LIMIT 1`

// ResolveTaskOwner loads a task together with the list that owns it in a
// single query. It returns nil if the task does not exist, and a TaskOwner
// with a nil List if the task's list is missing.
func (r *Repository) ResolveTaskOwner(ctx context.Context, taskID uuid.UUID) (*TaskOwner, error) {
	var row taskOwnerRow
	result := r.db.WithContext(ctx).Raw(resolveTaskOwnerQuery, taskID.String()).Scan(&row)
	if result.Error != nil {
		return nil, storageError("resolve task owner", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	owner, err := row.toEntity()
	if err != nil {
		return nil, storageError("resolve task owner", err)
	}
	return owner, nil
}

// Transaction runs fn inside a database transaction.
func (r *Repository) Transaction(ctx context.Context, fn func(Store) error) error {
	var fnErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&Repository{db: tx})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return storageError("transaction", err)
	}
	return err
}
