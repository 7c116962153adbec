package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/KodFikirSanat/focussuite/domain/tasklist"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestModule(t *testing.T) (*TasksModule, *mockStore, *mockLogger) {
	t.Helper()

	store := newMockStore()
	logger := &mockLogger{}
	m := NewModuleWithStore(store, logger)
	require.NoError(t, m.Start(context.Background()))
	return m, store, logger
}

func TestTasksModule_Flow(t *testing.T) {
	ctx := context.Background()
	m, store, _ := startTestModule(t)
	userID := uuid.New().String()

	created, err := m.handleCreateTaskList(ctx, CreateTaskListRequest{UserID: userID, Name: "Groceries"}, nil)
	require.NoError(t, err)
	require.Nil(t, created.Error)
	assert.Equal(t, "Groceries", created.TaskList.Name)

	added, err := m.handleAddTask(ctx, AddTaskRequest{
		UserID:  userID,
		ListID:  created.TaskList.ID.String(),
		Content: "Milk",
	}, nil)
	require.NoError(t, err)
	require.Nil(t, added.Error)
	assert.False(t, added.Task.IsCompleted)

	completed, err := m.handleCompleteTask(ctx, CompleteTaskRequest{UserID: userID, TaskID: added.Task.ID.String()}, nil)
	require.NoError(t, err)
	require.Nil(t, completed.Error)
	assert.True(t, completed.Completed)
	assert.True(t, store.tasks[added.Task.ID].IsCompleted)

	lists, err := m.handleListTaskLists(ctx, ListTaskListsRequest{UserID: userID}, nil)
	require.NoError(t, err)
	require.Nil(t, lists.Error)
	assert.Len(t, lists.TaskLists, 1)

	tasks, err := m.handleListTasks(ctx, ListTasksRequest{UserID: userID, ListID: created.TaskList.ID.String()}, nil)
	require.NoError(t, err)
	require.Nil(t, tasks.Error)
	assert.Len(t, tasks.Tasks, 1)
}

func TestTasksModule_NamesAndContentAreStoredVerbatim(t *testing.T) {
	ctx := context.Background()
	m, store, _ := startTestModule(t)
	userID := uuid.New().String()

	created, err := m.handleCreateTaskList(ctx, CreateTaskListRequest{UserID: userID, Name: "  Groceries "}, nil)
	require.NoError(t, err)
	require.Nil(t, created.Error)
	assert.Equal(t, "  Groceries ", created.TaskList.Name)
	assert.Equal(t, "  Groceries ", store.lists[created.TaskList.ID].Name)

	added, err := m.handleAddTask(ctx, AddTaskRequest{
		UserID:  userID,
		ListID:  created.TaskList.ID.String(),
		Content: " Milk ",
	}, nil)
	require.NoError(t, err)
	require.Nil(t, added.Error)
	assert.Equal(t, " Milk ", added.Task.Content)
}

func TestTasksModule_InvalidRequests(t *testing.T) {
	ctx := context.Background()
	m, store, _ := startTestModule(t)
	valid := uuid.New().String()

	tests := []struct {
		name string
		call func() *ErrorInfo
	}{
		{
			name: "list-task-lists with bad user id",
			call: func() *ErrorInfo {
				resp, _ := m.handleListTaskLists(ctx, ListTaskListsRequest{UserID: "me"}, nil)
				return resp.Error
			},
		},
		{
			name: "create-task-list without name",
			call: func() *ErrorInfo {
				resp, _ := m.handleCreateTaskList(ctx, CreateTaskListRequest{UserID: valid, Name: "   "}, nil)
				return resp.Error
			},
		},
		{
			name: "add-task with bad list id",
			call: func() *ErrorInfo {
				resp, _ := m.handleAddTask(ctx, AddTaskRequest{UserID: valid, ListID: "42", Content: "x"}, nil)
				return resp.Error
			},
		},
		{
			name: "add-task without content",
			call: func() *ErrorInfo {
				resp, _ := m.handleAddTask(ctx, AddTaskRequest{UserID: valid, ListID: valid, Content: ""}, nil)
				return resp.Error
			},
		},
		{
			name: "complete-task with bad task id",
			call: func() *ErrorInfo {
				resp, _ := m.handleCompleteTask(ctx, CompleteTaskRequest{UserID: valid, TaskID: ""}, nil)
				return resp.Error
			},
		},
		{
			name: "list-tasks with bad user id",
			call: func() *ErrorInfo {
				resp, _ := m.handleListTasks(ctx, ListTasksRequest{UserID: "", ListID: valid}, nil)
				return resp.Error
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.call()
			require.NotNil(t, info)
			assert.Equal(t, CodeInvalidRequest, info.Code)
		})
	}

	assert.Empty(t, store.lists)
	assert.Equal(t, 0, store.createTaskCalls)
}

func TestTasksModule_DomainErrorsInResponse(t *testing.T) {
	ctx := context.Background()
	m, store, logger := startTestModule(t)
	owner := uuid.New()
	list := tasklist.TaskList{ID: uuid.New(), UserID: owner, Name: "Mine"}
	store.lists[list.ID] = list

	resp, err := m.handleAddTask(ctx, AddTaskRequest{
		UserID:  uuid.New().String(),
		ListID:  list.ID.String(),
		Content: "x",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeAccessDenied, resp.Error.Code)
	assert.Nil(t, resp.Task)

	missing, err := m.handleCompleteTask(ctx, CompleteTaskRequest{UserID: owner.String(), TaskID: uuid.New().String()}, nil)
	require.NoError(t, err)
	require.NotNil(t, missing.Error)
	assert.Equal(t, CodeNotFound, missing.Error.Code)
	assert.Equal(t, EntityTask, missing.Error.Entity)
	assert.False(t, missing.Completed)

	assert.Empty(t, logger.errors, "user errors are not logged as failures")

	store.listsErr = errors.New("disk I/O error")
	failed, err := m.handleListTaskLists(ctx, ListTaskListsRequest{UserID: owner.String()}, nil)
	require.NoError(t, err)
	require.NotNil(t, failed.Error)
	assert.Equal(t, CodeStorageFailure, failed.Error.Code)
	assert.Len(t, logger.errors, 1)
}

func TestTasksModule_Health(t *testing.T) {
	m := NewModuleWithStore(newMockStore(), &mockLogger{})
	assert.False(t, m.Health(context.Background()).Healthy)

	require.NoError(t, m.Start(context.Background()))
	assert.True(t, m.Health(context.Background()).Healthy)
}

func TestTasksModule_EmitEvents(t *testing.T) {
	m := NewModuleWithStore(newMockStore(), &mockLogger{})
	assert.Len(t, m.EmitEvents(), 3)
}
