package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/KodFikirSanat/focussuite/database"
	"github.com/KodFikirSanat/focussuite/domain/tasklist"
	"github.com/KodFikirSanat/focussuite/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TasksModule exposes the task list service over request-reply and
// publishes an event after every successful write.
type TasksModule struct {
	db       *gorm.DB
	store    tasklist.Store
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
	opts     []Option
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*TasksModule)(nil)
	_ mono.ServiceProviderModule = (*TasksModule)(nil)
	_ mono.EventBusAwareModule   = (*TasksModule)(nil)
	_ mono.EventEmitterModule    = (*TasksModule)(nil)
	_ mono.HealthCheckableModule = (*TasksModule)(nil)
)

// NewModule creates a TasksModule on an already migrated database.
func NewModule(db *gorm.DB, logger types.Logger) *TasksModule {
	return &TasksModule{
		db:     db,
		store:  tasklist.NewRepository(db),
		logger: logger,
	}
}

// NewModuleWithStore creates a TasksModule on an arbitrary store.
func NewModuleWithStore(store tasklist.Store, logger types.Logger, opts ...Option) *TasksModule {
	return &TasksModule{
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

// Name returns the module name.
func (m *TasksModule) Name() string {
	return "tasks"
}

// SetEventBus receives the EventBus from the framework.
func (m *TasksModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *TasksModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskListCreatedV1.ToBase(),
		events.TaskAddedV1.ToBase(),
		events.TaskCompletedV1.ToBase(),
	}
}

// Start wires the service.
func (m *TasksModule) Start(_ context.Context) error {
	if m.store == nil {
		return fmt.Errorf("task store not configured")
	}
	m.service = NewService(m.store, m.logger.WithModule(m.Name()), m.opts...)
	m.logger.Info("Tasks module started")
	return nil
}

// Stop shuts down the module.
func (m *TasksModule) Stop(_ context.Context) error {
	m.logger.Info("Tasks module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TasksModule) Health(_ context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{Healthy: false, Message: "not started"}
	}
	if m.db != nil {
		if err := database.Ping(m.db); err != nil {
			return mono.HealthStatus{
				Healthy: false,
				Message: fmt.Sprintf("database ping failed: %v", err),
			}
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"event_bus": m.eventBus != nil,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TasksModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-task-lists", json.Unmarshal, json.Marshal, m.handleListTaskLists,
	); err != nil {
		return fmt.Errorf("failed to register list-task-lists service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task-list", json.Unmarshal, json.Marshal, m.handleCreateTaskList,
	); err != nil {
		return fmt.Errorf("failed to register create-task-list service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-task", json.Unmarshal, json.Marshal, m.handleAddTask,
	); err != nil {
		return fmt.Errorf("failed to register add-task service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "complete-task", json.Unmarshal, json.Marshal, m.handleCompleteTask,
	); err != nil {
		return fmt.Errorf("failed to register complete-task service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-tasks", json.Unmarshal, json.Marshal, m.handleListTasks,
	); err != nil {
		return fmt.Errorf("failed to register list-tasks service: %w", err)
	}

	m.logger.Info("Registered services",
		"services", []string{"list-task-lists", "create-task-list", "add-task", "complete-task", "list-tasks"})
	return nil
}

func (m *TasksModule) handleListTaskLists(ctx context.Context, req ListTaskListsRequest, _ *mono.Msg) (ListTaskListsResponse, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return ListTaskListsResponse{Error: toErrorInfo(err)}, nil
	}

	lists, err := m.service.ListTaskLists(ctx, userID)
	if err != nil {
		return ListTaskListsResponse{Error: m.failure("list-task-lists", err)}, nil
	}
	return ListTaskListsResponse{TaskLists: lists}, nil
}

func (m *TasksModule) handleCreateTaskList(ctx context.Context, req CreateTaskListRequest, _ *mono.Msg) (TaskListResponse, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return TaskListResponse{Error: toErrorInfo(err)}, nil
	}
	if strings.TrimSpace(req.Name) == "" {
		return TaskListResponse{Error: toErrorInfo(invalidRequest("name is required"))}, nil
	}

	list, err := m.service.CreateTaskList(ctx, userID, req.Name)
	if err != nil {
		return TaskListResponse{Error: m.failure("create-task-list", err)}, nil
	}

	m.publish("TaskListCreated", list.ID, func(bus mono.EventBus) error {
		return events.TaskListCreatedV1.Publish(bus, events.TaskListCreatedEvent{
			ListID:    list.ID.String(),
			UserID:    list.UserID.String(),
			Name:      list.Name,
			CreatedAt: time.Now().UTC(),
		}, nil)
	})

	return TaskListResponse{TaskList: list}, nil
}

func (m *TasksModule) handleAddTask(ctx context.Context, req AddTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return TaskResponse{Error: toErrorInfo(err)}, nil
	}
	listID, err := parseID("list_id", req.ListID)
	if err != nil {
		return TaskResponse{Error: toErrorInfo(err)}, nil
	}
	if strings.TrimSpace(req.Content) == "" {
		return TaskResponse{Error: toErrorInfo(invalidRequest("content is required"))}, nil
	}

	task, err := m.service.AddTask(ctx, userID, listID, req.Content)
	if err != nil {
		return TaskResponse{Error: m.failure("add-task", err)}, nil
	}

	m.publish("TaskAdded", task.ID, func(bus mono.EventBus) error {
		return events.TaskAddedV1.Publish(bus, events.TaskAddedEvent{
			TaskID:    task.ID.String(),
			ListID:    task.ListID.String(),
			UserID:    userID.String(),
			Content:   task.Content,
			CreatedAt: task.CreatedAt,
		}, nil)
	})

	return TaskResponse{Task: task}, nil
}

func (m *TasksModule) handleCompleteTask(ctx context.Context, req CompleteTaskRequest, _ *mono.Msg) (CompleteTaskResponse, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return CompleteTaskResponse{Error: toErrorInfo(err)}, nil
	}
	taskID, err := parseID("task_id", req.TaskID)
	if err != nil {
		return CompleteTaskResponse{Error: toErrorInfo(err)}, nil
	}

	if err := m.service.CompleteTask(ctx, userID, taskID); err != nil {
		return CompleteTaskResponse{Error: m.failure("complete-task", err)}, nil
	}

	m.publish("TaskCompleted", taskID, func(bus mono.EventBus) error {
		return events.TaskCompletedV1.Publish(bus, events.TaskCompletedEvent{
			TaskID:      taskID.String(),
			UserID:      userID.String(),
			CompletedAt: time.Now().UTC(),
		}, nil)
	})

	return CompleteTaskResponse{TaskID: taskID.String(), Completed: true}, nil
}

func (m *TasksModule) handleListTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return ListTasksResponse{Error: toErrorInfo(err)}, nil
	}
	listID, err := parseID("list_id", req.ListID)
	if err != nil {
		return ListTasksResponse{Error: toErrorInfo(err)}, nil
	}

	tasks, err := m.service.ListTasks(ctx, userID, listID)
	if err != nil {
		return ListTasksResponse{Error: m.failure("list-tasks", err)}, nil
	}
	return ListTasksResponse{Tasks: tasks}, nil
}

// failure logs faults that are not ordinary user errors and converts err
// for the response.
func (m *TasksModule) failure(service string, err error) *ErrorInfo {
	info := toErrorInfo(err)
	if info.Code == CodeStorageFailure || info.Code == CodeDataIntegrity {
		m.logger.Error("Request failed", "service", service, "code", info.Code, "error", err)
	}
	return info
}

// publish sends an event if a bus is attached. Events are best-effort: the
// write has already been committed, so a failure is only logged.
func (m *TasksModule) publish(event string, id uuid.UUID, send func(mono.EventBus) error) {
	if m.eventBus == nil {
		return
	}
	if err := send(m.eventBus); err != nil {
		m.logger.Warn("Failed to publish event", "event", event, "id", id.String(), "error", err)
	}
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, invalidRequest("invalid %s %q", field, value)
	}
	return id, nil
}
