package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KodFikirSanat/focussuite/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// ActivityModule turns task events into a per-user activity feed.
type ActivityModule struct {
	feed   *Feed
	logger types.Logger
}

var (
	_ mono.Module                = (*ActivityModule)(nil)
	_ mono.EventConsumerModule   = (*ActivityModule)(nil)
	_ mono.ServiceProviderModule = (*ActivityModule)(nil)
)

func NewModule(capacity int, logger types.Logger) *ActivityModule {
	return &ActivityModule{
		feed:   NewFeed(capacity),
		logger: logger,
	}
}

func (m *ActivityModule) Name() string {
	return "activity"
}

func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskListCreatedV1, m.handleTaskListCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskListCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskAddedV1, m.handleTaskAdded, m); err != nil {
		return fmt.Errorf("failed to register TaskAdded consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{"TaskListCreated.v1", "TaskAdded.v1", "TaskCompleted.v1"})
	return nil
}

func (m *ActivityModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "recent-activity", json.Unmarshal, json.Marshal, m.handleRecentActivity,
	); err != nil {
		return fmt.Errorf("failed to register recent-activity service: %w", err)
	}
	return nil
}

func (m *ActivityModule) handleTaskListCreated(_ context.Context, event events.TaskListCreatedEvent, _ *mono.Msg) error {
	m.feed.Record(event.UserID, Entry{
		Kind:       KindTaskListCreated,
		EntityID:   event.ListID,
		Summary:    fmt.Sprintf("Created list %q", event.Name),
		OccurredAt: event.CreatedAt,
	})
	m.logger.Debug("Recorded list creation", "userID", event.UserID, "listID", event.ListID)
	return nil
}

func (m *ActivityModule) handleTaskAdded(_ context.Context, event events.TaskAddedEvent, _ *mono.Msg) error {
	m.feed.Record(event.UserID, Entry{
		Kind:       KindTaskAdded,
		EntityID:   event.TaskID,
		Summary:    fmt.Sprintf("Added %q", event.Content),
		OccurredAt: event.CreatedAt,
	})
	m.logger.Debug("Recorded task", "userID", event.UserID, "taskID", event.TaskID)
	return nil
}

func (m *ActivityModule) handleTaskCompleted(_ context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	m.feed.Record(event.UserID, Entry{
		Kind:       KindTaskCompleted,
		EntityID:   event.TaskID,
		Summary:    "Completed a task",
		OccurredAt: event.CompletedAt,
	})
	m.logger.Debug("Recorded completion", "userID", event.UserID, "taskID", event.TaskID)
	return nil
}

func (m *ActivityModule) handleRecentActivity(_ context.Context, req RecentActivityRequest, _ *mono.Msg) (RecentActivityResponse, error) {
	return RecentActivityResponse{Entries: m.feed.Recent(req.UserID, req.Limit)}, nil
}

func (m *ActivityModule) Start(_ context.Context) error {
	m.logger.Info("Activity module started", "capacity", m.feed.capacity)
	return nil
}

func (m *ActivityModule) Stop(_ context.Context) error {
	m.logger.Info("Activity module stopped")
	return nil
}
