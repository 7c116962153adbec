package activity

import (
	"context"
	"testing"
	"time"

	"github.com/KodFikirSanat/focussuite/events"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) types.Logger { return m }
func (m *mockLogger) WithError(err error) types.Logger { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func TestActivityModule_RecordsTaskEvents(t *testing.T) {
	ctx := context.Background()
	m := NewModule(10, &mockLogger{})
	require.NoError(t, m.Start(ctx))
	defer m.Stop(ctx)

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, m.handleTaskListCreated(ctx, events.TaskListCreatedEvent{
		ListID: "l1", UserID: "u1", Name: "Groceries", CreatedAt: created,
	}, nil))
	require.NoError(t, m.handleTaskAdded(ctx, events.TaskAddedEvent{
		TaskID: "t1", ListID: "l1", UserID: "u1", Content: "Milk", CreatedAt: created.Add(time.Minute),
	}, nil))
	require.NoError(t, m.handleTaskCompleted(ctx, events.TaskCompletedEvent{
		TaskID: "t1", UserID: "u1", CompletedAt: created.Add(2 * time.Minute),
	}, nil))

	resp, err := m.handleRecentActivity(ctx, RecentActivityRequest{UserID: "u1"}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)

	assert.Equal(t, KindTaskCompleted, resp.Entries[0].Kind)
	assert.Equal(t, KindTaskAdded, resp.Entries[1].Kind)
	assert.Equal(t, `Added "Milk"`, resp.Entries[1].Summary)
	assert.Equal(t, KindTaskListCreated, resp.Entries[2].Kind)
	assert.Equal(t, "l1", resp.Entries[2].EntityID)
	assert.True(t, created.Equal(resp.Entries[2].OccurredAt))
}

func TestActivityModule_RecentActivityLimit(t *testing.T) {
	ctx := context.Background()
	m := NewModule(10, &mockLogger{})

	for _, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, m.handleTaskAdded(ctx, events.TaskAddedEvent{TaskID: id, UserID: "u1"}, nil))
	}

	resp, err := m.handleRecentActivity(ctx, RecentActivityRequest{UserID: "u1", Limit: 1}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "t3", resp.Entries[0].EntityID)

	other, err := m.handleRecentActivity(ctx, RecentActivityRequest{UserID: "u2"}, nil)
	require.NoError(t, err)
	assert.Empty(t, other.Entries)
}

func TestActivityModule_Name(t *testing.T) {
	assert.Equal(t, "activity", NewModule(0, &mockLogger{}).Name())
}
