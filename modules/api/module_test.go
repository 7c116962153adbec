package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIModule_Dependencies(t *testing.T) {
	m := NewModule(3000, &mockLogger{})
	assert.Equal(t, "api", m.Name())
	assert.ElementsMatch(t, []string{"auth", "tasks", "activity"}, m.Dependencies())
}

func TestAPIModule_StartRequiresDependencies(t *testing.T) {
	m := NewModule(3000, &mockLogger{})

	err := m.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth dependency not set")

	assert.False(t, m.Health(context.Background()).Healthy)
	assert.NoError(t, m.Stop(context.Background()))
}
