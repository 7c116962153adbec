package tasklist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2025-04-01", want: Date{2025, time.April, 1}},
		{name: "leap day", input: "2024-02-29", want: Date{2024, time.February, 29}},
		{name: "not a leap year", input: "2025-02-29", wantErr: true},
		{name: "with time of day", input: "2025-04-01T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestDate_Scan(t *testing.T) {
	want := Date{2025, time.April, 1}
	tests := []struct {
		name    string
		src     any
		wantErr bool
	}{
		{name: "text", src: "2025-04-01"},
		{name: "bytes", src: []byte("2025-04-01")},
		{name: "timestamp", src: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{name: "malformed text", src: "01/04/2025", wantErr: true},
		{name: "integer", src: int64(20250401), wantErr: true},
		{name: "null", src: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := Date{2025, time.December, 4}.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-04", v)
}

func TestDate_JSON(t *testing.T) {
	due := Date{2025, time.December, 24}
	task := Task{Content: "Gifts", DueDate: &due}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"due_date":"2025-12-24"`)

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.DueDate)
	assert.Equal(t, due, *decoded.DueDate)

	noDue, err := json.Marshal(Task{Content: "Someday"})
	require.NoError(t, err)
	assert.NotContains(t, string(noDue), "due_date")
}
