package activity

import (
	"sync"
	"time"
)

// Entry kinds.
const (
	KindTaskListCreated = "task_list_created"
	KindTaskAdded       = "task_added"
	KindTaskCompleted   = "task_completed"
)

// DefaultCapacity is the number of entries kept per user when none is configured.
const DefaultCapacity = 100

// Entry is one line of a user's activity feed.
type Entry struct {
	Kind       string    `json:"kind"`
	EntityID   string    `json:"entity_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Feed keeps the most recent entries per user in memory.
type Feed struct {
	mu       sync.RWMutex
	capacity int
	entries  map[string][]Entry
}

// NewFeed creates a Feed holding at most capacity entries per user.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		capacity: capacity,
		entries:  make(map[string][]Entry),
	}
}

// Record appends an entry to userID's feed, dropping the oldest one when full.
func (f *Feed) Record(userID string, entry Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := append(f.entries[userID], entry)
	if len(entries) > f.capacity {
		entries = entries[len(entries)-f.capacity:]
	}
	f.entries[userID] = entries
}

// Recent returns up to limit entries for userID, newest first.
// A limit <= 0 returns the whole feed.
func (f *Feed) Recent(userID string, limit int) []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries := f.entries[userID]
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	result := make([]Entry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, entries[i])
	}
	return result
}
