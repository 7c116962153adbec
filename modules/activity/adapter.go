package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
)

// RecentActivityRequest is the request for recent-activity.
type RecentActivityRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}

// RecentActivityResponse is the response of recent-activity.
type RecentActivityResponse struct {
	Entries []Entry `json:"entries"`
}

// ActivityPort reads a user's activity feed.
type ActivityPort interface {
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error)
}

// ActivityAdapter implements ActivityPort over the activity module's service container.
type ActivityAdapter struct {
	container mono.ServiceContainer
}

var _ ActivityPort = (*ActivityAdapter)(nil)

func NewActivityAdapter(container mono.ServiceContainer) *ActivityAdapter {
	return &ActivityAdapter{container: container}
}

func (a *ActivityAdapter) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error) {
	req := RecentActivityRequest{UserID: userID.String(), Limit: limit}
	var resp RecentActivityResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "recent-activity", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("recent-activity request failed: %w", err)
	}
	return resp.Entries, nil
}
