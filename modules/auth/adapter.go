package auth

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/KodFikirSanat/focussuite/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
)

// AuthPort is what other modules use to authenticate callers.
type AuthPort interface {
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// AuthAdapter implements AuthPort over the auth module's service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

var _ AuthPort = (*AuthAdapter)(nil)

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{container: container}
}

// ValidateToken validates an access token and returns its claims.
func (a *AuthAdapter) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate-token", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("validate-token request failed: %w", err)
	}
	if !resp.Valid {
		return nil, fmt.Errorf("token validation failed: %s", resp.Error)
	}

	userID, err := uuid.Parse(resp.UserID)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", ErrInvalidToken)
	}
	return &domain.Claims{UserID: userID, Email: resp.Email}, nil
}

// GetUser retrieves a user by ID.
func (a *AuthAdapter) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	req := GetUserRequest{UserID: userID.String()}
	var resp UserResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-user request failed: %w", err)
	}

	id, err := uuid.Parse(resp.ID)
	if err != nil {
		return nil, fmt.Errorf("get-user returned invalid id %q: %w", resp.ID, err)
	}
	return &domain.User{
		ID:        id,
		Name:      resp.UserName,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}
