package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func startTestModule(t *testing.T) *AuthModule {
	t.Helper()

	m := NewModule(setupTestDB(t), testTokenConfig(), &mockLogger{}).WithBcryptCost(bcrypt.MinCost)
	require.NoError(t, m.Start(context.Background()))
	return m
}

func TestAuthModule_RegisterLoginValidate(t *testing.T) {
	ctx := context.Background()
	m := startTestModule(t)

	registered, err := m.handleRegister(ctx, RegisterRequest{
		UserName: "Grace",
		Email:    "grace@example.com",
		Password: "hopper1906",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Grace", registered.UserName)

	tokens, err := m.handleLogin(ctx, LoginRequest{Email: "grace@example.com", Password: "hopper1906"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)

	valid, err := m.handleValidateToken(ctx, ValidateTokenRequest{Token: tokens.AccessToken}, nil)
	require.NoError(t, err)
	assert.True(t, valid.Valid)
	assert.Equal(t, registered.ID, valid.UserID)

	user, err := m.handleGetUser(ctx, GetUserRequest{UserID: valid.UserID}, nil)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", user.Email)
}

func TestAuthModule_ValidateTokenReportsFailureInResponse(t *testing.T) {
	m := startTestModule(t)

	resp, err := m.handleValidateToken(context.Background(), ValidateTokenRequest{Token: "garbage"}, nil)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "invalid token", resp.Error)
}

func TestAuthModule_GetUserWithBadID(t *testing.T) {
	m := startTestModule(t)

	_, err := m.handleGetUser(context.Background(), GetUserRequest{UserID: "nope"}, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthModule_Health(t *testing.T) {
	m := startTestModule(t)

	status := m.Health(context.Background())
	assert.True(t, status.Healthy)
}
