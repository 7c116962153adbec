package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KodFikirSanat/focussuite/database"
	domain "github.com/KodFikirSanat/focussuite/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthModule provides the user registry and token services.
type AuthModule struct {
	db          *gorm.DB
	tokenConfig TokenConfig
	bcryptCost  int
	service     *AuthService
	logger      types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*AuthModule)(nil)
	_ mono.ServiceProviderModule = (*AuthModule)(nil)
	_ mono.HealthCheckableModule = (*AuthModule)(nil)
)

// NewModule creates a new AuthModule on an already migrated database.
func NewModule(db *gorm.DB, tokenConfig TokenConfig, logger types.Logger) *AuthModule {
	return &AuthModule{
		db:          db,
		tokenConfig: tokenConfig,
		logger:      logger,
	}
}

// WithBcryptCost overrides the password hashing cost.
func (m *AuthModule) WithBcryptCost(cost int) *AuthModule {
	m.bcryptCost = cost
	return m
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Start wires the service.
func (m *AuthModule) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not configured")
	}
	if m.tokenConfig.SecretKey == DevelopmentSecret {
		m.logger.Warn("Using the development JWT secret; set JWT_SECRET_KEY in production")
	}

	m.service = NewAuthService(
		NewUserRepository(m.db),
		NewPasswordHasher(m.bcryptCost),
		NewTokenIssuer(m.tokenConfig),
	)

	m.logger.Info("Auth module started", "issuer", m.tokenConfig.Issuer)
	return nil
}

// Stop shuts down the module. The database is owned by the caller.
func (m *AuthModule) Stop(_ context.Context) error {
	m.logger.Info("Auth module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AuthModule) Health(_ context.Context) mono.HealthStatus {
	if err := database.Ping(m.db); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "register", json.Unmarshal, json.Marshal, m.handleRegister,
	); err != nil {
		return fmt.Errorf("failed to register register service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "refresh-token", json.Unmarshal, json.Marshal, m.handleRefresh,
	); err != nil {
		return fmt.Errorf("failed to register refresh-token service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-token", json.Unmarshal, json.Marshal, m.handleValidateToken,
	); err != nil {
		return fmt.Errorf("failed to register validate-token service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.handleGetUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	m.logger.Info("Registered services", "services", []string{"register", "login", "refresh-token", "validate-token", "get-user"})
	return nil
}

func (m *AuthModule) handleRegister(ctx context.Context, req RegisterRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.Register(ctx, req.UserName, req.Email, req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	m.logger.Info("User registered", "userID", user.ID.String())
	return toUserResponse(user), nil
}

func (m *AuthModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (TokenResponse, error) {
	tokens, err := m.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return TokenResponse{}, err
	}
	return toTokenResponse(tokens), nil
}

func (m *AuthModule) handleRefresh(ctx context.Context, req RefreshRequest, _ *mono.Msg) (TokenResponse, error) {
	tokens, err := m.service.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		return TokenResponse{}, err
	}
	return toTokenResponse(tokens), nil
}

func (m *AuthModule) handleValidateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	claims, err := m.service.ValidateToken(ctx, req.Token)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, ErrExpiredToken) {
			msg = "token expired"
		}
		return ValidateTokenResponse{Valid: false, Error: msg}, nil
	}

	return ValidateTokenResponse{
		Valid:  true,
		UserID: claims.UserID.String(),
		Email:  claims.Email,
	}, nil
}

func (m *AuthModule) handleGetUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (UserResponse, error) {
	id, err := uuid.Parse(req.UserID)
	if err != nil {
		return UserResponse{}, ErrUserNotFound
	}

	user, err := m.service.GetUser(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		UserName:  user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toTokenResponse(tokens *domain.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		TokenType:    tokens.TokenType,
	}
}
