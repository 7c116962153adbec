package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/KodFikirSanat/focussuite/domain/tasklist"
	"github.com/KodFikirSanat/focussuite/modules/activity"
	"github.com/KodFikirSanat/focussuite/modules/auth"
	"github.com/KodFikirSanat/focussuite/modules/tasks"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// defaultActivityLimit is used when GET /api/v1/activity has no limit.
const defaultActivityLimit = 20

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authContainer mono.ServiceContainer
	authAdapter   auth.AuthPort
	tasks         tasks.TaskPort
	activity      activity.ActivityPort
	logger        types.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	authContainer mono.ServiceContainer,
	authAdapter auth.AuthPort,
	taskPort tasks.TaskPort,
	activityPort activity.ActivityPort,
	logger types.Logger,
) *Handlers {
	return &Handlers{
		authContainer: authContainer,
		authAdapter:   authAdapter,
		tasks:         taskPort,
		activity:      activityPort,
		logger:        logger,
	}
}

// Register handles user registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	authReq := auth.RegisterRequest{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	}
	var resp auth.UserResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "register", json.Marshal, json.Unmarshal, &authReq, &resp,
	); err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		ID:        resp.ID,
		UserName:  resp.UserName,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	})
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	authReq := auth.LoginRequest{Email: req.Email, Password: req.Password}
	var resp auth.TokenResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "login", json.Marshal, json.Unmarshal, &authReq, &resp,
	); err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTokenResponse(resp))
}

// Refresh handles token refresh.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return badRequest(c, "Refresh token is required")
	}

	authReq := auth.RefreshRequest{RefreshToken: req.RefreshToken}
	var resp auth.TokenResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.authContainer, "refresh-token", json.Marshal, json.Unmarshal, &authReq, &resp,
	); err != nil {
		return unauthorized(c, "Invalid or expired refresh token")
	}

	return c.Status(fiber.StatusOK).JSON(toTokenResponse(resp))
}

// Profile returns the authenticated user's account.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	user, err := h.authAdapter.GetUser(c.UserContext(), claims.UserID)
	if err != nil {
		h.logger.Error("Failed to load profile", "userID", claims.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve user profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(UserResponse{
		ID:        user.ID.String(),
		UserName:  user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// ListTaskLists returns the caller's task lists.
func (h *Handlers) ListTaskLists(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	lists, err := h.tasks.ListTaskLists(c.UserContext(), claims.UserID)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	if lists == nil {
		lists = []tasklist.TaskList{}
	}
	return c.Status(fiber.StatusOK).JSON(TaskListsResponse{TaskLists: lists})
}

// CreateTaskList creates a task list owned by the caller.
func (h *Handlers) CreateTaskList(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	var req CreateTaskListRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return badRequest(c, "Name is required")
	}

	list, err := h.tasks.CreateTaskList(c.UserContext(), claims.UserID, req.Name)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

// ListTasks returns the tasks of one of the caller's lists.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid list id")
	}

	items, err := h.tasks.ListTasks(c.UserContext(), claims.UserID, listID)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	if items == nil {
		items = []tasklist.Task{}
	}
	return c.Status(fiber.StatusOK).JSON(TasksResponse{Tasks: items})
}

// AddTask adds a task to one of the caller's lists.
func (h *Handlers) AddTask(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid list id")
	}

	var req AddTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return badRequest(c, "Content is required")
	}

	task, err := h.tasks.AddTask(c.UserContext(), claims.UserID, listID, req.Content)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// CompleteTask marks one of the caller's tasks as completed.
func (h *Handlers) CompleteTask(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}

	if err := h.tasks.CompleteTask(c.UserContext(), claims.UserID, taskID); err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(CompleteTaskResponse{
		TaskID:    taskID.String(),
		Completed: true,
	})
}

// Activity returns the caller's recent activity.
func (h *Handlers) Activity(c *fiber.Ctx) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return unauthorized(c, "User not authenticated")
	}

	limit := c.QueryInt("limit", defaultActivityLimit)
	if limit <= 0 {
		return badRequest(c, "Limit must be positive")
	}

	entries, err := h.activity.Recent(c.UserContext(), claims.UserID, limit)
	if err != nil {
		h.logger.Error("Failed to load activity", "userID", claims.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve activity",
		})
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	return c.Status(fiber.StatusOK).JSON(ActivityResponse{Entries: entries})
}

// handleTaskError maps the task error taxonomy to HTTP responses.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tasklist.ErrDataIntegrity):
		h.logger.Error("Data integrity violation", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	case errors.Is(err, tasklist.ErrTaskListNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task list not found",
		})
	case errors.Is(err, tasklist.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	case errors.Is(err, tasklist.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
			Error:   "forbidden",
			Message: "Access denied",
		})
	case errors.Is(err, tasks.ErrInvalidRequest):
		return badRequest(c, err.Error())
	default:
		h.logger.Error("Task request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

// handleAuthError matches auth service error messages, since request-reply
// errors only carry their text across the service boundary.
func (h *Handlers) handleAuthError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, auth.ErrInvalidCredentials.Error()):
		return unauthorized(c, "Invalid email or password")
	case strings.Contains(errStr, auth.ErrUserExists.Error()):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "User with this email already exists",
		})
	case strings.Contains(errStr, auth.ErrInvalidEmail.Error()):
		return badRequest(c, "Invalid email format")
	case strings.Contains(errStr, auth.ErrNameRequired.Error()):
		return badRequest(c, "User name is required")
	case strings.Contains(errStr, auth.ErrWeakPassword.Error()):
		return badRequest(c, "Password must be at least 8 characters")
	case strings.Contains(errStr, auth.ErrPasswordTooLong.Error()):
		return badRequest(c, "Password must be at most 72 characters")
	default:
		h.logger.Error("Auth request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

func toTokenResponse(resp auth.TokenResponse) TokenResponse {
	return TokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		TokenType:    resp.TokenType,
	}
}
