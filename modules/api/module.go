package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/KodFikirSanat/focussuite/modules/activity"
	"github.com/KodFikirSanat/focussuite/modules/auth"
	"github.com/KodFikirSanat/focussuite/modules/tasks"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP API module.
type APIModule struct {
	port   int
	app    *fiber.App
	logger types.Logger

	authContainer mono.ServiceContainer
	authAdapter   auth.AuthPort
	taskPort      tasks.TaskPort
	activityPort  activity.ActivityPort
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates a new APIModule listening on port.
func NewModule(port int, logger types.Logger) *APIModule {
	return &APIModule{
		port:   port,
		logger: logger,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"auth", "tasks", "activity"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authContainer = container
		m.authAdapter = auth.NewAuthAdapter(container)
	case "tasks":
		m.taskPort = tasks.NewTaskAdapter(container)
	case "activity":
		m.activityPort = activity.NewActivityAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	switch {
	case m.authContainer == nil:
		return fmt.Errorf("auth dependency not set")
	case m.taskPort == nil:
		return fmt.Errorf("tasks dependency not set")
	case m.activityPort == nil:
		return fmt.Errorf("activity dependency not set")
	}

	handlers := NewHandlers(m.authContainer, m.authAdapter, m.taskPort, m.activityPort, m.logger)
	m.app = newApp(handlers, m.authAdapter)

	addr := fmt.Sprintf(":%d", m.port)
	go func() {
		if err := m.app.Listen(addr); err != nil {
			m.logger.Error("HTTP server error", "error", err)
		}
	}()

	m.logger.Info("HTTP server started", "addr", addr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server")
	if err := m.app.ShutdownWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "not started",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// newApp builds the fiber application with middleware and routes.
func newApp(handlers *Handlers, authPort auth.AuthPort) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	setupRoutes(app, handlers, authPort)
	return app
}

// setupRoutes configures all API routes.
func setupRoutes(app *fiber.App, handlers *Handlers, authPort auth.AuthPort) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	v1 := app.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", handlers.Register)
	authRoutes.Post("/login", handlers.Login)
	authRoutes.Post("/refresh", handlers.Refresh)

	// Registered after the public routes, so /auth/* never reaches it.
	protected := v1.Group("")
	protected.Use(AuthMiddleware(authPort))
	protected.Get("/profile", handlers.Profile)
	protected.Get("/lists", handlers.ListTaskLists)
	protected.Post("/lists", handlers.CreateTaskList)
	protected.Get("/lists/:id/tasks", handlers.ListTasks)
	protected.Post("/lists/:id/tasks", handlers.AddTask)
	protected.Post("/tasks/:id/complete", handlers.CompleteTask)
	protected.Get("/activity", handlers.Activity)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
