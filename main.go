package main

import (
	"context"
	"log"
	"os"

	"github.com/KodFikirSanat/focussuite/database"
	"github.com/KodFikirSanat/focussuite/modules/activity"
	"github.com/KodFikirSanat/focussuite/modules/api"
	"github.com/KodFikirSanat/focussuite/modules/auth"
	"github.com/KodFikirSanat/focussuite/modules/tasks"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := loadConfig()

	log.Println("=== FocusSuite ===")
	log.Printf("Database: %s", cfg.DBPath)
	log.Printf("HTTP Port: %d", cfg.HTTPPort)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	version, err := database.Migrate(context.Background(), db)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Printf("Schema version: %d", version)

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	logger := app.Logger()

	// Order: providers first, then the api module that depends on them.
	app.Register(auth.NewModule(db, cfg.Token, logger).WithBcryptCost(cfg.BcryptCost))
	app.Register(tasks.NewModule(db, logger))
	app.Register(activity.NewModule(cfg.ActivityFeedSize, logger))
	app.Register(api.NewModule(cfg.HTTPPort, logger))

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg.HTTPPort)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
			"database": func(ctx context.Context) error {
				return database.Close(db)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/v1/auth/register        - Register a new user")
	log.Println("  POST   /api/v1/auth/login           - Login and get tokens")
	log.Println("  POST   /api/v1/auth/refresh         - Refresh access token")
	log.Println("  GET    /health                      - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/v1/profile              - Current user")
	log.Println("  GET    /api/v1/lists                - List task lists")
	log.Println("  POST   /api/v1/lists                - Create a task list")
	log.Println("  GET    /api/v1/lists/:id/tasks      - List tasks of a list")
	log.Println("  POST   /api/v1/lists/:id/tasks      - Add a task")
	log.Println("  POST   /api/v1/tasks/:id/complete   - Complete a task")
	log.Println("  GET    /api/v1/activity             - Recent activity")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
