package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/RuthraVed/team-project-planner/internal/bootstrap"
	"github.com/RuthraVed/team-project-planner/internal/config"
	"github.com/RuthraVed/team-project-planner/internal/db"
	"github.com/RuthraVed/team-project-planner/internal/export"
	"github.com/RuthraVed/team-project-planner/internal/handlers"
	"github.com/RuthraVed/team-project-planner/internal/router"
	"github.com/RuthraVed/team-project-planner/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userService := services.NewUserService(conn, logger)
	teamService := services.NewTeamService(conn, userService, logger)
	boardService := services.NewBoardService(conn, teamService, export.NewFileWriter(cfg.ExportDir), logger)
	taskService := services.NewTaskService(conn, teamService, logger)

	if cfg.SeedDir != "" {
		loader := bootstrap.NewLoader(userService, teamService, boardService, taskService, logger)
		if err := loader.Load(cfg.SeedDir); err != nil {
			log.Fatalf("Failed to load seed data: %v", err)
		}
	}

	h := handlers.New(userService, teamService, boardService, taskService, logger)
	r := router.New(h, logger)

	logger.Info("starting server", slog.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
