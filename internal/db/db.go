package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RuthraVed/team-project-planner/internal/models"
)

// Connect opens the store for the given DSN. Postgres DSNs are recognized
// by their scheme; anything else is treated as a SQLite file path, which
// is the default deployment.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	return gorm.Open(sqlite.Open(dsn), cfg)
}

// Migrate creates any missing tables, including the team_members join table.
func Migrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Team{},
		&models.Board{},
		&models.Task{},
	}

	migrator := conn.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := conn.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
