package storage

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tutoring_queue/internal/config"
	"tutoring_queue/internal/models"
)

// ConnectDatabase opens the Postgres database holding the account directory
// and migrates the accounts table.
func ConnectDatabase(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Account{}); err != nil {
		return nil, fmt.Errorf("migrate accounts: %w", err)
	}

	slog.Info("database connected", "host", cfg.Host, "name", cfg.Name)
	return db, nil
}
