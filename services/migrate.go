package services

import (
	"fmt"

	"tasktracker/model"

	"gorm.io/gorm"
)

// Migrate provisions the three tables and their cascade foreign keys. It is
// idempotent; the server runs it once before serving traffic and the setup
// endpoint re-runs it on demand.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Tasks{}, &model.Objective{}, &model.TaskLog{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
