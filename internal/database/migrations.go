package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations executes all database migrations
func RunMigrations(db *gorm.DB) error {
	// Create indexes for better performance
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Composite index for the cause-list filter query: every list and
	// calendar request narrows by registry and a hearing-date window
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cause_lists_registry_date
		ON cause_lists(registry_id, hearing_date)
	`).Error; err != nil {
		return err
	}

	// Index for judge-scoped cause-list views
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cause_lists_judge
		ON cause_lists(judge_id, hearing_date)
	`).Error; err != nil {
		return err
	}

	// Index for judges listed per registry
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_judges_registry
		ON judges(registry_id, status)
	`).Error; err != nil {
		return err
	}

	return nil
}
