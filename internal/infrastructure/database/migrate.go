package database

import (
	"fmt"

	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables. Columns are never dropped.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Appointment{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
