package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/models"
)

// Migrate creates or extends the tables. It is safe to run on every start.
// sales_staff goes first since projects reference it.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&models.SalesStaff{},
		&models.Engineer{},
		&models.Project{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("database migrated")
	return nil
}
