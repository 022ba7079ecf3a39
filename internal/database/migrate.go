package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/internal/models"
)

// Models lists every table owned by the application, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.HealthProfile{},
		&models.ScanRecord{},
		&models.UnlockedAchievement{},
	}
}

// RunMigrations brings the schema up to date for every model
func RunMigrations(db *gorm.DB) error {
	log.Printf("[Database] Running auto-migration on %s", db.Dialector.Name())
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	log.Printf("[Database] Migrations complete")
	return nil
}

// DropAll removes every application table. Used by the migrate command's reset flag.
func DropAll(db *gorm.DB) error {
	all := Models()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", all[i], err)
		}
	}
	return nil
}
