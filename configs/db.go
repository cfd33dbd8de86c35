package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jordan10001/soramatcha-admin/entity"
)

// ConnectDB opens the row gateway. A nil *gorm.DB (no DB_SOURCE) is a valid
// degraded state: every action then answers "not configured" instead of
// crashing the process.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	if !cfg.DBConfigured() {
		return nil, nil
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{},
		&entity.Menu{},
		&entity.Event{},
	)
}
