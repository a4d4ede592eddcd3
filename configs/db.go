package configs

import (
	"strings"

	"github.com/Antdol/LittleLemonAPI/entity"

	"github.com/cockroachdb/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionDB opens the store selected by DB_DRIVER.
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.DBDriver) {
	case "sqlite", "sqlite3", "":
		dialector = sqlite.Open(cfg.DBSource)
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DBSource)
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	default:
		return nil, errors.Newf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return Open(dialector)
}

// Open applies the settings every store shares. TranslateError lets
// services detect unique violations as gorm.ErrDuplicatedKey on any dialect.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, errors.Wrap(err, "enable sqlite foreign keys")
		}
	}
	return db, nil
}

// SetupDatabase migrates the schema and makes sure both role groups exist.
func SetupDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return SeedGroups(db)
}
