package configs

import (
	"log/slog"

	"github.com/Antdol/LittleLemonAPI/entity"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedGroups(db *gorm.DB) error {
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return errors.Wrapf(err, "seed group %s", name)
		}
	}
	return nil
}

// SeedAdmin creates the superuser from ADMIN_* on first start.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		slog.Info("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("admin already exists", "username", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return errors.Wrap(err, "create admin")
	}
	slog.Info("admin seeded", "username", admin.Username)
	return nil
}

var defaultCategories = []entity.Category{
	{Slug: "appetizers", Title: "Appetizers"},
	{Slug: "mains", Title: "Mains"},
	{Slug: "desserts", Title: "Desserts"},
	{Slug: "drinks", Title: "Drinks"},
}

// SeedCategories fills an empty category table.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	cats := make([]entity.Category, len(defaultCategories))
	copy(cats, defaultCategories)
	if err := db.Create(&cats).Error; err != nil {
		return errors.Wrap(err, "seed categories")
	}
	slog.Info("categories seeded", "count", len(cats))
	return nil
}
