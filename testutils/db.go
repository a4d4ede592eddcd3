// Package testutils builds throwaway stores and fixtures for package tests.
package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Antdol/LittleLemonAPI/configs"
	"github.com/Antdol/LittleLemonAPI/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB returns a migrated private in-memory SQLite store.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := configs.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the PRAGMA and the in-memory database alive together
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

// CreateUser stores a user whose password equals its username and puts it
// into the given groups.
func CreateUser(t testing.TB, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(username), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, Email: username + "@example.com", Password: string(hash)}
	require.NoError(t, db.Create(u).Error)
	for _, g := range groups {
		AddToGroup(t, db, u, g)
	}
	return u
}

func AddToGroup(t testing.TB, db *gorm.DB, u *entity.User, group string) {
	t.Helper()
	var g entity.Group
	require.NoError(t, db.Where("name = ?", group).First(&g).Error)
	require.NoError(t, db.Model(u).Association("Groups").Append(&g))
}

func CreateCategory(t testing.TB, db *gorm.DB, slug string) *entity.Category {
	t.Helper()
	c := &entity.Category{Slug: slug, Title: strings.ToUpper(slug[:1]) + slug[1:]}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateMenuItem(t testing.TB, db *gorm.DB, cat *entity.Category, title, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Title: title, Price: decimal.RequireFromString(price), CategoryID: cat.ID}
	require.NoError(t, db.Create(m).Error)
	return m
}
