package services

import (
	"fmt"
	"testing"

	"backend/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite DB per test and migrates the
// full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()

	u := &entity.User{Username: username, Email: username + "@littlelemon.test", Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createCategory(t *testing.T, db *gorm.DB, title, slug string) *entity.Category {
	t.Helper()

	cat := &entity.Category{Title: title, Slug: slug}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func createMenuItem(t *testing.T, db *gorm.DB, title, price string, categoryID uint) *entity.MenuItem {
	t.Helper()

	item := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// requireDecimalEqual compares by value; decimal.Decimal is not comparable
// with assert.Equal.
func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
