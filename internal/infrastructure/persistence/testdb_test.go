package persistence

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated to the full
// schema. Each test gets its own database, named after the test so
// parallel packages cannot collide.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(Models()...))

	// the default category every zero-category item falls back to
	defaultCat, err := catalog.NewCategory("uncategorized", "Uncategorized")
	require.NoError(t, err)
	defaultCat.ID = 1
	require.NoError(t, db.Create(defaultCat).Error)

	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string, inventory int) *catalog.MenuItem {
	t.Helper()

	item, err := catalog.NewMenuItem(title, decimal.RequireFromString(price), inventory, 0)
	require.NoError(t, err)
	repo := NewGormMenuItemRepository(db)
	require.NoError(t, repo.Save(context.Background(), item))
	return item
}
