package catalog

import (
	"context"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  name_en TEXT,
  name_de TEXT,
  name_it TEXT,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	options := `
CREATE TABLE IF NOT EXISTS package_options (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  description TEXT,
  weight TEXT,
  unit TEXT,
  price NUMERIC NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(options).Error)
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, position int, active bool) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:       uuid.New(),
		Slug:     uuid.NewString(),
		Name:     name,
		IsActive: active,
		Position: position,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createOption(t *testing.T, db *gorm.DB, productID uuid.UUID, weight, unit string, price string, position int) *models.PackageOption {
	t.Helper()

	parsed, err := decimal.NewFromString(price)
	require.NoError(t, err)
	option := &models.PackageOption{
		ID:        uuid.New(),
		ProductID: productID,
		Weight:    &weight,
		Unit:      &unit,
		Price:     parsed,
		Position:  position,
	}
	require.NoError(t, db.Create(option).Error)
	return option
}

func TestRepositoryListActiveWithOptions(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	second := createProduct(t, db, "Bučna semena", 2, true)
	first := createProduct(t, db, "Bučno olje", 1, true)
	createProduct(t, db, "Umaknjen izdelek", 3, false)

	createOption(t, db, first.ID, "1", "l", "20.00", 2)
	createOption(t, db, first.ID, "0,5", "l", "12.00", 1)
	createOption(t, db, second.ID, "200", "g", "6.00", 1)

	rows, err := repo.ListActiveWithOptions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, first.ID, rows[0].ID, "products should come back in position order")
	assert.Equal(t, second.ID, rows[1].ID)

	require.Len(t, rows[0].Options, 2)
	assert.Equal(t, "0,5", *rows[0].Options[0].Weight, "options should come back in position order")
	assert.Equal(t, "1", *rows[0].Options[1].Weight)
}

func TestRepositoryBySlug(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := createProduct(t, db, "Bučno olje", 1, true)
	createOption(t, db, product.ID, "0,5", "l", "12.00", 1)

	t.Run("active product is found with options", func(t *testing.T) {
		got, err := repo.BySlug(ctx, product.Slug)
		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
		assert.Len(t, got.Options, 1)
	})

	t.Run("missing slug returns gorm.ErrRecordNotFound", func(t *testing.T) {
		_, err := repo.BySlug(ctx, "no-such-slug")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("inactive product is hidden", func(t *testing.T) {
		inactive := createProduct(t, db, "Umaknjen izdelek", 5, false)
		_, err := repo.BySlug(ctx, inactive.Slug)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepositoryOptionByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := createProduct(t, db, "Bučno olje", 1, true)
	option := createOption(t, db, product.ID, "0,5", "l", "12.00", 1)

	gotOption, gotProduct, err := repo.OptionByID(ctx, option.ID.String())
	require.NoError(t, err)
	assert.Equal(t, option.ID, gotOption.ID)
	assert.Equal(t, product.ID, gotProduct.ID)
	assert.True(t, gotOption.Price.Equal(decimal.RequireFromString("12.00")))

	_, _, err = repo.OptionByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
