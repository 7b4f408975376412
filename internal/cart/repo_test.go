package cart

import (
	"context"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	carts := `
CREATE TABLE IF NOT EXISTS cart_records (
  id TEXT PRIMARY KEY,
  token TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  cart_id TEXT NOT NULL,
  kind TEXT NOT NULL DEFAULT 'product',
  product_id TEXT,
  option_id TEXT,
  gift_package_id INTEGER,
  gift_message TEXT,
  components TEXT,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  line_subtotal NUMERIC NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(carts).Error)
	require.NoError(t, db.Exec(items).Error)
	return db
}

func createCart(t *testing.T, db *gorm.DB) *models.CartRecord {
	t.Helper()
	cart := &models.CartRecord{
		ID:     uuid.New(),
		Token:  uuid.NewString(),
		Status: enums.CartStatusActive,
	}
	require.NoError(t, db.Create(cart).Error)
	return cart
}

func TestRepositoryCartRoundTrip(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	cart := createCart(t, db)

	packageID := 4
	message := "Vse najboljše"
	gift := &models.CartItem{
		ID:            uuid.New(),
		CartID:        cart.ID,
		Kind:          enums.CartItemKindGift,
		GiftPackageID: &packageID,
		GiftMessage:   &message,
		Components: []types.GiftComponent{
			{OptionID: uuid.NewString(), ProductID: uuid.NewString(), Quantity: 1, Price: decimal.RequireFromString("12.00"), Name: "Bučno olje"},
		},
		Name:         "Paket oranžko",
		Quantity:     1,
		UnitPrice:    decimal.RequireFromString("19.00"),
		LineSubtotal: decimal.RequireFromString("19.00"),
	}
	require.NoError(t, repo.AddItem(ctx, gift))

	got, err := repo.FindByToken(ctx, cart.Token)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	item := got.Items[0]
	assert.Equal(t, enums.CartItemKindGift, item.Kind)
	require.NotNil(t, item.GiftPackageID)
	assert.Equal(t, 4, *item.GiftPackageID)
	require.Len(t, item.Components, 1)
	assert.Equal(t, "Bučno olje", item.Components[0].Name)
	assert.True(t, item.LineSubtotal.Equal(decimal.RequireFromString("19.00")))
}

func TestRepositoryFindByTokenMissing(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryRemoveItem(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	cart := createCart(t, db)
	item := &models.CartItem{
		ID:           uuid.New(),
		CartID:       cart.ID,
		Kind:         enums.CartItemKindProduct,
		Name:         "Bučno olje",
		Quantity:     1,
		UnitPrice:    decimal.RequireFromString("12.00"),
		LineSubtotal: decimal.RequireFromString("12.00"),
	}
	require.NoError(t, repo.AddItem(ctx, item))

	t.Run("item in another cart is not removable", func(t *testing.T) {
		other := createCart(t, db)
		err := repo.RemoveItem(ctx, other.ID, item.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("own item is removed", func(t *testing.T) {
		require.NoError(t, repo.RemoveItem(ctx, cart.ID, item.ID))
		got, err := repo.FindByToken(ctx, cart.Token)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})
}

func TestRepositorySetStatus(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	cart := createCart(t, db)
	require.NoError(t, repo.SetStatus(ctx, cart.ID, enums.CartStatusCheckedOut.String()))

	got, err := repo.FindByToken(ctx, cart.Token)
	require.NoError(t, err)
	assert.Equal(t, enums.CartStatusCheckedOut, got.Status)
}
