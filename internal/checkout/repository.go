package checkout

import (
	"context"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// OrderRepository persists orders and their frozen line items.
type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(ctx context.Context, order *models.Order) error
	ByNumber(ctx context.Context, number string) (*models.Order, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) OrderRepository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *repository) WithTx(tx *gorm.DB) OrderRepository {
	return &repository{db: tx}
}

// Create inserts an order together with its line items.
func (r *repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// ByNumber loads an order with line items.
func (r *repository) ByNumber(ctx context.Context, number string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&order, "number = ?", number).
		Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
