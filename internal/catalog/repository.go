package catalog

import (
	"context"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository provides read access to the product catalog.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListActiveWithOptions returns every active product in display order with
// its options attached in stored order.
func (r *Repository) ListActiveWithOptions(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("is_active = ?", true).
		Order("position ASC").
		Find(&rows).
		Error
	return rows, err
}

// BySlug loads one active product with options.
func (r *Repository) BySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("is_active = ?", true).
		First(&product, "slug = ?", slug).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// OptionByID loads one option together with its owning product.
func (r *Repository) OptionByID(ctx context.Context, id string) (*models.PackageOption, *models.Product, error) {
	var option models.PackageOption
	if err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", option.ProductID).Error; err != nil {
		return nil, nil, err
	}
	return &option, &product, nil
}
