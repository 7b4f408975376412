package gifts

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
)

// Repository reads gift packages. Bundle contents never live in the
// database, so this stays read-only and interface-free.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListActive(ctx context.Context) ([]models.GiftPackage, error) {
	var packages []models.GiftPackage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *Repository) ByID(ctx context.Context, id int) (*models.GiftPackage, error) {
	var pkg models.GiftPackage
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}
