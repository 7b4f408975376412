package catalog

import (
	"context"
	"errors"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	perrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"gorm.io/gorm"
)

// CatalogRepository is the persistence surface the service consumes.
type CatalogRepository interface {
	ListActiveWithOptions(ctx context.Context) ([]models.Product, error)
	BySlug(ctx context.Context, slug string) (*models.Product, error)
}

type Service struct {
	repo CatalogRepository
	log  *logger.Logger
}

func NewService(repo CatalogRepository, log *logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("catalog: repository is required")
	}
	if log == nil {
		return nil, errors.New("catalog: logger is required")
	}
	return &Service{repo: repo, log: log}, nil
}

// ListProducts returns the active catalog localized for the caller.
func (s *Service) ListProducts(ctx context.Context, locale enums.Locale) ([]ProductView, error) {
	products, err := s.repo.ListActiveWithOptions(ctx)
	if err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "listing products")
	}
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product, locale))
	}
	return views, nil
}

// GetProduct returns one active product by slug.
func (s *Service) GetProduct(ctx context.Context, slug string, locale enums.Locale) (*ProductView, error) {
	product, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.New(perrors.CodeNotFound, "product not found")
		}
		return nil, perrors.Wrap(perrors.CodeDependency, err, "loading product")
	}
	view := toProductView(*product, locale)
	return &view, nil
}
