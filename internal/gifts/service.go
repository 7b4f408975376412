package gifts

import (
	"context"
	"errors"
	"strconv"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	perrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/metrics"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// PackageRepo loads gift package records.
type PackageRepo interface {
	ListActive(ctx context.Context) ([]models.GiftPackage, error)
	ByID(ctx context.Context, id int) (*models.GiftPackage, error)
}

// ProductLister provides the full active catalog with options attached.
type ProductLister interface {
	ListActiveWithOptions(ctx context.Context) ([]models.Product, error)
}

// ResolvedPackage is a gift package with its components matched against the
// current catalog.
type ResolvedPackage struct {
	Package    models.GiftPackage
	Lines      []ResolvedLine
	Components []types.GiftComponent
	Total      decimal.Decimal
}

type Service struct {
	packages PackageRepo
	catalog  ProductLister
	log      *logger.Logger
	metrics  *metrics.GiftMetrics
}

func NewService(packages PackageRepo, catalog ProductLister, log *logger.Logger, giftMetrics *metrics.GiftMetrics) (*Service, error) {
	if packages == nil {
		return nil, errors.New("gifts: package repo is required")
	}
	if catalog == nil {
		return nil, errors.New("gifts: product lister is required")
	}
	if log == nil {
		return nil, errors.New("gifts: logger is required")
	}
	if giftMetrics == nil {
		return nil, errors.New("gifts: metrics are required")
	}
	return &Service{packages: packages, catalog: catalog, log: log, metrics: giftMetrics}, nil
}

// ListPackages returns the active gift packages without resolving contents.
func (s *Service) ListPackages(ctx context.Context) ([]models.GiftPackage, error) {
	list, err := s.packages.ListActive(ctx)
	if err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "listing gift packages")
	}
	return list, nil
}

// ResolvePackage loads one package and matches its presets against the live
// catalog. A shortfall in resolved lines is not an error: the bundle is shown
// and sold with whatever resolved, at the fixed package price. The shortfall
// is logged and counted so catalog drift does not go unnoticed.
func (s *Service) ResolvePackage(ctx context.Context, packageID int, message string, locale enums.Locale) (*ResolvedPackage, error) {
	pkg, err := s.packages.ByID(ctx, packageID)
	if err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "loading gift package")
	}
	if pkg == nil || !pkg.IsActive {
		return nil, perrors.New(perrors.CodeNotFound, "gift package not found")
	}

	products, err := s.catalog.ListActiveWithOptions(ctx)
	if err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "loading catalog for gift resolution")
	}

	defs := presetTable[packageID]
	lines := Resolve(packageID, products)

	label := strconv.Itoa(packageID)
	s.metrics.BundlesResolved.WithLabelValues(label).Inc()
	if dropped := len(defs) - len(lines); dropped > 0 {
		s.metrics.UnresolvedPresetLines.WithLabelValues(label).Add(float64(dropped))
		ctx = s.log.WithFields(ctx, map[string]any{
			"gift_package_id": packageID,
			"defined_lines":   len(defs),
			"resolved_lines":  len(lines),
		})
		s.log.Warn(ctx, "gift package resolved with missing components")
	}

	return &ResolvedPackage{
		Package:    *pkg,
		Lines:      lines,
		Components: BuildCartComponents(lines, locale),
		Total:      ChargedTotal(pkg.BasePrice, message),
	}, nil
}
