package gifts

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	perrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func testServiceLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type fakePackageRepo struct {
	packages map[int]*models.GiftPackage
	err      error
}

func (f *fakePackageRepo) ListActive(context.Context) ([]models.GiftPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.GiftPackage
	for _, pkg := range f.packages {
		if pkg.IsActive {
			out = append(out, *pkg)
		}
	}
	return out, nil
}

func (f *fakePackageRepo) ByID(_ context.Context, id int) (*models.GiftPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.packages[id], nil
}

type fakeProductLister struct {
	products []models.Product
	err      error
}

func (f *fakeProductLister) ListActiveWithOptions(context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func newGiftService(t *testing.T, packages PackageRepo, catalog ProductLister) *Service {
	t.Helper()
	svc, err := NewService(packages, catalog, testServiceLogger(), metrics.NewGiftMetrics(prometheus.NewRegistry()))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func oranzko(t *testing.T) *models.GiftPackage {
	t.Helper()
	return &models.GiftPackage{
		ID:        4,
		Name:      "Paket oranžko",
		BasePrice: dec(t, "16.00"),
		IsActive:  true,
	}
}

func TestResolvePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("full catalog resolves every line at the fixed price", func(t *testing.T) {
		svc := newGiftService(t,
			&fakePackageRepo{packages: map[int]*models.GiftPackage{4: oranzko(t)}},
			&fakeProductLister{products: testCatalog(t)},
		)

		resolved, err := svc.ResolvePackage(ctx, 4, "", enums.LocaleSL)
		if err != nil {
			t.Fatalf("ResolvePackage: %v", err)
		}
		if len(resolved.Lines) != 2 || len(resolved.Components) != 2 {
			t.Fatalf("expected 2 lines and 2 components, got %d and %d",
				len(resolved.Lines), len(resolved.Components))
		}
		if !resolved.Total.Equal(dec(t, "16.00")) {
			t.Fatalf("expected total 16.00, got %s", resolved.Total)
		}
	})

	t.Run("message fee applies regardless of resolved line count", func(t *testing.T) {
		for _, catalog := range [][]models.Product{testCatalog(t), nil} {
			svc := newGiftService(t,
				&fakePackageRepo{packages: map[int]*models.GiftPackage{4: oranzko(t)}},
				&fakeProductLister{products: catalog},
			)
			resolved, err := svc.ResolvePackage(ctx, 4, "Za babico", enums.LocaleSL)
			if err != nil {
				t.Fatalf("ResolvePackage: %v", err)
			}
			if !resolved.Total.Equal(dec(t, "19.00")) {
				t.Fatalf("expected total 19.00 with a message, got %s", resolved.Total)
			}
		}
	})

	t.Run("empty catalog still sells the bundle with no components", func(t *testing.T) {
		svc := newGiftService(t,
			&fakePackageRepo{packages: map[int]*models.GiftPackage{4: oranzko(t)}},
			&fakeProductLister{},
		)
		resolved, err := svc.ResolvePackage(ctx, 4, "", enums.LocaleSL)
		if err != nil {
			t.Fatalf("ResolvePackage: %v", err)
		}
		if len(resolved.Components) != 0 {
			t.Fatalf("expected no components, got %d", len(resolved.Components))
		}
		if !resolved.Total.Equal(dec(t, "16.00")) {
			t.Fatalf("expected total 16.00, got %s", resolved.Total)
		}
	})

	t.Run("unknown package id is not found", func(t *testing.T) {
		svc := newGiftService(t,
			&fakePackageRepo{packages: map[int]*models.GiftPackage{}},
			&fakeProductLister{},
		)
		_, err := svc.ResolvePackage(ctx, 99, "", enums.LocaleSL)
		if !perrors.IsCode(err, perrors.CodeNotFound) {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("inactive package is not found", func(t *testing.T) {
		pkg := oranzko(t)
		pkg.IsActive = false
		svc := newGiftService(t,
			&fakePackageRepo{packages: map[int]*models.GiftPackage{4: pkg}},
			&fakeProductLister{},
		)
		_, err := svc.ResolvePackage(ctx, 4, "", enums.LocaleSL)
		if !perrors.IsCode(err, perrors.CodeNotFound) {
			t.Fatalf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("catalog failure surfaces as a dependency error", func(t *testing.T) {
		svc := newGiftService(t,
			&fakePackageRepo{packages: map[int]*models.GiftPackage{4: oranzko(t)}},
			&fakeProductLister{err: errors.New("catalog down")},
		)
		_, err := svc.ResolvePackage(ctx, 4, "", enums.LocaleSL)
		if !perrors.IsCode(err, perrors.CodeDependency) {
			t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
		}
	})
}

func TestListPackages(t *testing.T) {
	t.Run("returns only active packages", func(t *testing.T) {
		inactive := oranzko(t)
		inactive.ID = 5
		inactive.IsActive = false
		svc := newGiftService(t,
			&fakePackageRepo{packages: map[int]*models.GiftPackage{4: oranzko(t), 5: inactive}},
			&fakeProductLister{},
		)
		list, err := svc.ListPackages(context.Background())
		if err != nil {
			t.Fatalf("ListPackages: %v", err)
		}
		if len(list) != 1 || list[0].ID != 4 {
			t.Fatalf("expected only package 4, got %+v", list)
		}
	})

	t.Run("repo failure surfaces as a dependency error", func(t *testing.T) {
		svc := newGiftService(t,
			&fakePackageRepo{err: errors.New("db down")},
			&fakeProductLister{},
		)
		_, err := svc.ListPackages(context.Background())
		if !perrors.IsCode(err, perrors.CodeDependency) {
			t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
		}
	})
}
