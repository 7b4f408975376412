package cart

import (
	"context"
	"errors"

	"github.com/farmshop-si/farmshop-backend/internal/gifts"
	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	perrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptionFinder resolves a package option and its owning product.
type OptionFinder interface {
	OptionByID(ctx context.Context, id string) (*models.PackageOption, *models.Product, error)
}

// GiftResolver turns a package id into a priced, component-resolved bundle.
type GiftResolver interface {
	ResolvePackage(ctx context.Context, packageID int, message string, locale enums.Locale) (*gifts.ResolvedPackage, error)
}

type Service struct {
	repo    CartRepository
	options OptionFinder
	gifts   GiftResolver
	log     *logger.Logger
}

func NewService(repo CartRepository, options OptionFinder, giftResolver GiftResolver, log *logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("cart: repository is required")
	}
	if options == nil {
		return nil, errors.New("cart: option finder is required")
	}
	if giftResolver == nil {
		return nil, errors.New("cart: gift resolver is required")
	}
	if log == nil {
		return nil, errors.New("cart: logger is required")
	}
	return &Service{repo: repo, options: options, gifts: giftResolver, log: log}, nil
}

// GetOrCreate returns the active cart for a token, minting a new cart (and
// token) when the token is empty or unknown.
func (s *Service) GetOrCreate(ctx context.Context, token string) (*View, error) {
	cart, err := s.loadOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	view := toView(cart)
	return &view, nil
}

func (s *Service) loadOrCreate(ctx context.Context, token string) (*models.CartRecord, error) {
	if token != "" {
		cart, err := s.repo.FindByToken(ctx, token)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.Wrap(perrors.CodeDependency, err, "loading cart")
		}
	}
	cart := &models.CartRecord{
		ID:     uuid.New(),
		Token:  uuid.NewString(),
		Status: enums.CartStatusActive,
	}
	if err := s.repo.Create(ctx, cart); err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "creating cart")
	}
	return cart, nil
}

func (s *Service) loadActive(ctx context.Context, token string) (*models.CartRecord, error) {
	cart, err := s.loadOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	if cart.Status != enums.CartStatusActive {
		return nil, perrors.New(perrors.CodeStateConflict, "cart is no longer active")
	}
	return cart, nil
}

// AddProduct adds a product option line, merging quantities into an existing
// line for the same option.
func (s *Service) AddProduct(ctx context.Context, token string, optionID uuid.UUID, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, perrors.New(perrors.CodeValidation, "quantity must be at least 1")
	}
	cart, err := s.loadActive(ctx, token)
	if err != nil {
		return nil, err
	}

	option, product, err := s.options.OptionByID(ctx, optionID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.New(perrors.CodeNotFound, "package option not found")
		}
		return nil, perrors.Wrap(perrors.CodeDependency, err, "loading package option")
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		if item.Kind != enums.CartItemKindProduct || item.OptionID == nil || *item.OptionID != option.ID {
			continue
		}
		item.Quantity += quantity
		item.LineSubtotal = item.UnitPrice.Mul(decimalFromInt(item.Quantity))
		if err := s.repo.UpdateItem(ctx, item); err != nil {
			return nil, perrors.Wrap(perrors.CodeDependency, err, "updating cart line")
		}
		return s.reload(ctx, cart.Token)
	}

	item := &models.CartItem{
		ID:           uuid.New(),
		CartID:       cart.ID,
		Kind:         enums.CartItemKindProduct,
		ProductID:    &product.ID,
		OptionID:     &option.ID,
		Name:         product.Name,
		Quantity:     quantity,
		UnitPrice:    option.Price,
		LineSubtotal: option.Price.Mul(decimalFromInt(quantity)),
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "adding cart line")
	}
	return s.reload(ctx, cart.Token)
}

// AddGift resolves a gift package and adds it as a single fixed-price line
// carrying the component snapshot. Bundles never merge; a second add is a
// second gift.
func (s *Service) AddGift(ctx context.Context, token string, packageID int, message string, locale enums.Locale) (*View, error) {
	cart, err := s.loadActive(ctx, token)
	if err != nil {
		return nil, err
	}

	resolved, err := s.gifts.ResolvePackage(ctx, packageID, message, locale)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		ID:            uuid.New(),
		CartID:        cart.ID,
		Kind:          enums.CartItemKindGift,
		GiftPackageID: &resolved.Package.ID,
		Components:    resolved.Components,
		Name:          resolved.Package.Name,
		Quantity:      1,
		UnitPrice:     resolved.Total,
		LineSubtotal:  resolved.Total,
	}
	if trimmed := trimMessage(message); trimmed != "" {
		item.GiftMessage = &trimmed
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "adding gift line")
	}
	return s.reload(ctx, cart.Token)
}

// UpdateItemQuantity sets the quantity of an existing line and reprices it.
func (s *Service) UpdateItemQuantity(ctx context.Context, token string, itemID uuid.UUID, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, perrors.New(perrors.CodeValidation, "quantity must be at least 1")
	}
	cart, err := s.loadActive(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ID != itemID {
			continue
		}
		item.Quantity = quantity
		item.LineSubtotal = item.UnitPrice.Mul(decimalFromInt(quantity))
		if err := s.repo.UpdateItem(ctx, item); err != nil {
			return nil, perrors.Wrap(perrors.CodeDependency, err, "updating cart line")
		}
		return s.reload(ctx, cart.Token)
	}
	return nil, perrors.New(perrors.CodeNotFound, "cart item not found")
}

// RemoveItem deletes one line from the cart.
func (s *Service) RemoveItem(ctx context.Context, token string, itemID uuid.UUID) (*View, error) {
	cart, err := s.loadActive(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.New(perrors.CodeNotFound, "cart item not found")
		}
		return nil, perrors.Wrap(perrors.CodeDependency, err, "removing cart line")
	}
	return s.reload(ctx, cart.Token)
}

func (s *Service) reload(ctx context.Context, token string) (*View, error) {
	cart, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, perrors.Wrap(perrors.CodeDependency, err, "reloading cart")
	}
	view := toView(cart)
	return &view, nil
}
