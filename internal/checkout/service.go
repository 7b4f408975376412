package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/farmshop-si/farmshop-backend/internal/cart"
	"github.com/farmshop-si/farmshop-backend/pkg/config"
	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	perrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FlagChecker gates payment methods.
type FlagChecker interface {
	IsEnabled(ctx context.Context, id string) bool
}

// EventPublisher records the completed checkout; failures must not block the
// order.
type EventPublisher interface {
	CheckoutCompleted(ctx context.Context, orderNumber string, total decimal.Decimal)
}

// TxRunner executes a function inside one database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type Service struct {
	orders OrderRepository
	carts  cart.CartRepository
	flags  FlagChecker
	events EventPublisher
	tx     TxRunner
	cfg    config.CheckoutConfig
	log    *logger.Logger

	shippingFee   decimal.Decimal
	freeThreshold decimal.Decimal
}

func NewService(orders OrderRepository, carts cart.CartRepository, flagChecker FlagChecker, events EventPublisher, tx TxRunner, cfg config.CheckoutConfig, log *logger.Logger) (*Service, error) {
	if orders == nil {
		return nil, errors.New("checkout: order repository is required")
	}
	if carts == nil {
		return nil, errors.New("checkout: cart store is required")
	}
	if flagChecker == nil {
		return nil, errors.New("checkout: flag checker is required")
	}
	if events == nil {
		return nil, errors.New("checkout: event publisher is required")
	}
	if tx == nil {
		return nil, errors.New("checkout: tx runner is required")
	}
	if log == nil {
		return nil, errors.New("checkout: logger is required")
	}

	shippingFee, err := decimal.NewFromString(cfg.ShippingFee)
	if err != nil {
		return nil, fmt.Errorf("checkout: parsing shipping fee: %w", err)
	}
	freeThreshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return nil, fmt.Errorf("checkout: parsing free shipping threshold: %w", err)
	}

	return &Service{
		orders:        orders,
		carts:         carts,
		flags:         flagChecker,
		events:        events,
		tx:            tx,
		cfg:           cfg,
		log:           log,
		shippingFee:   shippingFee,
		freeThreshold: freeThreshold,
	}, nil
}

// PlaceOrder turns an active cart into an order. The cart's lines are frozen
// onto the order, the cart transitions to checked_out, and both happen in one
// transaction. For UPN payments the response carries the rendered payment
// order payload.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderView, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, perrors.New(perrors.CodeValidation, "unknown payment method")
	}
	if flagID := input.PaymentMethod.FeatureFlagID(); flagID != "" && !s.flags.IsEnabled(ctx, flagID) {
		return nil, perrors.New(perrors.CodeValidation, "payment method is not available")
	}

	activeCart, err := s.carts.FindByToken(ctx, input.CartToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.New(perrors.CodeNotFound, "cart not found")
		}
		return nil, perrors.Wrap(perrors.CodeDependency, err, "loading cart")
	}
	if activeCart.Status != enums.CartStatusActive {
		return nil, perrors.New(perrors.CodeStateConflict, "cart was already checked out")
	}
	if len(activeCart.Items) == 0 {
		return nil, perrors.New(perrors.CodeValidation, "cart is empty")
	}

	subtotal := decimal.Zero
	for _, item := range activeCart.Items {
		subtotal = subtotal.Add(item.LineSubtotal)
	}
	shippingFee := s.shippingFeeFor(subtotal, input.Pickup)
	total := subtotal.Add(shippingFee)

	if input.PaymentMethod == enums.PaymentMethodUPNQR && s.cfg.UPNIBAN == "" {
		return nil, perrors.New(perrors.CodeDependency, "bank transfer is not configured")
	}

	order := &models.Order{
		ID:              uuid.New(),
		Status:          enums.OrderStatusPending,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingZip:     input.ShippingZip,
		Note:            input.Note,
		PaymentMethod:   input.PaymentMethod,
		Subtotal:        subtotal,
		ShippingFee:     shippingFee,
		Total:           total,
		LineItems:       freezeLines(activeCart.Items),
	}

	// The random daily suffix can collide with an already placed order, so a
	// duplicate number rolls the dice again instead of failing the checkout.
	upnPayload := ""
	for attempt := 0; ; attempt++ {
		order.Number = newOrderNumber(time.Now())
		if input.PaymentMethod == enums.PaymentMethodUPNQR {
			reference := BuildUPNReference(order.Number)
			order.UPNReference = &reference
			upnPayload = BuildUPNPayload(
				UPNBeneficiary{IBAN: s.cfg.UPNIBAN, Name: s.cfg.UPNName, Address: s.cfg.UPNAddress, City: s.cfg.UPNCity},
				total,
				"Naročilo "+order.Number,
				reference,
			)
		}

		err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			if err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
				return err
			}
			return s.carts.WithTx(tx).SetStatus(ctx, activeCart.ID, enums.CartStatusCheckedOut.String())
		})
		if err == nil {
			break
		}
		if isDuplicateNumber(err) && attempt+1 < orderNumberAttempts {
			continue
		}
		return nil, perrors.Wrap(perrors.CodeDependency, err, "placing order")
	}

	ctx = s.log.WithOrderNumber(ctx, order.Number)
	s.log.Info(ctx, "order placed")
	s.events.CheckoutCompleted(ctx, order.Number, total)

	view := toOrderView(order, upnPayload)
	return &view, nil
}

// GetOrder loads a placed order by its public number.
func (s *Service) GetOrder(ctx context.Context, number string) (*OrderView, error) {
	order, err := s.orders.ByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.New(perrors.CodeNotFound, "order not found")
		}
		return nil, perrors.Wrap(perrors.CodeDependency, err, "loading order")
	}

	upnPayload := ""
	if order.PaymentMethod == enums.PaymentMethodUPNQR && order.UPNReference != nil && s.cfg.UPNIBAN != "" {
		upnPayload = BuildUPNPayload(
			UPNBeneficiary{IBAN: s.cfg.UPNIBAN, Name: s.cfg.UPNName, Address: s.cfg.UPNAddress, City: s.cfg.UPNCity},
			order.Total,
			"Naročilo "+order.Number,
			*order.UPNReference,
		)
	}
	view := toOrderView(order, upnPayload)
	return &view, nil
}

func (s *Service) shippingFeeFor(subtotal decimal.Decimal, pickup bool) decimal.Decimal {
	if pickup {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(s.freeThreshold) {
		return decimal.Zero
	}
	return s.shippingFee
}

// freezeLines copies cart lines into order line items so later catalog or
// cart changes cannot alter the order.
func freezeLines(items []models.CartItem) []models.OrderLineItem {
	lines := make([]models.OrderLineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderLineItem{
			ID:            uuid.New(),
			Kind:          item.Kind,
			ProductID:     item.ProductID,
			OptionID:      item.OptionID,
			GiftPackageID: item.GiftPackageID,
			GiftMessage:   item.GiftMessage,
			Components:    item.Components,
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			LineSubtotal:  item.LineSubtotal,
		})
	}
	return lines
}

// orderNumberAttempts bounds how many numbers PlaceOrder tries before giving
// up on a persistently colliding insert.
const orderNumberAttempts = 5

func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("FS-%s-%04d", now.Format("20060102"), rand.Intn(10000))
}

// isDuplicateNumber reports whether the insert hit the unique index on the
// order number.
func isDuplicateNumber(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
