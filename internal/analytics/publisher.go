package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/flags"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// topicPublisher is the Pub/Sub publisher surface.
type topicPublisher interface {
	Publish(ctx context.Context, msg *gcppubsub.Message) publishResult
}

// publishResult is the awaitable half of a publish call.
type publishResult interface {
	Get(ctx context.Context) (string, error)
}

// gcpTopic adapts *gcppubsub.Publisher to the topicPublisher surface.
type gcpTopic struct {
	*gcppubsub.Publisher
}

func (t gcpTopic) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	return t.Publisher.Publish(ctx, msg)
}

// FlagChecker gates event recording.
type FlagChecker interface {
	IsEnabled(ctx context.Context, id string) bool
}

// Publisher records storefront events. Recording is best effort: a publish
// failure is logged and counted, never surfaced to the request that
// triggered it.
type Publisher struct {
	topic   topicPublisher
	flags   FlagChecker
	log     *logger.Logger
	metrics *metrics.AnalyticsMetrics
	now     func() time.Time
}

func NewPublisher(topic *gcppubsub.Publisher, flagChecker FlagChecker, log *logger.Logger, analyticsMetrics *metrics.AnalyticsMetrics) (*Publisher, error) {
	if topic == nil {
		return nil, errors.New("analytics: topic publisher is required")
	}
	return newPublisher(gcpTopic{topic}, flagChecker, log, analyticsMetrics)
}

func newPublisher(topic topicPublisher, flagChecker FlagChecker, log *logger.Logger, analyticsMetrics *metrics.AnalyticsMetrics) (*Publisher, error) {
	if flagChecker == nil {
		return nil, errors.New("analytics: flag checker is required")
	}
	if log == nil {
		return nil, errors.New("analytics: logger is required")
	}
	if analyticsMetrics == nil {
		return nil, errors.New("analytics: metrics are required")
	}
	return &Publisher{
		topic:   topic,
		flags:   flagChecker,
		log:     log,
		metrics: analyticsMetrics,
		now:     time.Now,
	}, nil
}

// PageView records a page view.
func (p *Publisher) PageView(ctx context.Context, cartToken, path, locale string) {
	p.publish(ctx, Envelope{
		EventType: enums.StorefrontEventPageView,
		CartToken: cartToken,
		Path:      path,
		Locale:    locale,
	})
}

// AddToCart records a cart addition.
func (p *Publisher) AddToCart(ctx context.Context, cartToken string) {
	p.publish(ctx, Envelope{
		EventType: enums.StorefrontEventAddToCart,
		CartToken: cartToken,
	})
}

// GiftBundleViewed records a gift package page view.
func (p *Publisher) GiftBundleViewed(ctx context.Context, cartToken string, packageID int) {
	p.publish(ctx, Envelope{
		EventType:     enums.StorefrontEventGiftBundleViewed,
		CartToken:     cartToken,
		GiftPackageID: &packageID,
	})
}

// CheckoutCompleted records a placed order.
func (p *Publisher) CheckoutCompleted(ctx context.Context, orderNumber string, total decimal.Decimal) {
	p.publish(ctx, Envelope{
		EventType:   enums.StorefrontEventCheckoutCompleted,
		OrderNumber: orderNumber,
		Total:       total.String(),
	})
}

func (p *Publisher) publish(ctx context.Context, envelope Envelope) {
	if !p.flags.IsEnabled(ctx, flags.FlagStorefrontStats) {
		return
	}
	envelope.EventID = uuid.NewString()
	envelope.OccurredAt = p.now().UTC()

	data, err := json.Marshal(envelope)
	if err != nil {
		p.log.Error(ctx, "encoding storefront event", err)
		return
	}

	result := p.topic.Publish(ctx, &gcppubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event_type": envelope.EventType.String(),
		},
	})
	if _, err := result.Get(ctx); err != nil {
		p.log.Error(ctx, "publishing storefront event", err)
		return
	}
	p.metrics.EventsPublished.WithLabelValues(envelope.EventType.String()).Inc()
}
