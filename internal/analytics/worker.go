package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

type idempotencyChecker interface {
	CheckAndMarkProcessed(ctx context.Context, eventID string) (bool, error)
	Delete(ctx context.Context, eventID string) error
}

type eventWriter interface {
	Write(ctx context.Context, envelopes []Envelope) error
}

// Worker consumes storefront events from Pub/Sub and lands them in the
// warehouse, honoring Redis idempotency.
type Worker struct {
	subscription *gcppubsub.Subscriber
	writer       eventWriter
	manager      idempotencyChecker
	log          *logger.Logger
}

func NewWorker(subscription *gcppubsub.Subscriber, writer eventWriter, manager idempotencyChecker, log *logger.Logger) (*Worker, error) {
	if subscription == nil {
		return nil, errors.New("analytics: subscription is required")
	}
	if writer == nil {
		return nil, errors.New("analytics: writer is required")
	}
	if manager == nil {
		return nil, errors.New("analytics: idempotency manager is required")
	}
	if log == nil {
		return nil, errors.New("analytics: logger is required")
	}
	return &Worker{
		subscription: subscription,
		writer:       writer,
		manager:      manager,
		log:          log,
	}, nil
}

type processResult struct {
	nack bool
}

// Run consumes storefront events until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return w.subscription.Receive(ctx, func(innerCtx context.Context, msg *gcppubsub.Message) {
		if w.process(innerCtx, msg.ID, msg.Data).nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

func (w *Worker) process(ctx context.Context, messageID string, data []byte) processResult {
	logCtx := w.log.WithField(ctx, "message_id", messageID)

	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		// A malformed message never becomes valid; drop it.
		w.log.Warn(logCtx, "invalid storefront event payload")
		return processResult{}
	}
	if envelope.EventID == "" || !envelope.EventType.IsValid() {
		w.log.Warn(logCtx, "storefront event missing id or type")
		return processResult{}
	}

	logCtx = w.log.WithFields(ctx, map[string]any{
		"message_id": messageID,
		"event_id":   envelope.EventID,
		"event_type": envelope.EventType,
		"occurred":   envelope.OccurredAt.Format(time.RFC3339Nano),
	})

	already, err := w.manager.CheckAndMarkProcessed(logCtx, envelope.EventID)
	if err != nil {
		w.log.Error(logCtx, "idempotency check failed", err)
		return processResult{nack: true}
	}
	if already {
		w.log.Info(logCtx, "event already processed")
		return processResult{}
	}

	if err := w.writer.Write(logCtx, []Envelope{envelope}); err != nil {
		_ = w.manager.Delete(logCtx, envelope.EventID)
		return processResult{nack: true}
	}

	w.log.Info(logCtx, "storefront event ingested")
	return processResult{}
}
