package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/metrics"
	"go.uber.org/multierr"
)

// eventInserter is the warehouse surface the writer consumes.
type eventInserter interface {
	InsertEvents(ctx context.Context, rows []any) error
}

// Writer lands storefront events in the warehouse with bounded retries.
type Writer struct {
	inserter    eventInserter
	log         *logger.Logger
	metrics     *metrics.AnalyticsMetrics
	maxAttempts int
}

func NewWriter(inserter eventInserter, log *logger.Logger, analyticsMetrics *metrics.AnalyticsMetrics, maxAttempts int) (*Writer, error) {
	if inserter == nil {
		return nil, errors.New("analytics: event inserter is required")
	}
	if log == nil {
		return nil, errors.New("analytics: logger is required")
	}
	if analyticsMetrics == nil {
		return nil, errors.New("analytics: metrics are required")
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Writer{
		inserter:    inserter,
		log:         log,
		metrics:     analyticsMetrics,
		maxAttempts: maxAttempts,
	}, nil
}

// Write inserts the envelopes, retrying the whole batch up to maxAttempts.
// On failure it returns every attempt's error combined.
func (w *Writer) Write(ctx context.Context, envelopes []Envelope) error {
	if len(envelopes) == 0 {
		return nil
	}

	rows := make([]any, 0, len(envelopes))
	for _, envelope := range envelopes {
		rows = append(rows, toRow(envelope))
	}

	var attemptErrs []error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		err := w.inserter.InsertEvents(ctx, rows)
		if err == nil {
			w.metrics.EventsWritten.Add(float64(len(rows)))
			return nil
		}
		attemptErrs = append(attemptErrs, fmt.Errorf("attempt %d: %w", attempt, err))
	}

	w.metrics.WriteFailures.Inc()
	combined := multierr.Combine(attemptErrs...)
	w.log.Error(ctx, "writing storefront events failed", combined)
	return combined
}
