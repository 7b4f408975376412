package analytics

import (
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
)

// Envelope is the storefront event as published to Pub/Sub.
type Envelope struct {
	EventID    string                    `json:"event_id"`
	EventType  enums.StorefrontEventType `json:"event_type"`
	OccurredAt time.Time                 `json:"occurred_at"`

	CartToken     string `json:"cart_token,omitempty"`
	Path          string `json:"path,omitempty"`
	Locale        string `json:"locale,omitempty"`
	OrderNumber   string `json:"order_number,omitempty"`
	Total         string `json:"total,omitempty"`
	GiftPackageID *int   `json:"gift_package_id,omitempty"`
}

// eventRow is the BigQuery shape of one storefront event.
type eventRow struct {
	EventID       string    `bigquery:"event_id"`
	EventType     string    `bigquery:"event_type"`
	OccurredAt    time.Time `bigquery:"occurred_at"`
	CartToken     *string   `bigquery:"cart_token"`
	Path          *string   `bigquery:"path"`
	Locale        *string   `bigquery:"locale"`
	OrderNumber   *string   `bigquery:"order_number"`
	Total         *string   `bigquery:"total"`
	GiftPackageID *int      `bigquery:"gift_package_id"`
}

func toRow(envelope Envelope) eventRow {
	return eventRow{
		EventID:       envelope.EventID,
		EventType:     envelope.EventType.String(),
		OccurredAt:    envelope.OccurredAt.UTC(),
		CartToken:     optional(envelope.CartToken),
		Path:          optional(envelope.Path),
		Locale:        optional(envelope.Locale),
		OrderNumber:   optional(envelope.OrderNumber),
		Total:         optional(envelope.Total),
		GiftPackageID: envelope.GiftPackageID,
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
