// Package queue defines the booking-intent relay: the AMQP leg that
// carries intents emitted through the host outbound channel to whatever
// backend completes the externally-owned booking flow.
package queue

// IntentQueueName is the durable queue booking intents travel over.
const IntentQueueName = "booking.intent"

// BookingIntentEvent mirrors the storefront's outbound payload, enriched
// with enough session context for downstream consumers to log or notify
// without querying the catalog.
type BookingIntentEvent struct {
	Action     string `json:"action"`
	EventID    string `json:"eventId"`
	UserID     int64  `json:"user_id,omitempty"`
	EventTitle string `json:"event_title,omitempty"`
	EmittedAt  string `json:"emitted_at"`
}
