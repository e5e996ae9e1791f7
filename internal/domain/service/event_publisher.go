package service

import (
	"context"
	"time"
)

// InvoiceEventType names what happened to an invoice.
type InvoiceEventType string

const (
	InvoiceEventCreated InvoiceEventType = "invoice.created"
	InvoiceEventUpdated InvoiceEventType = "invoice.updated"
	InvoiceEventDeleted InvoiceEventType = "invoice.deleted"
)

// InvoiceEvent is published after a successful invoice mutation.
type InvoiceEvent struct {
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	Type          InvoiceEventType `json:"type"`
	InvoiceID     string           `json:"invoice_id"`
	CustomerID    string           `json:"customer_id,omitempty"`
	AmountInCents int64            `json:"amount_in_cents,omitempty"`
	Status        string           `json:"status,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInvoiceEvent publishes an invoice event for downstream consumers
	PublishInvoiceEvent(ctx context.Context, event *InvoiceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
