package service

import (
	"context"
)

// StockAlertEvent is emitted when a product crosses into low or out-of-stock
// territory so downstream consumers can reorder or notify staff.
type StockAlertEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	MinLevel     int    `json:"min_level"`
	Status       string `json:"status"`
	OccurredAt   string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockAlert publishes a stock alert event for async processing
	PublishStockAlert(ctx context.Context, event *StockAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
