package kafka

import "time"

// StockAdjustedEvent is emitted after a committed balance change, whether it
// came from a manual movement or an order lifecycle step.
type StockAdjustedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Direction string    `json:"direction"`
	Source    string    `json:"source"` // movement, order
	SourceRef string    `json:"source_ref"`
	ActorID   uint      `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCreatedEvent is emitted after an order commits.
type OrderCreatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    uint      `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	CustomerID uint      `json:"customer_id"`
	Total      float64   `json:"total"`
	ItemCount  int       `json:"item_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent is emitted after a status transition commits.
type OrderStatusChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	OrderID   uint      `json:"order_id"`
	OrderCode string    `json:"order_code"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockAdjusted      = "stock.adjusted"
	EventTypeOrderCreated       = "order.created"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// Kafka topics
const (
	TopicStockAdjusted = "stock-adjusted"
	TopicOrderEvents   = "order-events"
)
