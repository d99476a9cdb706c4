package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderCreated EventType = "order.created"

	// Catalog события
	EventTypeCustomerCreated EventType = "customer.created"
	EventTypeProductCreated  EventType = "product.created"
)

// Topics для Kafka
const (
	TopicOrderEvents   = "shop.order.events"
	TopicCatalogEvents = "shop.catalog.events"
)

// OrderEventItem — позиция заказа в публикуемом событии.
type OrderEventItem struct {
	ProductID  string `json:"product_id"`
	PriceMinor int64  `json:"price"`
	Quantity   int32  `json:"quantity"`
}

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType   EventType        `json:"event_type"`
	OrderID     string           `json:"order_id"`
	CustomerID  string           `json:"customer_id"`
	AmountMinor int64            `json:"amount_minor"`
	Items       []OrderEventItem `json:"items"`
	Timestamp   time.Time        `json:"timestamp"`
}

// CatalogEvent представляет событие каталога (покупатели и товары)
type CatalogEvent struct {
	EventType EventType `json:"event_type"`
	EntityID  string    `json:"entity_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, customerID string, amountMinor int64, items []OrderEventItem) *OrderEvent {
	return &OrderEvent{
		EventType:   eventType,
		OrderID:     orderID,
		CustomerID:  customerID,
		AmountMinor: amountMinor,
		Items:       items,
		Timestamp:   time.Now(),
	}
}

// NewCatalogEvent создает новое событие каталога
func NewCatalogEvent(eventType EventType, entityID, name string) *CatalogEvent {
	return &CatalogEvent{
		EventType: eventType,
		EntityID:  entityID,
		Name:      name,
		Timestamp: time.Now(),
	}
}
