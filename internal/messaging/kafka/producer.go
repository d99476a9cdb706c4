package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
)

// Producer представляет Kafka producer для публикации событий
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

// NewProducer создает новый Kafka producer
func NewProducer(brokers []string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1 // Для идемпотентности

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		logger:   log.WithField("component", "kafka-producer"),
	}, nil
}

// PublishEvent публикует событие в Kafka
func (p *Producer) PublishEvent(topic string, key string, event interface{}) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(eventData),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"topic": topic,
			"key":   key,
		}).Error("failed to send message to kafka")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"topic":     topic,
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("message sent to kafka")

	return nil
}

// OrderCreated публикует событие order.created в топик заказов.
// Реализует domain.OrderEventPublisher.
func (p *Producer) OrderCreated(order domain.Order) error {
	items := make([]OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderEventItem{
			ProductID:  item.ProductID,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Qty,
		})
	}

	event := NewOrderEvent(EventTypeOrderCreated, order.ID, order.CustomerID, order.AmountMinor, items)
	return p.PublishEvent(TopicOrderEvents, order.ID, event)
}

// CustomerCreated публикует событие customer.created в топик каталога.
func (p *Producer) CustomerCreated(customer domain.Customer) error {
	event := NewCatalogEvent(EventTypeCustomerCreated, customer.ID, customer.Name)
	return p.PublishEvent(TopicCatalogEvents, customer.ID, event)
}

// ProductCreated публикует событие product.created в топик каталога.
func (p *Producer) ProductCreated(product domain.Product) error {
	event := NewCatalogEvent(EventTypeProductCreated, product.ID, product.Name)
	return p.PublishEvent(TopicCatalogEvents, product.ID, event)
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

var (
	_ domain.OrderEventPublisher   = (*Producer)(nil)
	_ domain.CatalogEventPublisher = (*Producer)(nil)
)
