package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/minhtv/stockhouse/pkg/logger"
)

// Publisher wraps a Kafka sync producer. A nil *Publisher is valid and drops
// every publish, so event emission can be switched off by configuration.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishStockAdjusted publishes a stock adjustment event.
func (p *Publisher) PublishStockAdjusted(ctx context.Context, event StockAdjustedEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = newEventID()
	event.EventType = EventTypeStockAdjusted
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicStockAdjusted, EventTypeStockAdjusted, event.EventID,
		fmt.Sprintf("%d", event.ProductID), event,
		attribute.Int64("product.id", int64(event.ProductID)),
		attribute.Int("adjust.quantity", event.Quantity),
		attribute.String("adjust.direction", event.Direction),
	)
}

// PublishOrderCreated publishes an order creation event.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = newEventID()
	event.EventType = EventTypeOrderCreated
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicOrderEvents, EventTypeOrderCreated, event.EventID,
		event.OrderCode, event,
		attribute.Int64("order.id", int64(event.OrderID)),
		attribute.String("order.code", event.OrderCode),
		attribute.Float64("order.total", event.Total),
	)
}

// PublishOrderStatusChanged publishes an order status transition event.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = newEventID()
	event.EventType = EventTypeOrderStatusChanged
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicOrderEvents, EventTypeOrderStatusChanged, event.EventID,
		event.OrderCode, event,
		attribute.Int64("order.id", int64(event.OrderID)),
		attribute.String("order.old_status", event.OldStatus),
		attribute.String("order.new_status", event.NewStatus),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		}, attrs...)...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Propagate trace context through message headers.
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Logger.Debug().
		Str("topic", topic).
		Str("event_type", eventType).
		Str("event_id", eventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

func newEventID() string {
	return "evt_" + uuid.New().String()
}
