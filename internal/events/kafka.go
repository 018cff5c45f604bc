package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/storefront/checkout-service/internal/config"
	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/pkg/utils"
)

// OrderCreatedEvent is the wire shape published to the orders topic.
// Downstream consumers (fulfillment, notifications) key off payment_ref.
type OrderCreatedEvent struct {
	OrderID     string             `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	PaymentRef  string             `json:"payment_ref"`
	AccountID   string             `json:"account_id,omitempty"`
	Status      string             `json:"status"`
	Total       string             `json:"total"`
	Items       []OrderCreatedItem `json:"items"`
	CreatedAt   time.Time          `json:"created_at"`
}

type OrderCreatedItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, order entities.Order) error {
	items := make([]OrderCreatedItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderCreatedItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
		})
	}

	payload, err := json.Marshal(OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		PaymentRef:  order.PaymentRef,
		AccountID:   order.AccountID,
		Status:      string(order.Status),
		Total:       order.Total.String(),
		Items:       items,
		CreatedAt:   order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	// Broker hiccups are retried here; the caller already treats publish
	// failures as non-fatal, so this is the only delivery effort the event
	// gets.
	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
	}
	return utils.Retry(cfg, func() error {
		return p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(order.PaymentRef),
			Value: payload,
		})
	}, context.Canceled, context.DeadlineExceeded)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
