package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")
	// ErrReconciliationImpossible means a succeeded payment yielded no item
	// source at all: no metadata snapshot and no live cart. No order is
	// fabricated from zero information; this is terminal and human-actionable.
	ErrReconciliationImpossible = errors.New("reconciliation impossible: no item source")
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled, StatusRefunded},
	StatusShipped:    {StatusDelivered, StatusRefunded},
	StatusDelivered:  {StatusRefunded},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ToOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Order is keyed uniquely by PaymentRef: at most one order per payment
// reference, enforced by the store's uniqueness constraint under concurrency.
type Order struct {
	ID          string
	PaymentRef  string
	OrderNumber string // display identifier, not a uniqueness key
	AccountID   string
	Status      OrderStatus

	// Pricing is copied from the snapshot at creation and never recomputed.
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	ShippingAddressID string

	Items     []OrderItem
	StatusLog []OrderStatusUpdate

	CreatedAt time.Time
}

// OrderItem freezes the unit price captured in the snapshot, unlike CartLine.
type OrderItem struct {
	ProductID string
	VariantID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderStatusUpdate is append-only: entries are never mutated or deleted.
type OrderStatusUpdate struct {
	Status    OrderStatus
	Message   string
	CreatedAt time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(o); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(OrderStatusUpdate{})
}
