package handler

import (
	"time"

	"github.com/storefront/checkout-service/internal/entities"
)

// Cart is the JSON shape of a shopping cart.
type Cart struct {
	ID        string     `json:"id"`
	AccountID string     `json:"account_id,omitempty"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartLine struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type UpdateItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type RemoveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
}

// Authorization is returned when a checkout opens a payment authorization.
// The client secret is consumed by the payment form on the storefront.
type Authorization struct {
	PaymentRef   string `json:"payment_ref"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

// Order is the JSON shape of a settled order.
type Order struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	PaymentRef  string              `json:"payment_ref"`
	AccountID   string              `json:"account_id,omitempty"`
	Status      string              `json:"status"`
	Subtotal    string              `json:"subtotal"`
	Shipping    string              `json:"shipping"`
	Tax         string              `json:"tax"`
	Total       string              `json:"total"`
	Items       []OrderItem         `json:"items"`
	StatusLog   []OrderStatusUpdate `json:"status_log,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type OrderStatusUpdate struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderPending is returned while the payment is still settling.
type OrderPending struct {
	Status string `json:"status"`
}

func CartEntityToJSON(c entities.Cart) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLine{
			ProductID: l.ProductID,
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
		})
	}
	return Cart{
		ID:        c.ID,
		AccountID: c.AccountID,
		Lines:     lines,
		UpdatedAt: c.UpdatedAt,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
		})
	}
	log := make([]OrderStatusUpdate, 0, len(o.StatusLog))
	for _, u := range o.StatusLog {
		log = append(log, OrderStatusUpdate{
			Status:    string(u.Status),
			Message:   u.Message,
			CreatedAt: u.CreatedAt,
		})
	}
	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		PaymentRef:  o.PaymentRef,
		AccountID:   o.AccountID,
		Status:      string(o.Status),
		Subtotal:    o.Subtotal.String(),
		Shipping:    o.Shipping.String(),
		Tax:         o.Tax.String(),
		Total:       o.Total.String(),
		Items:       items,
		StatusLog:   log,
		CreatedAt:   o.CreatedAt,
	}
}
