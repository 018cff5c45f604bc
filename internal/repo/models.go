package repo

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/checkout-service/internal/entities"
)

type Cart struct {
	ID              string         `db:"id"`
	SessionToken    sql.NullString `db:"session_token"`
	AccountID       sql.NullString `db:"account_id"`
	PaymentIntentID sql.NullString `db:"payment_intent_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type CartLine struct {
	CartID    string `db:"cart_id"`
	ProductID string `db:"product_id"`
	VariantID string `db:"variant_id"`
	Quantity  int    `db:"quantity"`
}

type Order struct {
	ID                string          `db:"id"`
	PaymentRef        string          `db:"payment_ref"`
	OrderNumber       string          `db:"order_number"`
	AccountID         sql.NullString  `db:"account_id"`
	Status            string          `db:"status"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	Shipping          decimal.Decimal `db:"shipping"`
	Tax               decimal.Decimal `db:"tax"`
	Total             decimal.Decimal `db:"total"`
	ShippingAddressID sql.NullString  `db:"shipping_address_id"`
	CreatedAt         time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	VariantID string          `db:"variant_id"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

type OrderStatusUpdate struct {
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type Product struct {
	ID    string          `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
}

func CartToEntity(c Cart, lines []CartLine) entities.Cart {
	cart := entities.Cart{
		ID:              c.ID,
		SessionToken:    nullStringToString(c.SessionToken),
		AccountID:       nullStringToString(c.AccountID),
		PaymentIntentID: nullStringToString(c.PaymentIntentID),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if len(lines) > 0 {
		cart.Lines = make([]entities.CartLine, 0, len(lines))
		for _, l := range lines {
			cart.Lines = append(cart.Lines, LineToEntity(l))
		}
	}
	return cart
}

func LineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		ProductID: l.ProductID,
		VariantID: l.VariantID,
		Quantity:  l.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem, log []OrderStatusUpdate) (entities.Order, error) {
	status, err := entities.ToOrderStatus(o.Status)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:                o.ID,
		PaymentRef:        o.PaymentRef,
		OrderNumber:       o.OrderNumber,
		AccountID:         nullStringToString(o.AccountID),
		Status:            status,
		Subtotal:          o.Subtotal,
		Shipping:          o.Shipping,
		Tax:               o.Tax,
		Total:             o.Total,
		ShippingAddressID: nullStringToString(o.ShippingAddressID),
		CreatedAt:         o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.OrderItem{
				ProductID: it.ProductID,
				VariantID: it.VariantID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
	}

	if len(log) > 0 {
		order.StatusLog = make([]entities.OrderStatusUpdate, 0, len(log))
		for _, u := range log {
			status, err := entities.ToOrderStatus(u.Status)
			if err != nil {
				return entities.Order{}, err
			}
			order.StatusLog = append(order.StatusLog, entities.OrderStatusUpdate{
				Status:    status,
				Message:   u.Message,
				CreatedAt: u.CreatedAt,
			})
		}
	}

	return order, nil
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}
