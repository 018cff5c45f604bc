package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/storefront/checkout-service/internal/entities"
)

type OrderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{newPostgresRepo(db)}
}

func (r *OrderRepo) GetOrderByPaymentRef(ctx context.Context, paymentRef string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "payment_ref", "order_number", "account_id", "status",
		"subtotal", "shipping", "tax", "total",
		"shipping_address_id", "created_at").
		From("orders").
		Where(sq.Eq{"payment_ref": paymentRef}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "variant_id", "name", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	query, args = r.qb.Select("order_id", "status", "message", "created_at").
		From("order_status_updates").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id").
		MustSql()

	var log []OrderStatusUpdate
	if err := r.selectContext(ctx, &log, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get status log: %w", err)
	}

	return OrderToEntity(order, items, log)
}

// InsertOrder writes the order row. There is deliberately no ON CONFLICT
// suffix: the uniqueness constraint on payment_ref is the concurrency guard,
// and a lost race must surface as ErrDuplicateKey so the caller can retry
// its read.
func (r *OrderRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "payment_ref", "order_number", "account_id", "status",
			"subtotal", "shipping", "tax", "total", "shipping_address_id",
		).
		Values(
			o.ID, o.PaymentRef, o.OrderNumber, nullString(o.AccountID), string(o.Status),
			o.Subtotal, o.Shipping, o.Tax, o.Total, nullString(o.ShippingAddressID),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", wrapPgErr(err))
	}
	return nil
}

func (r *OrderRepo) InsertOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "variant_id", "name", "quantity", "unit_price")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.VariantID, it.Name, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *OrderRepo) AppendStatusUpdate(ctx context.Context, orderID string, status entities.OrderStatus, message string) error {
	query, args := r.qb.Insert("order_status_updates").
		Columns("order_id", "status", "message").
		Values(orderID, string(status), message).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append status update: %w", err)
	}
	return nil
}

func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
