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

type CartRepo struct {
	postgresRepo
}

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{newPostgresRepo(db)}
}

func (r *CartRepo) GetCartByID(ctx context.Context, cartID string) (entities.Cart, error) {
	return r.getCart(ctx, sq.Eq{"id": cartID})
}

func (r *CartRepo) GetCartBySession(ctx context.Context, sessionToken string) (entities.Cart, error) {
	return r.getCart(ctx, sq.Eq{"session_token": sessionToken})
}

func (r *CartRepo) GetCartByAccount(ctx context.Context, accountID string) (entities.Cart, error) {
	return r.getCart(ctx, sq.Eq{"account_id": accountID})
}

func (r *CartRepo) getCart(ctx context.Context, where sq.Eq) (entities.Cart, error) {
	query, args := r.qb.Select(
		"id", "session_token", "account_id", "payment_intent_id", "created_at", "updated_at").
		From("carts").
		Where(where).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	lines, err := r.getLines(ctx, cart.ID)
	if err != nil {
		return entities.Cart{}, err
	}

	return CartToEntity(cart, lines), nil
}

func (r *CartRepo) getLines(ctx context.Context, cartID string) ([]CartLine, error) {
	query, args := r.qb.Select("cart_id", "product_id", "variant_id", "quantity").
		From("cart_lines").
		Where(sq.Eq{"cart_id": cartID}).
		OrderBy("product_id", "variant_id").
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get cart lines: %w", err)
	}
	return lines, nil
}

func (r *CartRepo) CreateCart(ctx context.Context, cart entities.Cart) error {
	query, args := r.qb.Insert("carts").
		Columns("id", "session_token", "account_id").
		Values(cart.ID, nullString(cart.SessionToken), nullString(cart.AccountID)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create cart: %w", wrapPgErr(err))
	}
	return nil
}

// AssignToAccount reassigns a session-identified cart to an account and
// clears the session-token identity so the anonymous cart cannot be
// resurrected by a stale browser tab.
func (r *CartRepo) AssignToAccount(ctx context.Context, cartID, accountID string) error {
	query, args := r.qb.Update("carts").
		Set("account_id", accountID).
		Set("session_token", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to assign cart to account: %w", wrapPgErr(err))
	}
	return nil
}

// DetachSession removes the session-token identity from a cart.
func (r *CartRepo) DetachSession(ctx context.Context, cartID string) error {
	query, args := r.qb.Update("carts").
		Set("session_token", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to detach session: %w", err)
	}
	return nil
}

func (r *CartRepo) SetPaymentIntent(ctx context.Context, cartID, intentID string) error {
	query, args := r.qb.Update("carts").
		Set("payment_intent_id", nullString(intentID)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set payment intent: %w", err)
	}
	return nil
}

// UpsertLine adds a line or, when the (product, variant) combination already
// exists in the cart, increments its quantity.
func (r *CartRepo) UpsertLine(ctx context.Context, cartID string, line entities.CartLine) error {
	query, args := r.qb.Insert("cart_lines").
		Columns("cart_id", "product_id", "variant_id", "quantity").
		Values(cartID, line.ProductID, line.VariantID, line.Quantity).
		Suffix("ON CONFLICT (cart_id, product_id, variant_id) DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert cart line: %w", err)
	}
	return nil
}

func (r *CartRepo) SetLineQuantity(ctx context.Context, cartID string, line entities.CartLine) error {
	query, args := r.qb.Update("cart_lines").
		Set("quantity", line.Quantity).
		Where(sq.Eq{"cart_id": cartID, "product_id": line.ProductID, "variant_id": line.VariantID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set line quantity: %w", err)
	}
	return nil
}

func (r *CartRepo) DeleteLine(ctx context.Context, cartID, productID, variantID string) error {
	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID, "variant_id": variantID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}
	return nil
}

// MergeLines moves every line of the source cart into the destination cart,
// summing quantities for matching (product, variant) combinations, and
// leaves the source cart empty.
func (r *CartRepo) MergeLines(ctx context.Context, fromCartID, toCartID string) error {
	const moveQuery = `
		INSERT INTO cart_lines (cart_id, product_id, variant_id, quantity)
		SELECT $1, product_id, variant_id, quantity FROM cart_lines WHERE cart_id = $2
		ON CONFLICT (cart_id, product_id, variant_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity`

	if _, err := r.execContext(ctx, moveQuery, toCartID, fromCartID); err != nil {
		return fmt.Errorf("failed to merge cart lines: %w", err)
	}

	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"cart_id": fromCartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to drop merged lines: %w", err)
	}
	return nil
}

// ClearLines deletes all lines of a cart. Deleting zero rows is success:
// both reconciliation triggers call this independently and may race.
func (r *CartRepo) ClearLines(ctx context.Context, cartID string) (int64, error) {
	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart lines: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared lines: %w", err)
	}
	return rows, nil
}
