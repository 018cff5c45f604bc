package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/payment"
	"github.com/storefront/checkout-service/internal/snapshot"
)

type Processor interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64) (payment.Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (payment.Intent, error)
	UpdateIntent(ctx context.Context, intentID string, amountMinorUnits int64, metadata map[string]string) (payment.Intent, error)
}

type Catalog interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}

type IntentRecorder interface {
	SetPaymentIntent(ctx context.Context, cartID, intentID string) error
}

// CheckoutService opens payment authorizations: it prices the cart from live
// catalog data, attaches the encoded snapshot as processor metadata, and
// hands the client secret back to the browser.
type CheckoutService struct {
	logger    *slog.Logger
	carts     IntentRecorder
	catalog   Catalog
	processor Processor
	calc      Calculator
}

func NewCheckoutService(logger *slog.Logger, carts IntentRecorder, catalog Catalog, processor Processor, calc Calculator) *CheckoutService {
	return &CheckoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		carts:     carts,
		catalog:   catalog,
		processor: processor,
		calc:      calc,
	}
}

func (s *CheckoutService) OpenAuthorization(ctx context.Context, cart entities.Cart) (payment.Intent, error) {
	if cart.Empty() {
		return payment.Intent{}, entities.ErrCartEmpty
	}

	snap, err := s.buildSnapshot(ctx, cart)
	if err != nil {
		return payment.Intent{}, err
	}

	metadata, err := snapshot.Encode(snap)
	if err != nil {
		return payment.Intent{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	amount := MinorUnits(snap.Pricing.Total)

	// An open, unconsumed authorization from an earlier checkout attempt is
	// refreshed in place instead of opening a duplicate.
	if cart.PaymentIntentID != "" {
		existing, err := s.processor.RetrieveIntent(ctx, cart.PaymentIntentID)
		if err == nil && existing.Status == payment.IntentOpen {
			return s.processor.UpdateIntent(ctx, existing.ID, amount, metadata)
		}
	}

	intent, err := s.processor.CreateIntent(ctx, amount)
	if err != nil {
		return payment.Intent{}, err
	}

	// The create call may not accept the full metadata payload atomically,
	// so the snapshot is always attached via a follow-up update.
	intent, err = s.processor.UpdateIntent(ctx, intent.ID, amount, metadata)
	if err != nil {
		return payment.Intent{}, err
	}

	if err := s.carts.SetPaymentIntent(ctx, cart.ID, intent.ID); err != nil {
		return payment.Intent{}, err
	}

	s.logger.InfoContext(ctx, "authorization opened",
		slog.String("cart_id", cart.ID),
		slog.String("payment_ref", intent.ID),
		slog.Int64("amount_minor_units", amount))

	return intent, nil
}

// buildSnapshot re-resolves every line's live unit price from the catalog;
// prices are never trusted from a cached source.
func (s *CheckoutService) buildSnapshot(ctx context.Context, cart entities.Cart) (entities.CartSnapshot, error) {
	items := make([]entities.SnapshotItem, len(cart.Lines))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range cart.Lines {
		i, line := i, line
		g.Go(func() error {
			product, err := s.catalog.GetProduct(gctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("product %s: %w", line.ProductID, err)
			}
			items[i] = entities.SnapshotItem{
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entities.CartSnapshot{}, err
	}

	return entities.CartSnapshot{
		CartID:    cart.ID,
		AccountID: cart.AccountID,
		Items:     items,
		Pricing:   s.calc.Price(items),
	}, nil
}
