package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/repo"
	"github.com/storefront/checkout-service/internal/snapshot"
	"github.com/storefront/checkout-service/pkg/trm"
)

const (
	TriggerConfirm = "confirm"
	TriggerWebhook = "webhook"

	ObservedSucceeded = "succeeded"
	ObservedFailed    = "failed"
)

// reconcileAttempts bounds the read-insert loop. One duplicate-key loss means
// another trigger inserted the order; the second read must find it.
const reconcileAttempts = 2

type OrderRepo interface {
	GetOrderByPaymentRef(ctx context.Context, paymentRef string) (entities.Order, error)
	InsertOrder(ctx context.Context, order entities.Order) error
	InsertOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	AppendStatusUpdate(ctx context.Context, orderID string, status entities.OrderStatus, message string) error
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
}

type CartReader interface {
	GetCartByID(ctx context.Context, cartID string) (entities.Cart, error)
	GetCartByAccount(ctx context.Context, accountID string) (entities.Cart, error)
}

type CartClearer interface {
	Clear(ctx context.Context, cartID string) error
}

type OrderCache interface {
	Set(key string, value []byte)
	Delete(key string)
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, order entities.Order) error
}

// ReconcileService converges a finished payment into exactly one order. Both
// the browser confirm call and the processor webhook race through Reconcile;
// the orders.payment_ref unique constraint is the arbiter.
type ReconcileService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	carts     CartReader
	clearer   CartClearer
	catalog   Catalog
	calc      Calculator
	cache     OrderCache
	publisher OrderPublisher
}

func NewReconcileService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartReader,
	clearer CartClearer,
	catalog Catalog,
	calc Calculator,
	cache OrderCache,
	publisher OrderPublisher,
) *ReconcileService {
	return &ReconcileService{
		logger:    logger.With(slog.String("service", "reconcile")),
		txManager: txManager,
		orders:    orders,
		carts:     carts,
		clearer:   clearer,
		catalog:   catalog,
		calc:      calc,
		cache:     cache,
		publisher: publisher,
	}
}

// Reconcile is idempotent per (paymentRef, observed outcome): redeliveries and
// trigger races settle on the same order row.
func (s *ReconcileService) Reconcile(ctx context.Context, paymentRef, trigger, observed string, metadata map[string]string) (entities.Order, error) {
	log := s.logger.With(
		slog.String("payment_ref", paymentRef),
		slog.String("trigger", trigger),
		slog.String("observed", observed))

	for attempt := 1; attempt <= reconcileAttempts; attempt++ {
		order, err := s.orders.GetOrderByPaymentRef(ctx, paymentRef)
		switch {
		case err == nil:
			return s.transition(ctx, log, order, observed)
		case !errors.Is(err, entities.ErrOrderNotFound):
			return entities.Order{}, err
		}

		// No order yet. A failed payment never creates one.
		if observed == ObservedFailed {
			return entities.Order{}, entities.ErrOrderNotFound
		}

		order, cartID, err := s.createOrder(ctx, paymentRef, metadata)
		if err != nil {
			if errors.Is(err, repo.ErrDuplicateKey) {
				log.DebugContext(ctx, "lost insert race, re-reading order")
				continue
			}
			return entities.Order{}, err
		}

		s.afterCreate(ctx, log, order, cartID)
		return order, nil
	}

	return entities.Order{}, fmt.Errorf("order for %s not visible after insert race", paymentRef)
}

// transition applies the observed outcome to an existing order. Anything the
// status machine forbids is treated as already settled and left untouched.
func (s *ReconcileService) transition(ctx context.Context, log *slog.Logger, order entities.Order, observed string) (entities.Order, error) {
	target := entities.StatusProcessing
	if observed == ObservedFailed {
		target = entities.StatusCancelled
	}

	if order.Status == target || !order.Status.CanTransitionTo(target) {
		log.DebugContext(ctx, "order already settled", slog.String("status", string(order.Status)))
		return order, nil
	}

	message := "payment " + observed
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateOrderStatus(ctx, order.ID, target); err != nil {
			return err
		}
		return s.orders.AppendStatusUpdate(ctx, order.ID, target, message)
	})
	if err != nil {
		return entities.Order{}, err
	}

	order.Status = target
	order.StatusLog = append(order.StatusLog, entities.OrderStatusUpdate{
		Status:    target,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	s.cacheOrder(ctx, log, order)

	log.InfoContext(ctx, "order status reconciled", slog.String("status", string(target)))
	return order, nil
}

func (s *ReconcileService) createOrder(ctx context.Context, paymentRef string, metadata map[string]string) (entities.Order, string, error) {
	items, pricing, accountID, cartID, err := s.gatherItems(ctx, metadata)
	if err != nil {
		return entities.Order{}, "", err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:          uuid.NewString(),
		PaymentRef:  paymentRef,
		OrderNumber: newOrderNumber(),
		AccountID:   accountID,
		Status:      entities.StatusProcessing,
		Subtotal:    pricing.Subtotal,
		Shipping:    pricing.Shipping,
		Tax:         pricing.Tax,
		Total:       pricing.Total,
		Items:       items,
		CreatedAt:   now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := s.orders.InsertOrderItems(ctx, order.ID, items); err != nil {
			return err
		}
		return s.orders.AppendStatusUpdate(ctx, order.ID, entities.StatusProcessing, "payment succeeded")
	})
	if err != nil {
		return entities.Order{}, "", err
	}

	order.StatusLog = []entities.OrderStatusUpdate{{
		Status:    entities.StatusProcessing,
		Message:   "payment succeeded",
		CreatedAt: now,
	}}
	return order, cartID, nil
}

// gatherItems recovers the purchased lines. The snapshot stored on the intent
// is authoritative because it froze the prices the buyer authorized; the live
// cart is only a fallback for intents whose snapshot could not be attached.
func (s *ReconcileService) gatherItems(ctx context.Context, metadata map[string]string) ([]entities.OrderItem, entities.Pricing, string, string, error) {
	snap, err := snapshot.Decode(metadata)
	if err == nil {
		return snapshotToOrderItems(snap.Items), snap.Pricing, snap.AccountID, snap.CartID, nil
	}
	if !errors.Is(err, snapshot.ErrSnapshotUnavailable) {
		return nil, entities.Pricing{}, "", "", err
	}

	// The originating cart is found by id when the metadata carries one,
	// otherwise by the account that opened the authorization.
	var cart entities.Cart
	switch {
	case metadata[snapshot.KeyCartID] != "":
		cart, err = s.carts.GetCartByID(ctx, metadata[snapshot.KeyCartID])
	case metadata[snapshot.KeyAccountID] != "":
		cart, err = s.carts.GetCartByAccount(ctx, metadata[snapshot.KeyAccountID])
	default:
		return nil, entities.Pricing{}, "", "", entities.ErrReconciliationImpossible
	}
	if err != nil {
		if errors.Is(err, entities.ErrCartNotFound) {
			return nil, entities.Pricing{}, "", "", entities.ErrReconciliationImpossible
		}
		return nil, entities.Pricing{}, "", "", err
	}
	if cart.Empty() {
		return nil, entities.Pricing{}, "", "", entities.ErrReconciliationImpossible
	}

	snapItems := make([]entities.SnapshotItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		product, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, entities.Pricing{}, "", "", err
		}
		snapItems = append(snapItems, entities.SnapshotItem{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}

	accountID := metadata[snapshot.KeyAccountID]
	if accountID == "" {
		accountID = cart.AccountID
	}
	return snapshotToOrderItems(snapItems), s.calc.Price(snapItems), accountID, cart.ID, nil
}

// afterCreate runs the non-transactional followups. None of them may fail the
// reconciliation: the order row is already committed.
func (s *ReconcileService) afterCreate(ctx context.Context, log *slog.Logger, order entities.Order, cartID string) {
	if cartID != "" {
		if err := s.clearer.Clear(ctx, cartID); err != nil {
			log.ErrorContext(ctx, "failed to clear cart after order", slog.String("cart_id", cartID), slog.Any("error", err))
		}
	}

	s.cacheOrder(ctx, log, order)

	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		log.ErrorContext(ctx, "failed to publish order created event", slog.Any("error", err))
	}

	log.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.Total.String()))
}

func (s *ReconcileService) cacheOrder(ctx context.Context, log *slog.Logger, order entities.Order) {
	payload, err := order.Marshal()
	if err != nil {
		log.ErrorContext(ctx, "failed to marshal order for cache", slog.Any("error", err))
		return
	}
	s.cache.Set(order.PaymentRef, payload)
}

func snapshotToOrderItems(items []entities.SnapshotItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
