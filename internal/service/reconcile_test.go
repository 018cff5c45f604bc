package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/repo"
	"github.com/storefront/checkout-service/internal/service"
	mocks "github.com/storefront/checkout-service/internal/service/mocks"
	"github.com/storefront/checkout-service/internal/snapshot"
	txMocks "github.com/storefront/checkout-service/pkg/trm/mocks"
)

type reconcileMocks struct {
	orders    *mocks.MockOrderRepo
	carts     *mocks.MockCartReader
	clearer   *mocks.MockCartClearer
	catalog   *mocks.MockCatalog
	cache     *mocks.MockOrderCache
	publisher *mocks.MockOrderPublisher
	tx        *txMocks.MockManager
}

func newReconcileService(t *testing.T) (*service.ReconcileService, reconcileMocks) {
	m := reconcileMocks{
		orders:    mocks.NewMockOrderRepo(t),
		carts:     mocks.NewMockCartReader(t),
		clearer:   mocks.NewMockCartClearer(t),
		catalog:   mocks.NewMockCatalog(t),
		cache:     mocks.NewMockOrderCache(t),
		publisher: mocks.NewMockOrderPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}
	passthroughTx(m.tx)

	svc := service.NewReconcileService(
		newTestLogger(), m.tx, m.orders, m.carts, m.clearer,
		m.catalog, newCalculator(t), m.cache, m.publisher,
	)
	return svc, m
}

func snapshotMetadata(t *testing.T) map[string]string {
	t.Helper()
	md, err := snapshot.Encode(entities.CartSnapshot{
		CartID:    "cart-1",
		AccountID: "acc-1",
		Items: []entities.SnapshotItem{
			{ProductID: "p1", Name: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		},
		Pricing: entities.Pricing{
			Subtotal: decimal.RequireFromString("25.00"),
			Shipping: decimal.RequireFromString("10.00"),
			Tax:      decimal.RequireFromString("2.00"),
			Total:    decimal.RequireFromString("37.00"),
		},
	})
	require.NoError(t, err)
	return md
}

func TestReconcileService_CreatesOrderFromSnapshot(t *testing.T) {
	svc, m := newReconcileService(t)

	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
		Return(entities.Order{}, entities.ErrOrderNotFound)
	m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) error {
			assert.Equal(t, "pi_1", o.PaymentRef)
			assert.Equal(t, "acc-1", o.AccountID)
			assert.Equal(t, entities.StatusProcessing, o.Status)
			assert.True(t, o.Total.Equal(decimal.RequireFromString("37.00")))
			assert.NotEmpty(t, o.OrderNumber)
			return nil
		})
	m.orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, items []entities.OrderItem) error {
			require.Len(t, items, 1)
			assert.Equal(t, "p1", items[0].ProductID)
			assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("12.50")), "snapshot price must be frozen")
			return nil
		})
	m.orders.EXPECT().AppendStatusUpdate(mock.Anything, mock.Anything, entities.StatusProcessing, mock.Anything).Return(nil)

	m.clearer.EXPECT().Clear(mock.Anything, "cart-1").Return(nil)
	m.cache.EXPECT().Set("pi_1", mock.Anything).Return()
	m.publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedSucceeded, snapshotMetadata(t))

	require.NoError(t, err)
	assert.Equal(t, entities.StatusProcessing, order.Status)
	assert.Len(t, order.Items, 1)
}

func TestReconcileService_LostInsertRace(t *testing.T) {
	svc, m := newReconcileService(t)

	existing := entities.Order{
		ID:         "ord-1",
		PaymentRef: "pi_1",
		Status:     entities.StatusProcessing,
	}

	// First read sees nothing, the insert loses to the concurrent trigger,
	// the second read finds the winner's row.
	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		Return(errors.Join(repo.ErrDuplicateKey, errors.New("pq: duplicate key value"))).Once()
	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
		Return(existing, nil).Once()

	order, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerConfirm, service.ObservedSucceeded, snapshotMetadata(t))

	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID, "loser must settle on the winner's order")
}

func TestReconcileService_IdempotentRedelivery(t *testing.T) {
	svc, m := newReconcileService(t)

	existing := entities.Order{
		ID:         "ord-1",
		PaymentRef: "pi_1",
		Status:     entities.StatusProcessing,
	}
	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").Return(existing, nil)

	order, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedSucceeded, nil)

	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
	// No insert, no status write, no second cart clear: the mocks would
	// flag any unexpected call.
}

func TestReconcileService_FailedPayment(t *testing.T) {
	t.Run("no order exists", func(t *testing.T) {
		svc, m := newReconcileService(t)
		m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		_, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedFailed, nil)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("existing order cancelled", func(t *testing.T) {
		svc, m := newReconcileService(t)
		existing := entities.Order{ID: "ord-1", PaymentRef: "pi_1", Status: entities.StatusProcessing}

		m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").Return(existing, nil)
		m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "ord-1", entities.StatusCancelled).Return(nil)
		m.orders.EXPECT().AppendStatusUpdate(mock.Anything, "ord-1", entities.StatusCancelled, mock.Anything).Return(nil)
		m.cache.EXPECT().Set("pi_1", mock.Anything).Return()

		order, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedFailed, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, order.Status)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		svc, m := newReconcileService(t)
		existing := entities.Order{ID: "ord-1", PaymentRef: "pi_1", Status: entities.StatusCancelled}

		m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").Return(existing, nil)

		order, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedFailed, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, order.Status)
	})
}

func TestReconcileService_LiveCartFallback(t *testing.T) {
	svc, m := newReconcileService(t)

	// Metadata carries only the identifying keys: the snapshot itself never
	// made it onto the intent.
	md := map[string]string{
		snapshot.KeyCartID:    "cart-1",
		snapshot.KeyAccountID: "acc-1",
	}

	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
		Return(entities.Order{}, entities.ErrOrderNotFound)
	m.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").
		Return(entities.Cart{
			ID:    "cart-1",
			Lines: []entities.CartLine{{ProductID: "p1", Quantity: 2}},
		}, nil)
	m.catalog.EXPECT().GetProduct(mock.Anything, "p1").
		Return(catalogProduct("p1", "Widget", "12.50"), nil)

	m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) error {
			// 25.00 + 10.00 shipping + 2.00 tax
			assert.True(t, o.Total.Equal(decimal.RequireFromString("37.00")))
			assert.Equal(t, "acc-1", o.AccountID)
			return nil
		})
	m.orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.orders.EXPECT().AppendStatusUpdate(mock.Anything, mock.Anything, entities.StatusProcessing, mock.Anything).Return(nil)

	m.clearer.EXPECT().Clear(mock.Anything, "cart-1").Return(nil)
	m.cache.EXPECT().Set("pi_1", mock.Anything).Return()
	m.publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerConfirm, service.ObservedSucceeded, md)
	require.NoError(t, err)
}

func TestReconcileService_LiveCartFallbackByAccount(t *testing.T) {
	svc, m := newReconcileService(t)

	// No snapshot and no cart_id: the account that opened the authorization
	// is the only remaining route to the cart.
	md := map[string]string{snapshot.KeyAccountID: "acc-1"}

	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
		Return(entities.Order{}, entities.ErrOrderNotFound)
	m.carts.EXPECT().GetCartByAccount(mock.Anything, "acc-1").
		Return(entities.Cart{
			ID:        "cart-9",
			AccountID: "acc-1",
			Lines:     []entities.CartLine{{ProductID: "p1", Quantity: 1}},
		}, nil)
	m.catalog.EXPECT().GetProduct(mock.Anything, "p1").
		Return(catalogProduct("p1", "Widget", "12.50"), nil)

	m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) error {
			assert.Equal(t, "acc-1", o.AccountID)
			return nil
		})
	m.orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.orders.EXPECT().AppendStatusUpdate(mock.Anything, mock.Anything, entities.StatusProcessing, mock.Anything).Return(nil)

	m.clearer.EXPECT().Clear(mock.Anything, "cart-9").Return(nil)
	m.cache.EXPECT().Set("pi_1", mock.Anything).Return()
	m.publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedSucceeded, md)
	require.NoError(t, err)
}

func TestReconcileService_NoItemSource(t *testing.T) {
	testCases := []struct {
		name string
		md   map[string]string
		prep func(m reconcileMocks)
	}{
		{
			name: "empty metadata",
			md:   map[string]string{},
		},
		{
			name: "cart gone",
			md:   map[string]string{snapshot.KeyCartID: "cart-1"},
			prep: func(m reconcileMocks) {
				m.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").
					Return(entities.Cart{}, entities.ErrCartNotFound)
			},
		},
		{
			name: "cart already emptied",
			md:   map[string]string{snapshot.KeyCartID: "cart-1"},
			prep: func(m reconcileMocks) {
				m.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").
					Return(entities.Cart{ID: "cart-1"}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newReconcileService(t)
			m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
				Return(entities.Order{}, entities.ErrOrderNotFound)
			if tc.prep != nil {
				tc.prep(m)
			}

			_, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedSucceeded, tc.md)
			assert.ErrorIs(t, err, entities.ErrReconciliationImpossible)
		})
	}
}

func TestReconcileService_ClearFailureDoesNotFailOrder(t *testing.T) {
	svc, m := newReconcileService(t)

	m.orders.EXPECT().GetOrderByPaymentRef(mock.Anything, "pi_1").
		Return(entities.Order{}, entities.ErrOrderNotFound)
	m.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
	m.orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.orders.EXPECT().AppendStatusUpdate(mock.Anything, mock.Anything, entities.StatusProcessing, mock.Anything).Return(nil)

	m.clearer.EXPECT().Clear(mock.Anything, "cart-1").Return(errors.New("db down"))
	m.cache.EXPECT().Set("pi_1", mock.Anything).Return()
	m.publisher.EXPECT().PublishOrderCreated(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := svc.Reconcile(context.Background(), "pi_1", service.TriggerWebhook, service.ObservedSucceeded, snapshotMetadata(t))

	require.NoError(t, err, "followup failures must not undo a committed order")
	assert.Equal(t, entities.StatusProcessing, order.Status)
}
