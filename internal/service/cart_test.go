package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/service"
	mocks "github.com/storefront/checkout-service/internal/service/mocks"
	txMocks "github.com/storefront/checkout-service/pkg/trm/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func TestCartService_Resolve_Anonymous(t *testing.T) {
	existing := entities.Cart{ID: "cart-1", SessionToken: "tok-1"}

	t.Run("no identity at all", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		svc := service.NewCartService(newTestLogger(), tx, repo)

		_, _, err := svc.Resolve(context.Background(), "", "", true)
		assert.ErrorIs(t, err, entities.ErrNoIdentity)
	})

	t.Run("existing session cart returned as-is", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-1").Return(existing, nil)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		cart, fresh, err := svc.Resolve(context.Background(), "tok-1", "", true)

		require.NoError(t, err)
		assert.Equal(t, "cart-1", cart.ID)
		assert.Empty(t, fresh, "valid token must not be rotated")
	})

	t.Run("missing cart lazily created", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-new").
			Return(entities.Cart{}, entities.ErrCartNotFound)
		repo.EXPECT().CreateCart(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, cart entities.Cart) error {
				assert.Equal(t, "tok-new", cart.SessionToken)
				assert.Empty(t, cart.AccountID)
				return nil
			})

		svc := service.NewCartService(newTestLogger(), tx, repo)
		cart, _, err := svc.Resolve(context.Background(), "tok-new", "", true)

		require.NoError(t, err)
		assert.NotEmpty(t, cart.ID)
	})

	t.Run("missing cart not created when create is false", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-new").
			Return(entities.Cart{}, entities.ErrCartNotFound)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		_, _, err := svc.Resolve(context.Background(), "tok-new", "", false)

		assert.ErrorIs(t, err, entities.ErrCartNotFound)
	})
}

func TestCartService_Resolve_Merge(t *testing.T) {
	accountCart := entities.Cart{ID: "cart-acc", AccountID: "acc-1"}
	sessionCart := entities.Cart{
		ID:           "cart-anon",
		SessionToken: "tok-1",
		Lines: []entities.CartLine{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", VariantID: "v1", Quantity: 1},
		},
	}

	t.Run("anonymous cart merged into account cart", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		repo.EXPECT().GetCartByAccount(mock.Anything, "acc-1").Return(accountCart, nil)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-1").Return(sessionCart, nil)
		repo.EXPECT().MergeLines(mock.Anything, "cart-anon", "cart-acc").Return(nil)
		repo.EXPECT().DetachSession(mock.Anything, "cart-anon").Return(nil)

		merged := accountCart
		merged.Lines = sessionCart.Lines
		repo.EXPECT().GetCartByID(mock.Anything, "cart-acc").Return(merged, nil)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		cart, fresh, err := svc.Resolve(context.Background(), "tok-1", "acc-1", true)

		require.NoError(t, err)
		assert.Equal(t, "cart-acc", cart.ID)
		assert.Len(t, cart.Lines, 2)
		assert.NotEmpty(t, fresh, "consumed token must be replaced")
		assert.NotEqual(t, "tok-1", fresh)
	})

	t.Run("stale session token is a no-op", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)

		repo.EXPECT().GetCartByAccount(mock.Anything, "acc-1").Return(accountCart, nil)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-stale").
			Return(entities.Cart{}, entities.ErrCartNotFound)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		cart, fresh, err := svc.Resolve(context.Background(), "tok-stale", "acc-1", true)

		require.NoError(t, err)
		assert.Equal(t, "cart-acc", cart.ID)
		assert.Empty(t, fresh)
	})

	t.Run("merge failure aborts and keeps both carts", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)
		dbErr := errors.New("deadlock")

		repo.EXPECT().GetCartByAccount(mock.Anything, "acc-1").Return(accountCart, nil)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-1").Return(sessionCart, nil)
		repo.EXPECT().MergeLines(mock.Anything, "cart-anon", "cart-acc").Return(dbErr)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		_, _, err := svc.Resolve(context.Background(), "tok-1", "acc-1", true)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("anonymous cart adopted when account has none", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)

		repo.EXPECT().GetCartByAccount(mock.Anything, "acc-1").
			Return(entities.Cart{}, entities.ErrCartNotFound)
		repo.EXPECT().GetCartBySession(mock.Anything, "tok-1").Return(sessionCart, nil)
		repo.EXPECT().AssignToAccount(mock.Anything, "cart-anon", "acc-1").Return(nil)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		cart, fresh, err := svc.Resolve(context.Background(), "tok-1", "acc-1", true)

		require.NoError(t, err)
		assert.Equal(t, "cart-anon", cart.ID)
		assert.Equal(t, "acc-1", cart.AccountID)
		assert.Empty(t, cart.SessionToken)
		assert.NotEmpty(t, fresh)
	})

	t.Run("fresh account cart created when nothing exists", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)

		repo.EXPECT().GetCartByAccount(mock.Anything, "acc-1").
			Return(entities.Cart{}, entities.ErrCartNotFound)
		repo.EXPECT().CreateCart(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, cart entities.Cart) error {
				assert.Equal(t, "acc-1", cart.AccountID)
				assert.Empty(t, cart.SessionToken)
				return nil
			})

		svc := service.NewCartService(newTestLogger(), tx, repo)
		cart, _, err := svc.Resolve(context.Background(), "", "acc-1", true)

		require.NoError(t, err)
		assert.NotEmpty(t, cart.ID)
	})
}

func TestCartService_Clear(t *testing.T) {
	t.Run("clears lines, session and intent", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		repo.EXPECT().ClearLines(mock.Anything, "cart-1").Return(int64(3), nil)
		repo.EXPECT().DetachSession(mock.Anything, "cart-1").Return(nil)
		repo.EXPECT().SetPaymentIntent(mock.Anything, "cart-1", "").Return(nil)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		require.NoError(t, svc.Clear(context.Background(), "cart-1"))
	})

	t.Run("clearing twice succeeds", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		repo.EXPECT().ClearLines(mock.Anything, "cart-1").Return(int64(3), nil).Once()
		repo.EXPECT().ClearLines(mock.Anything, "cart-1").Return(int64(0), nil).Once()
		repo.EXPECT().DetachSession(mock.Anything, "cart-1").Return(nil).Times(2)
		repo.EXPECT().SetPaymentIntent(mock.Anything, "cart-1", "").Return(nil).Times(2)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		require.NoError(t, svc.Clear(context.Background(), "cart-1"))
		require.NoError(t, svc.Clear(context.Background(), "cart-1"))
	})
}

func TestCartService_Items(t *testing.T) {
	cart := entities.Cart{ID: "cart-1", Lines: []entities.CartLine{{ProductID: "p1", Quantity: 3}}}

	t.Run("add clamps quantity to one", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)

		repo.EXPECT().UpsertLine(mock.Anything, "cart-1", entities.CartLine{ProductID: "p1", Quantity: 1}).Return(nil)
		repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		_, err := svc.AddItem(context.Background(), "cart-1", entities.CartLine{ProductID: "p1", Quantity: 0})
		require.NoError(t, err)
	})

	t.Run("update with zero quantity deletes the line", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		tx := txMocks.NewMockManager(t)

		repo.EXPECT().DeleteLine(mock.Anything, "cart-1", "p1", "").Return(nil)
		repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(entities.Cart{ID: "cart-1"}, nil)

		svc := service.NewCartService(newTestLogger(), tx, repo)
		got, err := svc.UpdateItem(context.Background(), "cart-1", entities.CartLine{ProductID: "p1", Quantity: 0})
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})
}
