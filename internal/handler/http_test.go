package handler_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/handler"
	mocks "github.com/storefront/checkout-service/internal/handler/mocks"
	"github.com/storefront/checkout-service/internal/payment"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func init() {
	handler.RegisterMetrics()
}

type httpMocks struct {
	carts     *mocks.MockCartService
	checkout  *mocks.MockCheckoutService
	reconcile *mocks.MockReconciler
	processor *mocks.MockIntentRetriever
	cache     *mocks.MockCache
}

func newTestRouter(t *testing.T) (chi.Router, httpMocks) {
	m := httpMocks{
		carts:     mocks.NewMockCartService(t),
		checkout:  mocks.NewMockCheckoutService(t),
		reconcile: mocks.NewMockReconciler(t),
		processor: mocks.NewMockIntentRetriever(t),
		cache:     mocks.NewMockCache(t),
	}
	h := handler.NewHTTPHandler(newTestLogger(), m.carts, m.checkout, m.reconcile, m.processor, m.cache)
	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func sessionRequest(method, target string, body []byte) *http.Request {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "tok-1"})
	return req
}

func testOrder() entities.Order {
	return entities.Order{
		ID:          "ord-1",
		PaymentRef:  "pi_1",
		OrderNumber: "ORD-AB12CD34EF56",
		Status:      entities.StatusProcessing,
		Subtotal:    decimal.RequireFromString("25.00"),
		Shipping:    decimal.RequireFromString("10.00"),
		Tax:         decimal.RequireFromString("2.00"),
		Total:       decimal.RequireFromString("37.00"),
		Items: []entities.OrderItem{
			{ProductID: "p1", Name: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		},
	}
}

func TestHTTPHandler_GetCart(t *testing.T) {
	t.Run("no identity", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.carts.EXPECT().Resolve(mock.Anything, "", "", false).
			Return(entities.Cart{}, "", entities.ErrNoIdentity)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "no cart identity")
	})

	t.Run("missing cart reads empty without creating one", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", false).
			Return(entities.Cart{}, "", entities.ErrCartNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodGet, "/cart", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"lines":[]`)
	})

	t.Run("fresh token sets cookie", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.carts.EXPECT().Resolve(mock.Anything, "", "acc-1", false).
			Return(entities.Cart{ID: "cart-1", AccountID: "acc-1"}, "tok-fresh", nil)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("X-Account-ID", "acc-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "cart_session", cookies[0].Name)
		assert.Equal(t, "tok-fresh", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("existing session keeps cookie", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", false).
			Return(entities.Cart{
				ID:    "cart-1",
				Lines: []entities.CartLine{{ProductID: "p1", Quantity: 2}},
			}, "", nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodGet, "/cart", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Result().Cookies(), "no fresh token means no Set-Cookie")
		assert.Contains(t, rec.Body.String(), `"product_id":"p1"`)
	})
}

func TestHTTPHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", true).
			Return(entities.Cart{ID: "cart-1"}, "", nil)
		m.carts.EXPECT().AddItem(mock.Anything, "cart-1", entities.CartLine{ProductID: "p1", Quantity: 2}).
			Return(entities.Cart{
				ID:    "cart-1",
				Lines: []entities.CartLine{{ProductID: "p1", Quantity: 2}},
			}, nil)

		body := []byte(`{"product_id":"p1","quantity":2}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodPost, "/cart/items", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quantity":2`)
	})

	t.Run("validation error", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := []byte(`{"quantity":0}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodPost, "/cart/items", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodPost, "/cart/items", []byte("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	})
}

func TestHTTPHandler_UpdateItem_ZeroQuantity(t *testing.T) {
	router, m := newTestRouter(t)
	m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", true).
		Return(entities.Cart{ID: "cart-1"}, "", nil)
	m.carts.EXPECT().UpdateItem(mock.Anything, "cart-1", entities.CartLine{ProductID: "p1", Quantity: 0}).
		Return(entities.Cart{ID: "cart-1"}, nil)

	body := []byte(`{"product_id":"p1","quantity":0}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, sessionRequest(http.MethodPut, "/cart/items", body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPHandler_OpenAuthorization(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newTestRouter(t)
		cart := entities.Cart{ID: "cart-1", Lines: []entities.CartLine{{ProductID: "p1", Quantity: 1}}}

		m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", false).Return(cart, "", nil)
		m.checkout.EXPECT().OpenAuthorization(mock.Anything, cart).
			Return(payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 4240}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodPost, "/checkout/authorization", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"client_secret":"pi_1_secret"`)
		assert.Contains(t, rec.Body.String(), `"payment_ref":"pi_1"`)
	})

	t.Run("no cart", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", false).
			Return(entities.Cart{}, "", entities.ErrCartNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodPost, "/checkout/authorization", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		router, m := newTestRouter(t)
		cart := entities.Cart{ID: "cart-1"}

		m.carts.EXPECT().Resolve(mock.Anything, "tok-1", "", false).Return(cart, "", nil)
		m.checkout.EXPECT().OpenAuthorization(mock.Anything, cart).
			Return(payment.Intent{}, entities.ErrCartEmpty)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, sessionRequest(http.MethodPost, "/checkout/authorization", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "cart is empty")
	})
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	t.Run("missing payment_ref", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cache hit skips the processor", func(t *testing.T) {
		router, m := newTestRouter(t)
		order := testOrder()
		payload, err := order.Marshal()
		require.NoError(t, err)

		m.cache.EXPECT().Get("pi_1").Return(payload, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), order.OrderNumber)
	})

	t.Run("settles on first sight", func(t *testing.T) {
		router, m := newTestRouter(t)
		order := testOrder()
		md := map[string]string{"cart_id": "cart-1"}

		m.cache.EXPECT().Get("pi_1").Return(nil, false)
		m.processor.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
			Return(payment.Intent{ID: "pi_1", Status: payment.IntentSucceeded, Metadata: md}, nil)
		m.reconcile.EXPECT().Reconcile(mock.Anything, "pi_1", "confirm", "succeeded", md).
			Return(order, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), order.OrderNumber)
		assert.Contains(t, rec.Body.String(), `"total":"37"`)
	})

	t.Run("payment still settling", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.cache.EXPECT().Get("pi_1").Return(nil, false)
		m.processor.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
			Return(payment.Intent{ID: "pi_1", Status: payment.IntentPending}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("open intent is not an order yet", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.cache.EXPECT().Get("pi_1").Return(nil, false)
		m.processor.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
			Return(payment.Intent{ID: "pi_1", Status: payment.IntentOpen}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("payment failed", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.cache.EXPECT().Get("pi_1").Return(nil, false)
		m.processor.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
			Return(payment.Intent{ID: "pi_1", Status: payment.IntentFailed}, nil)
		m.reconcile.EXPECT().Reconcile(mock.Anything, "pi_1", "confirm", "failed", mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Contains(t, rec.Body.String(), "payment failed")
	})

	t.Run("order cannot be reconstructed", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.cache.EXPECT().Get("pi_1").Return(nil, false)
		m.processor.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
			Return(payment.Intent{ID: "pi_1", Status: payment.IntentSucceeded}, nil)
		m.reconcile.EXPECT().Reconcile(mock.Anything, "pi_1", "confirm", "succeeded", mock.Anything).
			Return(entities.Order{}, entities.ErrReconciliationImpossible)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("transient reconcile error", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.cache.EXPECT().Get("pi_1").Return(nil, false)
		m.processor.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
			Return(payment.Intent{ID: "pi_1", Status: payment.IntentSucceeded}, nil)
		m.reconcile.EXPECT().Reconcile(mock.Anything, "pi_1", "confirm", "succeeded", mock.Anything).
			Return(entities.Order{}, errors.New("db down"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order?payment_ref=pi_1", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
