package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/payment"
	"github.com/storefront/checkout-service/pkg/utils"
)

const sessionCookie = "cart_session"

type CartService interface {
	Resolve(ctx context.Context, sessionToken, accountID string, create bool) (entities.Cart, string, error)
	AddItem(ctx context.Context, cartID string, line entities.CartLine) (entities.Cart, error)
	UpdateItem(ctx context.Context, cartID string, line entities.CartLine) (entities.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID, variantID string) (entities.Cart, error)
}

type CheckoutService interface {
	OpenAuthorization(ctx context.Context, cart entities.Cart) (payment.Intent, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, paymentRef, trigger, observed string, metadata map[string]string) (entities.Order, error)
}

type IntentRetriever interface {
	RetrieveIntent(ctx context.Context, intentID string) (payment.Intent, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	carts     CartService
	checkout  CheckoutService
	reconcile Reconciler
	processor IntentRetriever
	cache     Cache
}

func NewHTTPHandler(
	logger *slog.Logger,
	carts CartService,
	checkout CheckoutService,
	reconcile Reconciler,
	processor IntentRetriever,
	cache Cache,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		carts:     carts,
		checkout:  checkout,
		reconcile: reconcile,
		processor: processor,
		cache:     cache,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/cart", h.GetCart)
	r.Post("/cart/items", h.AddItem)
	r.Put("/cart/items", h.UpdateItem)
	r.Delete("/cart/items", h.RemoveItem)
	r.Post("/checkout/authorization", h.OpenAuthorization)
	r.Get("/checkout/order", h.GetOrder)
}

// identity pulls the caller's cart identity from the request: the anonymous
// session cookie and, for signed-in shoppers, the account id the gateway
// injects after verifying the session.
func identity(r *http.Request) (sessionToken, accountID string) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		sessionToken = c.Value
	}
	return sessionToken, r.Header.Get("X-Account-ID")
}

// setSessionCookie refreshes the anonymous token whenever resolution minted a
// new one (first visit, or the old token was retired by a merge).
func setSessionCookie(w http.ResponseWriter, token string) {
	if token == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetCart returns the caller's cart.
// @Summary      Get the caller's cart
// @Description  Resolves the cart by session cookie or account id, merging an anonymous cart into the account cart on first sight after login
// @Tags         cart
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "No cart identity"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionToken, accountID := identity(r)

	// A bare read never materializes a cart row; carts come into existence
	// on the first item add.
	cart, freshToken, err := h.carts.Resolve(ctx, sessionToken, accountID, false)
	if errors.Is(err, entities.ErrNoIdentity) {
		utils.WriteError(w, "no cart identity", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, entities.ErrCartNotFound) {
		utils.WriteJSON(w, CartEntityToJSON(entities.Cart{}), http.StatusOK)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, freshToken)
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddItem adds a line to the caller's cart.
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Param        request  body  AddItemRequest  true  "Item to add"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "No cart identity"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.mutateCart(w, r, func(cartID string) (entities.Cart, error) {
		return h.carts.AddItem(ctx, cartID, entities.CartLine{
			ProductID: req.ProductID,
			VariantID: req.VariantID,
			Quantity:  req.Quantity,
		})
	})
}

// UpdateItem sets a line's quantity.
// @Summary      Set an item's quantity
// @Description  Quantity zero removes the line
// @Tags         cart
// @Accept       json
// @Param        request  body  UpdateItemRequest  true  "Line to update"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "No cart identity"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /cart/items [put]
func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.mutateCart(w, r, func(cartID string) (entities.Cart, error) {
		return h.carts.UpdateItem(ctx, cartID, entities.CartLine{
			ProductID: req.ProductID,
			VariantID: req.VariantID,
			Quantity:  req.Quantity,
		})
	})
}

// RemoveItem deletes a line from the cart.
// @Summary      Remove an item from the cart
// @Tags         cart
// @Accept       json
// @Param        request  body  RemoveItemRequest  true  "Line to remove"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "No cart identity"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /cart/items [delete]
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RemoveItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.mutateCart(w, r, func(cartID string) (entities.Cart, error) {
		return h.carts.RemoveItem(ctx, cartID, req.ProductID, req.VariantID)
	})
}

// mutateCart resolves the caller's cart (creating one on first touch), runs
// the mutation, and writes the refreshed cart back.
func (h *HTTPHandler) mutateCart(w http.ResponseWriter, r *http.Request, fn func(cartID string) (entities.Cart, error)) {
	ctx := r.Context()
	sessionToken, accountID := identity(r)

	cart, freshToken, err := h.carts.Resolve(ctx, sessionToken, accountID, true)
	if errors.Is(err, entities.ErrNoIdentity) {
		utils.WriteError(w, "no cart identity", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	cart, err = fn(cart.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mutate cart", slog.Any("error", err), slog.String("cart_id", cart.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, freshToken)
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// OpenAuthorization opens a payment authorization for the cart.
// @Summary      Open a payment authorization for the cart
// @Description  Prices the cart from the live catalog and returns the client secret for the payment form
// @Tags         checkout
// @Success      200  {object}  Authorization
// @Failure      401  {object}  utils.ErrorResponse "No cart identity"
// @Failure      409  {object}  utils.ErrorResponse "Cart is empty"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /checkout/authorization [post]
func (h *HTTPHandler) OpenAuthorization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionToken, accountID := identity(r)

	cart, freshToken, err := h.carts.Resolve(ctx, sessionToken, accountID, false)
	if errors.Is(err, entities.ErrNoIdentity) || errors.Is(err, entities.ErrCartNotFound) {
		utils.WriteError(w, "no cart to check out", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	intent, err := h.checkout.OpenAuthorization(ctx, cart)
	if errors.Is(err, entities.ErrCartEmpty) {
		utils.WriteError(w, "cart is empty", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to open authorization", slog.Any("error", err), slog.String("cart_id", cart.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	authorizationsOpened.Inc()
	setSessionCookie(w, freshToken)
	utils.WriteJSON(w, Authorization{
		PaymentRef:   intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
	}, http.StatusOK)
}

// GetOrder returns the order settled for a payment reference.
// @Summary      Get the order for a payment
// @Description  Polled by the storefront after payment confirmation; settles the payment into an order on first sight
// @Tags         checkout
// @Param        payment_ref  query  string  true  "Payment reference"
// @Success      200  {object}  Order
// @Success      202  {object}  OrderPending "Payment still settling"
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      402  {object}  utils.ErrorResponse "Payment failed"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Failure      502  {object}  utils.ErrorResponse "Order cannot be reconstructed"
// @Router       /checkout/order [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	paymentRef := r.URL.Query().Get("payment_ref")

	if err := h.validate.Var(paymentRef, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// Fast path: the webhook usually lands first and leaves the settled
	// order in the cache.
	if payload, ok := h.cache.Get(paymentRef); ok {
		var order entities.Order
		if err := order.Unmarshal(payload); err == nil {
			utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
			return
		}
	}

	intent, err := h.processor.RetrieveIntent(ctx, paymentRef)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve intent", slog.Any("error", err), slog.String("payment_ref", paymentRef))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	switch intent.Status {
	case payment.IntentSucceeded, payment.IntentFailed:
	default:
		utils.WriteJSON(w, OrderPending{Status: "pending"}, http.StatusAccepted)
		return
	}

	observed := "succeeded"
	if intent.Status == payment.IntentFailed {
		observed = "failed"
	}

	order, err := h.reconcile.Reconcile(ctx, paymentRef, "confirm", observed, intent.Metadata)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		reconciliationsTotal.WithLabelValues("confirm", "payment_failed").Inc()
		utils.WriteError(w, "payment failed", http.StatusPaymentRequired)
		return
	case errors.Is(err, entities.ErrReconciliationImpossible):
		reconciliationsTotal.WithLabelValues("confirm", "impossible").Inc()
		h.logger.ErrorContext(ctx, "order cannot be reconstructed", slog.String("payment_ref", paymentRef))
		utils.WriteError(w, "order cannot be reconstructed", http.StatusBadGateway)
		return
	case err != nil:
		reconciliationsTotal.WithLabelValues("confirm", "error").Inc()
		h.logger.ErrorContext(ctx, "failed to reconcile order", slog.Any("error", err), slog.String("payment_ref", paymentRef))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	reconciliationsTotal.WithLabelValues("confirm", "ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
