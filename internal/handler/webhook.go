package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/payment"
	"github.com/storefront/checkout-service/pkg/utils"
)

// maxWebhookBody caps the payload read; processor events are small.
const maxWebhookBody = 1 << 20

type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signatureHeader string) (payment.WebhookEvent, error)
}

type WebhookHandler struct {
	logger    *slog.Logger
	verifier  WebhookVerifier
	reconcile Reconciler
}

func NewWebhookHandler(logger *slog.Logger, verifier WebhookVerifier, reconcile Reconciler) *WebhookHandler {
	return &WebhookHandler{
		logger:    logger.With(slog.String("handler", "webhook")),
		verifier:  verifier,
		reconcile: reconcile,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhook/stripe", h.HandleEvent)
}

// HandleEvent settles processor notifications. A 2xx acknowledges the
// delivery; anything else makes the processor redeliver, so only transient
// failures may return 5xx.
func (h *WebhookHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	event, err := h.verifier.VerifyWebhook(body, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, payment.ErrBadSignature) {
		webhooksRejected.Inc()
		h.logger.WarnContext(ctx, "webhook signature rejected", slog.String("remote", r.RemoteAddr))
		utils.WriteError(w, "bad signature", http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteError(w, "malformed event", http.StatusBadRequest)
		return
	}

	webhooksReceived.WithLabelValues(string(event.Type)).Inc()

	if event.Type == payment.EventIgnored {
		w.WriteHeader(http.StatusOK)
		return
	}

	observed := "succeeded"
	if event.Type == payment.EventPaymentFailed {
		observed = "failed"
	}

	_, err = h.reconcile.Reconcile(ctx, event.PaymentRef, "webhook", observed, event.Metadata)
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		// A failed payment with no order is already settled.
		reconciliationsTotal.WithLabelValues("webhook", "payment_failed").Inc()
	case errors.Is(err, entities.ErrReconciliationImpossible):
		// Redelivery cannot fix a missing snapshot and cart; acknowledge so
		// the processor stops retrying, and leave the evidence in the logs.
		reconciliationsTotal.WithLabelValues("webhook", "impossible").Inc()
		h.logger.ErrorContext(ctx, "order cannot be reconstructed", slog.String("payment_ref", event.PaymentRef))
	case err != nil:
		reconciliationsTotal.WithLabelValues("webhook", "error").Inc()
		h.logger.ErrorContext(ctx, "failed to reconcile order", slog.Any("error", err), slog.String("payment_ref", event.PaymentRef))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		reconciliationsTotal.WithLabelValues("webhook", "ok").Inc()
	}

	w.WriteHeader(http.StatusOK)
}
