// Package payment wraps the external payment processor. All amounts crossing
// this boundary are integers in the smallest currency unit; the conversion
// from decimal currency units happens in the checkout service, exactly once
// per amount.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/storefront/checkout-service/internal/config"
)

// ErrBadSignature marks a webhook payload whose signature did not verify.
// Treated as a potential attack: rejected outright, never retried.
var ErrBadSignature = errors.New("webhook signature verification failed")

// Intent is the processor-agnostic view of a payment authorization.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	Amount       int64
	Metadata     map[string]string
}

type IntentStatus string

const (
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
	IntentPending   IntentStatus = "pending"
	// IntentOpen means the authorization is still awaiting a payment method
	// or confirmation and can be reused for another checkout attempt.
	IntentOpen IntentStatus = "open"
)

type EventType string

const (
	EventPaymentSucceeded EventType = "payment.succeeded"
	EventPaymentFailed    EventType = "payment.failed"
	EventIgnored          EventType = "ignored"
)

// WebhookEvent is a verified, decoded processor notification.
type WebhookEvent struct {
	Type       EventType
	PaymentRef string
	Metadata   map[string]string
}

type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type Client struct {
	intents       intentAPI
	currency      string
	webhookSecret string
}

func NewClient(cfg config.Stripe) *Client {
	sc := client.New(cfg.SecretKey, nil)
	return &Client{
		intents:       sc.PaymentIntents,
		currency:      strings.ToLower(cfg.Currency),
		webhookSecret: cfg.WebhookSecret,
	}
}

// NewClientWithAPI is used by tests to substitute the intent API.
func NewClientWithAPI(api intentAPI, currency, webhookSecret string) *Client {
	return &Client{intents: api, currency: strings.ToLower(currency), webhookSecret: webhookSecret}
}

func (c *Client) CreateIntent(ctx context.Context, amountMinorUnits int64) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := c.intents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("stripe: create intent: %w", err)
	}
	return mapIntent(pi), nil
}

func (c *Client) RetrieveIntent(ctx context.Context, intentID string) (Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.intents.Get(intentID, params)
	if err != nil {
		return Intent{}, fmt.Errorf("stripe: retrieve intent: %w", err)
	}
	return mapIntent(pi), nil
}

// UpdateIntent refreshes the authorized amount and replaces the attached
// metadata. The create call does not accept the full metadata payload
// atomically, so the snapshot always arrives through here.
func (c *Client) UpdateIntent(ctx context.Context, intentID string, amountMinorUnits int64, metadata map[string]string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Metadata: metadata,
	}
	params.Context = ctx

	pi, err := c.intents.Update(intentID, params)
	if err != nil {
		return Intent{}, fmt.Errorf("stripe: update intent: %w", err)
	}
	return mapIntent(pi), nil
}

// VerifyWebhook checks the event signature before anything else; an invalid
// signature yields ErrBadSignature and no decoded payload.
func (c *Client) VerifyWebhook(payload []byte, signatureHeader string) (WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: %s", ErrBadSignature, err)
	}

	var eventType EventType
	switch string(event.Type) {
	case "payment_intent.succeeded":
		eventType = EventPaymentSucceeded
	case "payment_intent.payment_failed":
		eventType = EventPaymentFailed
	default:
		return WebhookEvent{Type: EventIgnored}, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return WebhookEvent{}, fmt.Errorf("stripe: decode event payload: %w", err)
	}

	return WebhookEvent{
		Type:       eventType,
		PaymentRef: pi.ID,
		Metadata:   pi.Metadata,
	}, nil
}

func mapIntent(pi *stripe.PaymentIntent) Intent {
	return Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       mapStatus(pi.Status),
		Amount:       pi.Amount,
		Metadata:     pi.Metadata,
	}
}

func mapStatus(status stripe.PaymentIntentStatus) IntentStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return IntentSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return IntentFailed
	case stripe.PaymentIntentStatusRequiresPaymentMethod,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresAction:
		return IntentOpen
	default:
		return IntentPending
	}
}
