package entities

import "github.com/shopspring/decimal"

// CartSnapshot is an immutable point-in-time copy of a cart's lines plus the
// pricing computed from them, taken at authorization-open time. It may
// outlive the cart it was taken from: the live cart can be emptied before the
// webhook fires, so the snapshot travels on the authorization's metadata.
type CartSnapshot struct {
	CartID    string
	AccountID string
	Items     []SnapshotItem
	Pricing   Pricing
}

type SnapshotItem struct {
	ProductID string          `json:"id"`
	VariantID string          `json:"variant,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"price"`
}

type Pricing struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}
