package entities

import (
	"errors"
	"time"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrCartEmpty    = errors.New("cart is empty")
	// ErrNoIdentity means the caller supplied neither a session token nor an
	// account id. This is an input-contract violation, not a runtime condition.
	ErrNoIdentity = errors.New("no cart identity supplied")
)

// Cart is identified by exactly one of SessionToken or AccountID at any time.
type Cart struct {
	ID           string
	SessionToken string
	AccountID    string

	// PaymentIntentID holds an open, unconsumed authorization for this cart,
	// reused on repeated checkout attempts instead of opening duplicates.
	PaymentIntentID string

	Lines []CartLine

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine carries no price: unit prices are re-read from the catalog on
// every computation so totals always reflect the current catalog price.
type CartLine struct {
	ProductID string
	VariantID string // empty means the product has no variant selected
	Quantity  int
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}
