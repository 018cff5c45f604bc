package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/storefront/checkout-service/internal/config"
	"github.com/storefront/checkout-service/internal/entities"
)

// Calculator is the single canonical pricing site. Authorization opening and
// the live-cart reconciliation fallback both go through it; a deviation
// between call sites is a defect, not a behavior.
type Calculator struct {
	freeShippingThreshold decimal.Decimal
	flatShippingFee       decimal.Decimal
	taxRate               decimal.Decimal
}

func NewCalculator(cfg config.Pricing) (Calculator, error) {
	threshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return Calculator{}, fmt.Errorf("invalid free shipping threshold: %w", err)
	}
	fee, err := decimal.NewFromString(cfg.FlatShippingFee)
	if err != nil {
		return Calculator{}, fmt.Errorf("invalid flat shipping fee: %w", err)
	}
	rate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return Calculator{}, fmt.Errorf("invalid tax rate: %w", err)
	}

	return Calculator{
		freeShippingThreshold: threshold,
		flatShippingFee:       fee,
		taxRate:               rate,
	}, nil
}

// Price computes the deterministic breakdown for a set of snapshot items.
// All amounts are decimal currency units.
func (c Calculator) Price(items []entities.SnapshotItem) entities.Pricing {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := c.flatShippingFee
	if subtotal.GreaterThanOrEqual(c.freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(c.taxRate).Round(2)

	return entities.Pricing{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// MinorUnits converts a decimal amount to an integer count of the smallest
// currency unit. This is the only place the representation boundary is
// crossed; converting an already-converted amount silently produces
// 100x-wrong totals.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}
