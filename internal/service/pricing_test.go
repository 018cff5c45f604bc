package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/checkout-service/internal/config"
	"github.com/storefront/checkout-service/internal/entities"
	"github.com/storefront/checkout-service/internal/service"
)

func newCalculator(t *testing.T) service.Calculator {
	t.Helper()
	calc, err := service.NewCalculator(config.Pricing{
		FreeShippingThreshold: "100.00",
		FlatShippingFee:       "10.00",
		TaxRate:               "0.08",
	})
	require.NoError(t, err)
	return calc
}

func item(price string, qty int) entities.SnapshotItem {
	return entities.SnapshotItem{
		ProductID: "p1",
		Name:      "widget",
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestCalculator_Price(t *testing.T) {
	calc := newCalculator(t)

	testCases := []struct {
		name         string
		items        []entities.SnapshotItem
		wantSubtotal string
		wantShipping string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "below free shipping threshold",
			items:        []entities.SnapshotItem{item("12.50", 2)},
			wantSubtotal: "25.00",
			wantShipping: "10.00",
			wantTax:      "2.00",
			wantTotal:    "37.00",
		},
		{
			name:         "exactly at threshold ships free",
			items:        []entities.SnapshotItem{item("50.00", 2)},
			wantSubtotal: "100.00",
			wantShipping: "0",
			wantTax:      "8.00",
			wantTotal:    "108.00",
		},
		{
			name:         "just under threshold pays shipping",
			items:        []entities.SnapshotItem{item("99.99", 1)},
			wantSubtotal: "99.99",
			wantShipping: "10.00",
			wantTax:      "8.00", // 7.9992 rounds to 8.00
			wantTotal:    "117.99",
		},
		{
			name:         "above threshold",
			items:        []entities.SnapshotItem{item("75.00", 3)},
			wantSubtotal: "225.00",
			wantShipping: "0",
			wantTax:      "18.00",
			wantTotal:    "243.00",
		},
		{
			name: "mixed lines",
			items: []entities.SnapshotItem{
				item("19.99", 1),
				item("5.25", 4),
			},
			wantSubtotal: "40.99",
			wantShipping: "10.00",
			wantTax:      "3.28", // 3.2792 rounds to 3.28
			wantTotal:    "54.27",
		},
		{
			name:         "no items",
			items:        nil,
			wantSubtotal: "0",
			wantShipping: "10.00",
			wantTax:      "0",
			wantTotal:    "10.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Price(tc.items)

			assert.True(t, got.Subtotal.Equal(decimal.RequireFromString(tc.wantSubtotal)), "subtotal %s", got.Subtotal)
			assert.True(t, got.Shipping.Equal(decimal.RequireFromString(tc.wantShipping)), "shipping %s", got.Shipping)
			assert.True(t, got.Tax.Equal(decimal.RequireFromString(tc.wantTax)), "tax %s", got.Tax)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tc.wantTotal)), "total %s", got.Total)
		})
	}
}

func TestCalculator_Price_Deterministic(t *testing.T) {
	calc := newCalculator(t)
	items := []entities.SnapshotItem{item("33.33", 3), item("0.01", 7)}

	first := calc.Price(items)
	second := calc.Price(items)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Tax.Equal(second.Tax))
}

func TestMinorUnits(t *testing.T) {
	testCases := []struct {
		amount string
		want   int64
	}{
		{"37.00", 3700},
		{"0", 0},
		{"108.00", 10800},
		{"117.99", 11799},
		{"0.01", 1},
		{"54.27", 5427},
	}

	for _, tc := range testCases {
		got := service.MinorUnits(decimal.RequireFromString(tc.amount))
		assert.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}
