package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Product is the read-only slice of the catalog this service needs: a live
// unit price and a display name.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
