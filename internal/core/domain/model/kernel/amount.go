package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

const (
	// MinItemPrice is the minimum accepted item price. Orders below this
	// threshold are rejected before they reach the dispatch engine.
	MinItemPrice = 149.0
	// MaxItemPrice bounds the item price to guard against fat-finger input.
	MaxItemPrice = 100000.0
)

// ErrAmountIsNotConstructed indicates that an Amount was not created through
// NewAmount. It is returned when validating a zero-value Amount.
var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("Amount must be created via NewAmount")

// Amount is a value object carrying the monetary breakdown of an order: the
// item price, the tax charged on top, and the derived total. The total is
// fixed at construction: half the item price plus tax, rounded to two decimal
// places.
//
// Amount is immutable; the zero value is invalid and must be constructed
// through NewAmount.
type Amount struct {
	itemPrice float64
	tax       float64
	total     float64
}

// NewAmount creates an Amount from an item price and a tax value.
//
// Validation rules:
//   - itemPrice must be within [MinItemPrice, MaxItemPrice]
//   - tax must not be negative
//
// The total is computed as itemPrice*0.5 + tax, rounded to two decimals.
func NewAmount(itemPrice, tax float64) (Amount, error) {
	if itemPrice < MinItemPrice || itemPrice > MaxItemPrice {
		return Amount{}, errs.NewValueIsOutOfRangeError("item price", itemPrice, MinItemPrice, MaxItemPrice)
	}

	if tax < 0 {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("tax",
			fmt.Errorf("%.2f is negative", tax))
	}

	return Amount{
		itemPrice: itemPrice,
		tax:       tax,
		total:     roundToCents(itemPrice*0.5 + tax),
	}, nil
}

// roundToCents rounds to two decimal places, half away from zero.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemPrice returns the raw item price.
func (a Amount) ItemPrice() float64 {
	return a.itemPrice
}

// Tax returns the tax charged on the order.
func (a Amount) Tax() float64 {
	return a.tax
}

// Total returns the final amount billed to the customer.
func (a Amount) Total() float64 {
	return a.total
}

// IsEqual compares two Amounts by their components.
func (a Amount) IsEqual(other Amount) bool {
	return a.itemPrice == other.itemPrice && a.tax == other.tax
}

// Validate checks that the Amount was created through NewAmount. The zero
// value fails because a zero item price is below MinItemPrice.
func (a Amount) Validate() error {
	if a.itemPrice < MinItemPrice {
		return ErrAmountIsNotConstructed
	}
	return nil
}
