package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PaymentMode represents how the customer pays for an order.
type PaymentMode int

const (
	// PaymentModeUnknown represents an invalid or undefined payment mode.
	PaymentModeUnknown PaymentMode = iota

	// CashOnDelivery means the customer pays the worker at handover.
	CashOnDelivery

	// Prepaid means the customer paid up front; the payload carries the
	// payment handle and a proof-of-payment reference.
	Prepaid
)

// ParsePaymentMode converts the wire representation ("cod"/"prepaid") into a
// PaymentMode. Returns an error for any other input.
func ParsePaymentMode(raw string) (PaymentMode, error) {
	switch raw {
	case "cod":
		return CashOnDelivery, nil
	case "prepaid":
		return Prepaid, nil
	default:
		return PaymentModeUnknown, errs.NewValueIsInvalidErrorWithCause("payment mode",
			fmt.Errorf("%q is not one of cod, prepaid", raw))
	}
}

// Validate checks that the PaymentMode is one of the defined modes.
func (m PaymentMode) Validate() error {
	if m != CashOnDelivery && m != Prepaid {
		return errs.NewValueIsInvalidErrorWithCause("payment mode",
			fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the wire representation of the payment mode.
func (m PaymentMode) String() string {
	switch m {
	case CashOnDelivery:
		return "cod"
	case Prepaid:
		return "prepaid"
	default:
		return "Unknown"
	}
}
