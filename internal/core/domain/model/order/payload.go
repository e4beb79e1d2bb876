package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrPayloadIsNotConstructed is returned when a Payload was not created
	// through the NewPayload factory method.
	ErrPayloadIsNotConstructed = errors.New("Payload must be created via NewPayload constructor")
	// ErrAddressIsRequired is returned when the delivery address is missing.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrImageRefIsRequired is returned when the artifact reference is missing.
	ErrImageRefIsRequired = errs.NewValueIsRequiredError("image reference")
	// ErrCustomerNameIsRequired is returned when the customer name is missing.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrUPIHandleIsRequired is returned when a prepaid payload lacks the
	// customer's payment handle.
	ErrUPIHandleIsRequired = errs.NewValueIsRequiredError("upi handle")
	// ErrPaymentProofIsRequired is returned when a prepaid payload lacks the
	// proof-of-payment reference.
	ErrPaymentProofIsRequired = errs.NewValueIsRequiredError("payment proof reference")
)

// Payload is the validated, immutable content of an order: customer identity,
// delivery address, artifact reference, amount, and payment details. The
// dispatch engine treats it as opaque data. It is captured here once,
// complete, before an order ever exists, and never mutated afterwards.
//
// Field presence is enforced per payment mode: prepaid payloads must carry a
// UPI handle and a payment-proof reference; cash-on-delivery payloads carry
// neither.
type Payload struct {
	// customerID identifies the payload owner receiving outcome notifications
	customerID kernel.UUID

	// customerName is the display name forwarded to the assigned worker
	customerName string

	// address is the delivery destination
	address string

	// imageRef is an opaque reference to the order artifact (e.g., an
	// uploaded image in the transport layer's store)
	imageRef string

	// amount is the monetary breakdown of the order
	amount kernel.Amount

	// payment is how the customer pays
	payment PaymentMode

	// upiHandle is the customer's payment handle (prepaid only)
	upiHandle string

	// paymentProofRef references the proof of payment (prepaid only)
	paymentProofRef string

	// guard ensures the payload was created via NewPayload
	guard guard.ConstructorGuard
}

// NewPayload creates a validated order payload.
//
// Validation rules:
//   - customerID must be a constructed UUID
//   - customerName, address, and imageRef must be non-empty
//   - amount must be a constructed Amount
//   - payment must be a valid mode; prepaid requires upiHandle and
//     paymentProofRef, cash-on-delivery ignores both
func NewPayload(
	customerID kernel.UUID,
	customerName string,
	address string,
	imageRef string,
	amount kernel.Amount,
	payment PaymentMode,
	upiHandle string,
	paymentProofRef string,
) (Payload, error) {
	if err := errors.Join(
		customerID.Validate(),
		validateRequired(customerName, ErrCustomerNameIsRequired),
		validateRequired(address, ErrAddressIsRequired),
		validateRequired(imageRef, ErrImageRefIsRequired),
		amount.Validate(),
		payment.Validate(),
	); err != nil {
		return Payload{}, err
	}

	if payment == Prepaid {
		if err := errors.Join(
			validateRequired(upiHandle, ErrUPIHandleIsRequired),
			validateRequired(paymentProofRef, ErrPaymentProofIsRequired),
		); err != nil {
			return Payload{}, err
		}
	} else {
		upiHandle = ""
		paymentProofRef = ""
	}

	return Payload{
		customerID:      customerID,
		customerName:    customerName,
		address:         address,
		imageRef:        imageRef,
		amount:          amount,
		payment:         payment,
		upiHandle:       upiHandle,
		paymentProofRef: paymentProofRef,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func validateRequired(value string, requiredErr error) error {
	if value == "" {
		return requiredErr
	}
	return nil
}

// Validate ensures the Payload was created through NewPayload.
func (p Payload) Validate() error {
	return p.guard.Validate(ErrPayloadIsNotConstructed)
}

// CustomerID returns the identity of the payload owner.
func (p Payload) CustomerID() kernel.UUID {
	return p.customerID
}

// CustomerName returns the customer's display name.
func (p Payload) CustomerName() string {
	return p.customerName
}

// Address returns the delivery destination.
func (p Payload) Address() string {
	return p.address
}

// ImageRef returns the opaque artifact reference.
func (p Payload) ImageRef() string {
	return p.imageRef
}

// Amount returns the monetary breakdown.
func (p Payload) Amount() kernel.Amount {
	return p.amount
}

// PaymentMode returns how the customer pays.
func (p Payload) PaymentMode() PaymentMode {
	return p.payment
}

// UPIHandle returns the customer's payment handle. Empty for cash on delivery.
func (p Payload) UPIHandle() string {
	return p.upiHandle
}

// PaymentProofRef returns the proof-of-payment reference. Empty for cash on
// delivery.
func (p Payload) PaymentProofRef() string {
	return p.paymentProofRef
}
