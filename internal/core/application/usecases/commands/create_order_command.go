package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place an order.
// Encapsulates the complete order content; everything the dispatch cascade
// needs is captured before an order id is ever allocated.
//
// Example:
//
//	amount, _ := kernel.NewAmount(400, 36)
//	cmd, err := NewCreateOrderCommand(
//	    customerID, "Alice", "12 High Street", "img-1", amount,
//	    order.CashOnDelivery, "", "",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	customerName    string
	address         string
	imageRef        string
	amount          kernel.Amount
	payment         order.PaymentMode
	upiHandle       string
	paymentProofRef string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Field
// validation follows the payload rules: identity, name, address, artifact
// reference, and amount are required, and prepaid orders must carry the
// payment handle and proof reference.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	customerName string,
	address string,
	imageRef string,
	amount kernel.Amount,
	payment order.PaymentMode,
	upiHandle string,
	paymentProofRef string,
) (CreateOrderCommand, error) {
	// the payload constructor owns the validation rules; building it here
	// keeps the command impossible to construct with invalid content
	if _, err := order.NewPayload(
		customerID, customerName, address, imageRef, amount,
		payment, upiHandle, paymentProofRef,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
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

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identity.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// ImageRef returns the opaque order artifact reference.
func (c CreateOrderCommand) ImageRef() string {
	return c.imageRef
}

// Amount returns the monetary breakdown.
func (c CreateOrderCommand) Amount() kernel.Amount {
	return c.amount
}

// PaymentMode returns how the customer pays.
func (c CreateOrderCommand) PaymentMode() order.PaymentMode {
	return c.payment
}

// UPIHandle returns the customer's payment handle. Empty for cash on delivery.
func (c CreateOrderCommand) UPIHandle() string {
	return c.upiHandle
}

// PaymentProofRef returns the proof-of-payment reference. Empty for cash on
// delivery.
func (c CreateOrderCommand) PaymentProofRef() string {
	return c.paymentProofRef
}
