package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to mark an accepted order
// fulfilled.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	detail  string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order. The detail
// is the fulfillment reference forwarded to the customer; it may be empty.
func NewCompleteOrderCommand(orderID int64, detail string) (CompleteOrderCommand, error) {
	if orderID <= 0 {
		return CompleteOrderCommand{}, ErrOrderIDIsInvalid
	}

	return CompleteOrderCommand{
		orderID: orderID,
		detail:  detail,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// Detail returns the fulfillment reference for the customer.
func (c CompleteOrderCommand) Detail() string {
	return c.detail
}
