package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Normal progression:
//
//	SUBMITTED ──> IN_FULFILLMENT ──> SHIPPED ──> DELIVERED
//
// The progression is not enforced on updates: a status change may target any
// valid status regardless of the current one. The single structural rule,
// cancellation only from SUBMITTED, lives on the aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Submitted is the initial status of every newly created order.
	// Only orders in this status can be canceled, and the background sweep
	// promotes them to InFulfillment.
	Submitted

	// InFulfillment indicates the order is being picked and packed.
	InFulfillment

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order has reached the customer. The model does
	// not treat it as terminal; further status updates remain possible.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Submitted:     "SUBMITTED",
		InFulfillment: "IN_FULFILLMENT",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:     "SUBMITTED",
		InFulfillment: "IN_FULFILLMENT",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
	}
}

// Validate checks that the Status is one of the enumerated lifecycle values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name ("SUBMITTED", "IN_FULFILLMENT", ...)
// into a Status. Unknown names are rejected.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// IsCancellable reports whether an order in this status may still be canceled.
// Cancellation is only allowed before fulfillment starts.
func (s Status) IsCancellable() bool {
	return s == Submitted
}
