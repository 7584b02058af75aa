package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the classification target for every rejected order
// state change, including rating a non-delivered order and cancelling a
// delivered one. Specific failures wrap it with the offending status.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> InProgress ──> Delivered
//	   │ ▲          │
//	   │ │          └──────> Cancelled
//	   │ └────────┐
//	   ▼          │
//	PendingApproval ──> Rejected
//	   (manual price approval channels only)
//
// Pending orders may also move directly to Cancelled. Delivered, Cancelled,
// and Rejected are terminal. Cancellation is a terminal state, not removal:
// orders are never physically deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a dispatched order, waiting for a
	// courier to accept it.
	Pending

	// PendingApproval holds an order from a channel that requires manual
	// price approval before it may be dispatched.
	PendingApproval

	// Accepted indicates exactly one courier won the acceptance race and is
	// on the way to the pickup point.
	Accepted

	// InProgress indicates the courier picked the package up and is
	// delivering it.
	InProgress

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state reached from Pending or
	// Accepted.
	Cancelled

	// Rejected is the terminal state of an order whose price was declined
	// during manual approval.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		PendingApproval: "PendingApproval",
		Accepted:        "Accepted",
		InProgress:      "InProgress",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
		Rejected:        "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		PendingApproval: "PendingApproval",
		Accepted:        "Accepted",
		InProgress:      "InProgress",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
		Rejected:        "Rejected",
	}
}

// ParseStatus converts the stored representation back to a Status.
func ParseStatus(str string) (Status, error) {
	for s, valid := range getValidStatusStrings() {
		if valid == str {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status", ErrInvalidTransition, str)
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return invalidTransitionError(s, "is not a valid status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a Pending or PendingApproval order must not carry a
// courier, while Accepted, InProgress, and Delivered orders must.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	switch s {
	case Pending, PendingApproval:
		if courier {
			return invalidTransitionError(s, "must not have a courier")
		}
	case Accepted, InProgress, Delivered:
		if !courier {
			return invalidTransitionError(s, "must have a courier")
		}
	case Cancelled, Rejected:
		// A cancelled order keeps whatever courier it had for history.
	default:
		return invalidTransitionError(s, "is not a valid status")
	}
	return nil
}

// Accept transitions the status to Accepted.
// Only Pending orders may be accepted; the atomic conditional write in the
// repository is the authoritative arbiter under contention, this guard
// mirrors it for in-memory correctness.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, invalidTransitionError(s, "cannot be accepted")
	}
	return Accepted, nil
}

// Start transitions the status to InProgress (package picked up).
func (s Status) Start() (Status, error) {
	if s != Accepted {
		return 0, invalidTransitionError(s, "cannot be started")
	}
	return InProgress, nil
}

// Deliver transitions the status to Delivered.
// Only InProgress orders may be delivered.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, invalidTransitionError(s, "cannot be delivered")
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Allowed only from Pending and Accepted; in-flight and terminal orders
// cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, invalidTransitionError(s, "cannot be cancelled")
	}
	return Cancelled, nil
}

// HoldForApproval transitions the status to PendingApproval.
// Used by channels whose prices require manual review before dispatch.
func (s Status) HoldForApproval() (Status, error) {
	if s != Pending {
		return 0, invalidTransitionError(s, "cannot be held for approval")
	}
	return PendingApproval, nil
}

// ApprovePricing releases a held order back to Pending.
func (s Status) ApprovePricing() (Status, error) {
	if s != PendingApproval {
		return 0, invalidTransitionError(s, "cannot be price-approved")
	}
	return Pending, nil
}

// RejectPricing transitions a held order to the terminal Rejected state.
func (s Status) RejectPricing() (Status, error) {
	if s != PendingApproval {
		return 0, invalidTransitionError(s, "cannot be price-rejected")
	}
	return Rejected, nil
}

func invalidTransitionError(s Status, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidTransition, s.String(), msg)
}
