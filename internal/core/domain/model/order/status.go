package order

import (
	"fmt"

	"orderdispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The zero value is Unknown and
// is never valid.
type Status int

const (
	Unknown Status = iota
	Placed
	Accepted
	Preparing
	Ready
	PickedUp
	OutForDelivery
	Delivered
	Rejected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		Accepted:       "accepted",
		Preparing:      "preparing",
		Ready:          "ready",
		PickedUp:       "picked_up",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Rejected:       "rejected",
		Cancelled:      "cancelled",
	}
}

// getTransitions lists the legal edges. Cancelled is reachable from every
// non-terminal state and is added by CanTransitionTo.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal states have no outgoing edges
	return map[Status][]Status{
		Placed:         {Accepted, Rejected},
		Accepted:       {Preparing, Rejected},
		Preparing:      {Ready},
		Ready:          {PickedUp},
		PickedUp:       {OutForDelivery, Delivered},
		OutForDelivery: {Delivered},
	}
}

// ParseStatus maps the wire name of a status ("picked_up") to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarshalText renders the wire name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// HoldsDriver reports whether an order in this status keeps its driver busy.
func (s Status) HoldsDriver() bool {
	return s == PickedUp || s == OutForDelivery
}

// CanTransitionTo returns a ConflictError when target is not reachable from s
// in one step.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Cancelled && !s.IsTerminal() && s != Unknown {
		return nil
	}

	for _, next := range getTransitions()[s] {
		if next == target {
			return nil
		}
	}

	return errs.NewConflictError("status", fmt.Sprintf("cannot move from %s to %s", s, target))
}
