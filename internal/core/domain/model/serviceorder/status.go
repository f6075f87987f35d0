package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the operational lifecycle state of a service order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct workshop workflow.
//
// State transitions:
//
//	ToConfirm ──┬──> Approved ──┬──> Ready ──> Delivered
//	            │       │       │
//	            │       v       │
//	            └──> Rejected <─┘
//	                    │
//	                    └──> ToConfirm (re-open)
//
// Delivered is a terminal state with no outgoing transitions.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusToConfirm is the initial status when an order is first created.
	// The customer has not yet approved the proposed work.
	StatusToConfirm

	// StatusApproved indicates the customer accepted the proposed work.
	StatusApproved

	// StatusReady indicates the work is finished and the equipment
	// is waiting to be picked up.
	StatusReady

	// StatusDelivered indicates the equipment was handed back to the
	// customer. This is a final state with no further transitions.
	StatusDelivered

	// StatusRejected indicates the customer declined the proposed work.
	// A rejected order can be re-opened back to ToConfirm.
	StatusRejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusToConfirm: "ToConfirm",
		StatusApproved:  "Approved",
		StatusReady:     "Ready",
		StatusDelivered: "Delivered",
		StatusRejected:  "Rejected",
	}
}

// getStatusSuccessors returns the transition table for the operational
// workflow. A transition is legal only when the target appears in the
// current state's successor list. Self-transitions are not listed and
// are therefore rejected.
func getStatusSuccessors() map[Status][]Status {
	return map[Status][]Status{
		StatusToConfirm: {StatusApproved, StatusRejected},
		StatusApproved:  {StatusReady, StatusRejected},
		StatusReady:     {StatusDelivered},
		StatusDelivered: {},
		StatusRejected:  {StatusToConfirm},
	}
}

// StatusFromString parses a status name as produced by String().
// Unknown is never parseable; an unrecognized name returns an error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusSuccessors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the workflow allows moving from the
// current state to target. Any transition not present in the table is
// rejected, including self-transitions and anything out of a terminal
// state.
func (s Status) CanTransitionTo(target Status) bool {
	for _, successor := range getStatusSuccessors()[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to target.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) when either state is invalid or the transition is not allowed;
//     the error names both states
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStatusTransitionError("status", s.String(), target.String())
	}
	return target, nil
}
