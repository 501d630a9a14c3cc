// FILE: internal/lifecycle/lifecycle.go
package lifecycle

import (
	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/pkg/apperr"
)

// Status is a contract's authoritative state. Values are the user-facing
// display labels stored in the database.
type Status string

const (
	StatusActive             Status = constant.ContractStatusActive
	StatusExpired            Status = constant.ContractStatusExpired
	StatusTerminationPending Status = constant.ContractStatusTerminationPending
	StatusTerminated         Status = constant.ContractStatusTerminated
)

// Event is something that happens to a contract and may move its status.
type Event string

const (
	// EventExpire fires from the expiry sweep when end_date has passed.
	EventExpire Event = "expire"
	// EventRequestTermination records a "Yes" termination decision without
	// supporting documents.
	EventRequestTermination Event = "request_termination"
	// EventCancelTermination records a "No" decision, clearing any pending
	// termination.
	EventCancelTermination Event = "cancel_termination"
	// EventFinalize terminates the contract once the termination letter and
	// final invoice are on file.
	EventFinalize Event = "finalize"
	// EventExtend pushes end_date forward and reinstates the contract.
	EventExtend Event = "extend"
)

// transitions is the closed current-state x event table. Absence means the
// transition is illegal.
var transitions = map[Status]map[Event]Status{
	StatusActive: {
		EventExpire:             StatusExpired,
		EventRequestTermination: StatusTerminationPending,
		EventFinalize:           StatusTerminated,
		EventExtend:             StatusActive,
	},
	StatusExpired: {
		EventRequestTermination: StatusTerminationPending,
		EventFinalize:           StatusTerminated,
		EventExtend:             StatusActive,
	},
	// EventCancelTermination is only legal while a termination is actually
	// pending. Allowing it elsewhere would let a cancel reinstate an expired
	// contract without an extension.
	StatusTerminationPending: {
		EventCancelTermination: StatusActive,
		EventFinalize:          StatusTerminated,
	},
	// StatusTerminated is terminal: no outgoing transitions.
	StatusTerminated: {},
}

// Next returns the status that results from applying ev to current, or a
// state-conflict error when the table forbids it.
func Next(current Status, ev Event) (Status, error) {
	events, ok := transitions[current]
	if !ok {
		return "", apperr.StateConflict("unknown contract status %q", current)
	}
	next, ok := events[ev]
	if !ok {
		return "", apperr.StateConflict("contract in status %q does not allow %s", current, ev)
	}
	return next, nil
}

// CanTransition reports whether ev is legal from current.
func CanTransition(current Status, ev Event) bool {
	_, err := Next(current, ev)
	return err == nil
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// Valid reports whether s is one of the four known statuses.
func Valid(s Status) bool {
	_, ok := transitions[s]
	return ok
}
