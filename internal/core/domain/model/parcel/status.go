package parcel

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined forward transitions so parcels
// follow the expected physical path from intake to delivery or return.
//
// Forward path:
//
//	Pending ──> To-be-picked-up ──> Picked-up ──> At-warehouse ──> In-transit ──┬──> Delivered
//	                                                                            ├──> Delivered-paid
//	                                                                            └──> Return-to-warehouse
//
// Return branch:
//
//	Return-to-warehouse ──┬──> Final-return
//	                      ├──> Returned-to-client-agency
//	                      ├──> Returned-to-sender
//	                      └──> Return-in-transit ──> Return-received
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. Transitions outside
// the graph are only possible through administrative overrides, which the
// tracking ledger records distinctly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a parcel is registered by a shipper.
	Pending

	// ToBePickedUp indicates the parcel is bound to a pickup mission.
	ToBePickedUp

	// PickedUp indicates the driver has collected the parcel from the shipper.
	PickedUp

	// AtWarehouse indicates the parcel has arrived at an operator warehouse.
	AtWarehouse

	// InTransit indicates the parcel is out on a delivery mission.
	InTransit

	// Delivered indicates the parcel reached its recipient. Terminal.
	Delivered

	// DeliveredPaid indicates the parcel was delivered and payment collected. Terminal.
	DeliveredPaid

	// ReturnToWarehouse indicates delivery failed and the parcel is heading back.
	ReturnToWarehouse

	// FinalReturn indicates the return was closed out at the warehouse. Terminal.
	FinalReturn

	// ReturnedToClientAgency indicates the parcel was handed back to the
	// shipper's agency. Terminal.
	ReturnedToClientAgency

	// ReturnedToSender indicates the parcel was handed back to the shipper. Terminal.
	ReturnedToSender

	// ReturnInTransit indicates the parcel is being shipped back to the sender.
	ReturnInTransit

	// ReturnReceived indicates the sender confirmed receipt of the return. Terminal.
	ReturnReceived
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		Pending:                "Pending",
		ToBePickedUp:           "To-be-picked-up",
		PickedUp:               "Picked-up",
		AtWarehouse:            "At-warehouse",
		InTransit:              "In-transit",
		Delivered:              "Delivered",
		DeliveredPaid:          "Delivered-paid",
		ReturnToWarehouse:      "Return-to-warehouse",
		FinalReturn:            "Final-return",
		ReturnedToClientAgency: "Returned-to-client-agency",
		ReturnedToSender:       "Returned-to-sender",
		ReturnInTransit:        "Return-in-transit",
		ReturnReceived:         "Return-received",
	}
}

// getTransitions returns the legal forward edges of the status graph.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:           {ToBePickedUp},
		ToBePickedUp:      {PickedUp},
		PickedUp:          {AtWarehouse},
		AtWarehouse:       {InTransit},
		InTransit:         {Delivered, DeliveredPaid, ReturnToWarehouse},
		ReturnToWarehouse: {FinalReturn, ReturnedToClientAgency, ReturnedToSender, ReturnInTransit},
		ReturnInTransit:   {ReturnReceived},
	}
}

// StatusFromString parses a status from its external string form.
// Unknown strings are rejected, which guards against free-text drift
// from callers that used to write arbitrary status values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known parcel status", s))
}

// Validate checks if the Status value is a member of the registry.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
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

// CanTransition answers whether moving from the current status to next is a
// legal forward transition. Re-applying the same status is not a transition;
// the engine treats it as an idempotent no-op before consulting this method.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanAdvance answers whether the target status is reachable from the
// current one along forward edges, possibly through intermediate statuses.
// Mission completion collapses physical hops the driver never reported
// individually (a picked-up parcel arriving at the warehouse implies the
// pickup happened), so the engine accepts any forward chain, not just
// single steps.
func (s Status) CanAdvance(target Status) bool {
	visited := map[Status]bool{s: true}
	frontier := []Status{s}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for _, next := range getTransitions()[current] {
			if next == target {
				return true
			}
			if !visited[next] {
				visited[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further forward transitions.
// Terminal parcels can only change through administrative overrides.
func (s Status) IsTerminal() bool {
	switch s {
	case Delivered, DeliveredPaid, FinalReturn, ReturnedToClientAgency, ReturnedToSender, ReturnReceived:
		return true
	default:
		return false
	}
}

// IsReturnBranch reports whether the status belongs to the return flow.
func (s Status) IsReturnBranch() bool {
	switch s {
	case ReturnToWarehouse, FinalReturn, ReturnedToClientAgency, ReturnedToSender, ReturnInTransit, ReturnReceived:
		return true
	default:
		return false
	}
}
