package mission

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a mission.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Accepted-by-driver ──> In-progress ──> Completed
//	          └──> Rejected-by-driver
//
// Any state except Completed may transition to Cancelled. Completed and
// Cancelled are terminal: a terminal mission no longer holds its parcels
// for the purposes of the no-double-booking invariant.
//
// Rejected-by-driver is deliberately non-terminal: a rejected mission still
// holds its parcels and demands until an operator cancels it, so nothing is
// silently re-assigned behind the operator's back.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status awaiting the driver's response.
	Pending

	// AcceptedByDriver indicates the driver agreed to run the mission.
	AcceptedByDriver

	// RejectedByDriver indicates the driver declined the mission.
	// The mission still holds its parcels until an operator cancels it.
	RejectedByDriver

	// InProgress indicates the driver is executing the mission.
	InProgress

	// Completed indicates the mission was verified complete. Terminal.
	Completed

	// Cancelled indicates an operator aborted the mission. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Pending:          "Pending",
		AcceptedByDriver: "Accepted-by-driver",
		RejectedByDriver: "Rejected-by-driver",
		InProgress:       "In-progress",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

// StatusFromString parses a mission status from its external string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known mission status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid mission status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid mission status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final.
// Parcels held by a terminal mission no longer count as assigned.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to AcceptedByDriver.
// Legal only from Pending.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictError("mission",
			fmt.Sprintf("%s is not a valid status to accept from", s))
	}
	return AcceptedByDriver, nil
}

// Reject transitions the status to RejectedByDriver.
// Legal only from Pending.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictError("mission",
			fmt.Sprintf("%s is not a valid status to reject from", s))
	}
	return RejectedByDriver, nil
}

// Start transitions the status to InProgress.
// Legal only from AcceptedByDriver.
func (s Status) Start() (Status, error) {
	if s != AcceptedByDriver {
		return 0, errs.NewConflictError("mission",
			fmt.Sprintf("%s is not a valid status to start from", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
// Legal only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewConflictError("mission",
			fmt.Sprintf("%s is not a valid status to complete from", s))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Legal from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewConflictError("mission",
			fmt.Sprintf("%s is not a valid status to cancel from", s))
	}
	return Cancelled, nil
}
