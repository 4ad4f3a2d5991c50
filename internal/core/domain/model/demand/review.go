package demand

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// ReviewState represents the operator's decision on a demand.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> NotAccepted
//
// A demand is reviewed exactly once; both outcomes are final.
type ReviewState int

const (
	// UnknownReview represents an invalid or undefined review state.
	UnknownReview ReviewState = iota

	// ReviewPending is the initial state awaiting an operator decision.
	ReviewPending

	// Accepted indicates the operator approved the demand for assignment.
	Accepted

	// NotAccepted indicates the operator declined the demand. Final.
	NotAccepted
)

// getReviewStateStrings returns a map of ReviewState values to their string
// representations. All states are included for string conversion.
func getReviewStateStrings() map[ReviewState]string {
	return map[ReviewState]string{
		UnknownReview: "Unknown",
		ReviewPending: "Pending",
		Accepted:      "Accepted",
		NotAccepted:   "Not Accepted",
	}
}

// ReviewStateFromString parses a review state from its external string form.
func ReviewStateFromString(s string) (ReviewState, error) {
	for state, str := range getReviewStateStrings() {
		if state != UnknownReview && str == s {
			return state, nil
		}
	}
	return UnknownReview, errs.NewValueIsInvalidErrorWithCause("reviewState",
		fmt.Errorf("%q is not a known review state", s))
}

// Validate checks if the ReviewState value is valid.
func (s ReviewState) Validate() error {
	if s == UnknownReview {
		return errs.NewValueIsInvalidErrorWithCause("reviewState",
			fmt.Errorf("%d is not a valid review state", int(s)))
	}
	if _, ok := getReviewStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reviewState",
			fmt.Errorf("%d is not a valid review state", int(s)))
	}
	return nil
}

// String returns the human-readable name of the review state.
func (s ReviewState) String() string {
	if str, ok := getReviewStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDecided reports whether the operator has reviewed the demand.
func (s ReviewState) IsDecided() bool {
	return s == Accepted || s == NotAccepted
}
