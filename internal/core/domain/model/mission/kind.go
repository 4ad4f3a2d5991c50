package mission

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Kind distinguishes pickup missions (collecting parcels from shippers)
// from delivery missions (bringing parcels to recipients). The kind decides
// which parcel status a mission applies on start and on completion.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// Pickup missions collect parcels from shippers and end at a warehouse.
	Pickup

	// Delivery missions carry parcels from a warehouse to recipients.
	Delivery
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Pickup:      "Pickup",
		Delivery:    "Delivery",
	}
}

// KindFromString parses a mission kind from its external string form.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != UnknownKind && str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a known mission kind", s))
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != Pickup && k != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid mission kind", int(k)))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
