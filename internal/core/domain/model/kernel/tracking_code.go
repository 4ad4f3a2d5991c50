package kernel

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

const (
	// trackingCodePrefix is the fixed prefix of every parcel tracking code.
	trackingCodePrefix = "PF-"
	// trackingCodeRandomLength is the number of random characters after the prefix.
	trackingCodeRandomLength = 10
	// trackingCodeAlphabet holds the characters used in the random part.
	// 0/O and 1/I are excluded to keep codes unambiguous when read aloud.
	trackingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ErrTrackingCodeIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingCode. Tracking codes must be created using
// NewTrackingCode or TrackingCodeFromString.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via NewTrackingCode or TrackingCodeFromString constructors")

var trackingCodePattern = regexp.MustCompile(`^PF-[A-HJ-NP-Z2-9]{10}$`)

// TrackingCode is the immutable public identifier of a parcel.
// It is issued once at parcel registration and never changes afterwards,
// which makes it safe to hand out to shippers and recipients.
//
// The zero value of TrackingCode is invalid and will fail validation -
// use the constructors to create instances.
//
// Example:
//
//	code, err := kernel.NewTrackingCode()
//	if err != nil {
//	    // Handle generation error
//	}
//	fmt.Println(code.String()) // e.g. "PF-K7TRM2WQ9A"
type TrackingCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode generates a fresh random tracking code.
// Randomness comes from crypto/rand so codes are not guessable or
// derivable from registration order.
func NewTrackingCode() (TrackingCode, error) {
	buf := make([]byte, trackingCodeRandomLength)
	if _, err := rand.Read(buf); err != nil {
		return TrackingCode{}, fmt.Errorf("generating tracking code: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(trackingCodePrefix)
	for _, b := range buf {
		sb.WriteByte(trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)])
	}

	return TrackingCode{
		value: sb.String(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// TrackingCodeFromString parses a tracking code from its string form.
// Returns an error if the string does not match the issued format, which
// guards against free-text drift from external callers.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !trackingCodePattern.MatchString(s) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q does not match the issued tracking code format", s))
	}

	return TrackingCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the tracking code in its canonical form.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks if the tracking code is properly constructed.
// Returns ErrTrackingCodeIsNotConstructed for zero-value instances.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}
