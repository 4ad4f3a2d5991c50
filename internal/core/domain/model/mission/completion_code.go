package mission

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"regexp"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

const (
	// completionCodeLength is the number of characters in a completion code.
	completionCodeLength = 6
	// completionCodeAlphabet holds the characters used for completion codes.
	// 0/O and 1/I are excluded so codes survive being read over the phone.
	completionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ErrCompletionCodeIsNotConstructed is returned when using an improperly
// initialized CompletionCode.
var ErrCompletionCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"completion code must be created via NewCompletionCode or CompletionCodeFromString constructors")

var completionCodePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{6}$`)

// CompletionCode is the one-time code a driver or recipient must present to
// mark a mission complete. It is generated from crypto/rand at mission
// creation, never derived from the mission number, driver, or date. A
// derivable code is guessable and defeats the check entirely.
//
// Matching is constant-time and callers must surface a mismatch as a generic
// invalid-code error with no hint about which part failed.
type CompletionCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewCompletionCode generates a fresh random completion code.
func NewCompletionCode() (CompletionCode, error) {
	buf := make([]byte, completionCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return CompletionCode{}, fmt.Errorf("generating completion code: %w", err)
	}

	code := make([]byte, completionCodeLength)
	for i, b := range buf {
		code[i] = completionCodeAlphabet[int(b)%len(completionCodeAlphabet)]
	}

	return CompletionCode{
		value: string(code),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// CompletionCodeFromString reconstructs a completion code from persistence.
func CompletionCodeFromString(s string) (CompletionCode, error) {
	if s == "" {
		return CompletionCode{}, errs.NewValueIsRequiredError("completionCode")
	}
	if !completionCodePattern.MatchString(s) {
		return CompletionCode{}, errs.NewValueIsInvalidError("completionCode")
	}

	return CompletionCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the code's character form, used for persistence and for
// handing the code to the driver at mission creation.
func (c CompletionCode) String() string {
	return c.value
}

// Matches reports whether the presented code equals this one.
// The comparison is constant-time.
func (c CompletionCode) Matches(presented string) bool {
	if len(presented) != len(c.value) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.value), []byte(presented)) == 1
}

// Validate checks if the completion code is properly constructed.
func (c CompletionCode) Validate() error {
	return c.guard.Validate(ErrCompletionCodeIsNotConstructed)
}
