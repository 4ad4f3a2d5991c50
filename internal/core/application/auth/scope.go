// Package auth holds the agency scoping rules applied to reads and
// assignments. Visibility checks all funnel through a single Scope value so
// the rule lives in one place instead of being re-derived per handler.
package auth

import (
	"parcelflow/internal/pkg/errs"
)

// Scope restricts an operation to one agency, or to none at all for
// back-office roles that see everything.
//
// The zero value is not a valid scope; use AllAgencies or ForAgency.
type Scope struct {
	agency string
	all    bool

	isConstructed bool
}

// AllAgencies creates an unrestricted scope for back-office operators.
func AllAgencies() Scope {
	return Scope{all: true, isConstructed: true}
}

// ForAgency creates a scope limited to a single agency.
func ForAgency(agency string) (Scope, error) {
	if agency == "" {
		return Scope{}, errs.NewValueIsRequiredError("agency")
	}
	return Scope{agency: agency, isConstructed: true}, nil
}

// Validate ensures the scope was created through a constructor.
func (s Scope) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("scope")
	}
	return nil
}

// IsAll reports whether the scope spans every agency.
func (s Scope) IsAll() bool {
	return s.all
}

// Agency returns the agency the scope is limited to. Empty for an
// all-agencies scope.
func (s Scope) Agency() string {
	return s.agency
}

// Allows reports whether records belonging to the given agency are visible
// under this scope.
func (s Scope) Allows(agency string) bool {
	return s.all || s.agency == agency
}
