// Package driver contains the Driver aggregate. Drivers run missions; they
// are scoped to an agency and can be deactivated to keep them out of the
// assignable pool without losing their history.
package driver
