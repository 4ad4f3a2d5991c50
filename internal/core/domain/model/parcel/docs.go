// Package parcel implements the parcel aggregate and its status registry.
//
// A parcel is the unit of physical movement in the system. Its lifecycle is
// a status state machine (see Status) driven by mission execution; every
// transition is recorded in the tracking ledger. The aggregate enforces the
// single-active-mission invariant and retains the pre-mission status so a
// cancelled mission restores the parcel exactly as it found it.
package parcel
