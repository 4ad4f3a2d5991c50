package demand

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrDemandIsNotConstructed is returned when a Demand instance was not
	// created through NewDemand or RestoreDemand.
	ErrDemandIsNotConstructed = errors.New("Demand must be created via NewDemand or RestoreDemand constructor")

	// ErrEmptyParcelSet is returned when creating a demand without parcels.
	ErrEmptyParcelSet = errs.NewValueIsRequiredError("parcel set")

	// ErrAlreadyReviewed is returned when reviewing a demand a second time.
	ErrAlreadyReviewed = errs.NewConflictError("demand", "demand has already been reviewed")

	// ErrDemandNotAssignable is returned when consuming a demand that is not
	// Accepted or is already bound to a mission.
	ErrDemandNotAssignable = errs.NewConflictError("demand", "demand is not assignable")

	// ErrDemandNotInMission is returned when releasing a demand no mission consumed.
	ErrDemandNotInMission = errs.NewConflictError("demand", "demand is not bound to a mission")
)

// Demand represents a shipper's request to have a set of parcels picked up.
// It is the aggregate root for the approval workflow: created on shipper
// submission, reviewed exactly once by an operator, then consumed by at most
// one mission.
//
// The inMission flag is intentionally sticky: it flips to true when a mission
// consumes the demand and is cleared only by mission cancellation, never by
// completion. A completed demand stays consumed for good. This trades a
// recomputation over the mission tables for a cheap read on every
// assignability query.
type Demand struct {
	id        kernel.UUID
	shipperID kernel.UUID

	// agency is denormalized from the shipper's registered agency at
	// creation time. It is the scoping key for multi-tenant visibility.
	agency string

	parcelIDs []kernel.UUID

	reviewState ReviewState
	inMission   bool

	reviewerID  *kernel.UUID
	reviewedAt  *time.Time
	reviewNotes string

	createdAt time.Time

	isConstructed bool
}

// NewDemand creates a new Demand from a shipper submission.
// The demand starts in ReviewPending state, not bound to any mission.
// Fails with ErrEmptyParcelSet when no parcels are given.
func NewDemand(
	id kernel.UUID,
	shipperID kernel.UUID,
	agency string,
	parcelIDs []kernel.UUID,
	createdAt time.Time,
) (*Demand, error) {
	d := &Demand{
		reviewState:   ReviewPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipperID(shipperID),
		d.setAgency(agency),
		d.setParcelIDs(parcelIDs),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDemand reconstructs a Demand from persistence.
func RestoreDemand(
	id kernel.UUID,
	shipperID kernel.UUID,
	agency string,
	parcelIDs []kernel.UUID,
	reviewState ReviewState,
	inMission bool,
	reviewerID *kernel.UUID,
	reviewedAt *time.Time,
	reviewNotes string,
	createdAt time.Time,
) (*Demand, error) {
	d := &Demand{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipperID(shipperID),
		d.setAgency(agency),
		d.setParcelIDs(parcelIDs),
		reviewState.Validate(),
	); err != nil {
		return nil, err
	}

	if reviewerID != nil {
		if err := reviewerID.Validate(); err != nil {
			return nil, err
		}
	}

	d.reviewState = reviewState
	d.inMission = inMission
	d.reviewerID = reviewerID
	d.reviewedAt = reviewedAt
	d.reviewNotes = reviewNotes
	d.createdAt = createdAt
	return d, nil
}

// Validate ensures the Demand instance was properly constructed.
func (d *Demand) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDemandIsNotConstructed
	}
	return nil
}

// IsEqual compares two demands by their unique identifiers.
func (d *Demand) IsEqual(other *Demand) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the demand's unique identifier.
func (d *Demand) ID() kernel.UUID {
	return d.id
}

// ShipperID returns the requesting shipper's identifier.
func (d *Demand) ShipperID() kernel.UUID {
	return d.shipperID
}

// Agency returns the agency the demand is scoped to.
func (d *Demand) Agency() string {
	return d.agency
}

// ParcelIDs returns the identifiers of the parcels the demand covers.
func (d *Demand) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(d.parcelIDs))
	copy(ids, d.parcelIDs)
	return ids
}

// ReviewState returns the operator's decision state.
func (d *Demand) ReviewState() ReviewState {
	return d.reviewState
}

// InMission reports whether a mission has consumed the demand.
func (d *Demand) InMission() bool {
	return d.inMission
}

// Reviewer returns the reviewing operator's ID, or nil while pending.
func (d *Demand) Reviewer() *kernel.UUID {
	return d.reviewerID
}

// ReviewedAt returns the review timestamp, or nil while pending.
func (d *Demand) ReviewedAt() *time.Time {
	return d.reviewedAt
}

// ReviewNotes returns the operator's free-text review notes.
func (d *Demand) ReviewNotes() string {
	return d.reviewNotes
}

// CreatedAt returns the submission timestamp.
func (d *Demand) CreatedAt() time.Time {
	return d.createdAt
}

// IsAssignable reports whether a mission may consume the demand:
// Accepted by an operator and not already bound to a mission.
func (d *Demand) IsAssignable() bool {
	return d.reviewState == Accepted && !d.inMission
}

// Review records the operator's one-time decision on the demand.
// Legal only while ReviewPending; a second review fails with
// ErrAlreadyReviewed and leaves the demand untouched.
func (d *Demand) Review(decision ReviewState, reviewerID kernel.UUID, notes string, at time.Time) error {
	if decision != Accepted && decision != NotAccepted {
		return errs.NewValueIsInvalidErrorWithCause("decision",
			errors.New("review decision must be Accepted or Not Accepted"))
	}
	if err := reviewerID.Validate(); err != nil {
		return err
	}
	if d.reviewState.IsDecided() {
		return ErrAlreadyReviewed
	}

	d.reviewState = decision
	d.reviewerID = &reviewerID
	d.reviewedAt = &at
	d.reviewNotes = notes
	return nil
}

// MarkInMission flips the sticky inMission flag when a mission consumes the
// demand. Fails with ErrDemandNotAssignable unless the demand is Accepted
// and free.
func (d *Demand) MarkInMission() error {
	if !d.IsAssignable() {
		return ErrDemandNotAssignable
	}
	d.inMission = true
	return nil
}

// ReleaseFromMission clears the sticky inMission flag.
// This is the cancellation path and the only way a consumed demand becomes
// assignable again; mission completion never releases it.
func (d *Demand) ReleaseFromMission() error {
	if !d.inMission {
		return ErrDemandNotInMission
	}
	d.inMission = false
	return nil
}

func (d *Demand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Demand) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	d.shipperID = id
	return nil
}

func (d *Demand) setAgency(agency string) error {
	if agency == "" {
		return errs.NewValueIsRequiredError("agency")
	}
	d.agency = agency
	return nil
}

func (d *Demand) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyParcelSet
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	d.parcelIDs = make([]kernel.UUID, len(ids))
	copy(d.parcelIDs, ids)
	return nil
}
