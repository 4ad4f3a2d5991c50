package parcel

import (
	"errors"
	"fmt"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

	// ErrParcelAlreadyAssigned is returned when binding a parcel that is
	// already held by an active mission.
	ErrParcelAlreadyAssigned = errs.NewConflictError("parcel", "parcel is already assigned to an active mission")

	// ErrParcelNotInMission is returned when detaching or reverting a parcel
	// that no mission holds.
	ErrParcelNotInMission = errs.NewConflictError("parcel", "parcel is not assigned to a mission")
)

// Parcel represents a physical parcel moving through the operator's network.
// It is the aggregate root for the parcel lifecycle: created by a shipper
// submission, mutated only through status transitions driven by mission
// execution or operator override, and never deleted once it has tracking
// history (terminal soft states are used instead).
//
// Invariants:
//   - The tracking code is immutable once issued
//   - The status is always a member of the status registry
//   - At most one active mission may hold the parcel at a time
//   - While a mission holds the parcel, the pre-mission status is retained
//     so a cancelled mission can revert it
type Parcel struct {
	id           kernel.UUID
	trackingCode kernel.TrackingCode
	shipperID    kernel.UUID
	recipient    Recipient

	// weightGrams, priceCents, and feesCents are declared by the shipper.
	weightGrams int
	priceCents  int64
	feesCents   int64

	pieces  int
	article string

	status      Status
	warehouseID *kernel.UUID

	// missionID points at the active mission holding the parcel, if any.
	missionID *kernel.UUID
	// priorStatus is the status the parcel had before the active mission
	// took it. Used to revert on cancellation.
	priorStatus *Status

	isConstructed bool
}

// NewParcel creates a new Parcel from a shipper submission.
// The parcel starts in Pending status with no mission or warehouse bound.
func NewParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	shipperID kernel.UUID,
	recipient Recipient,
	weightGrams int,
	priceCents int64,
	feesCents int64,
	pieces int,
	article string,
) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setShipperID(shipperID),
		p.setRecipient(recipient),
		p.setWeightGrams(weightGrams),
		p.setPriceCents(priceCents),
		p.setFeesCents(feesCents),
		p.setPieces(pieces),
		p.setArticle(article),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence.
// Unlike NewParcel it accepts any registry status plus the mission binding
// and prior-status fields, validating consistency between them.
func RestoreParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	shipperID kernel.UUID,
	recipient Recipient,
	weightGrams int,
	priceCents int64,
	feesCents int64,
	pieces int,
	article string,
	status Status,
	warehouseID *kernel.UUID,
	missionID *kernel.UUID,
	priorStatus *Status,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setShipperID(shipperID),
		p.setRecipient(recipient),
		p.setWeightGrams(weightGrams),
		p.setPriceCents(priceCents),
		p.setFeesCents(feesCents),
		p.setPieces(pieces),
		p.setArticle(article),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if missionID == nil && priorStatus != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("priorStatus",
			errors.New("prior status requires an active mission"))
	}
	if priorStatus != nil {
		if err := priorStatus.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.warehouseID = warehouseID
	p.missionID = missionID
	p.priorStatus = priorStatus
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the parcel's immutable tracking code.
func (p *Parcel) TrackingCode() kernel.TrackingCode {
	return p.trackingCode
}

// ShipperID returns the owning shipper's identifier.
func (p *Parcel) ShipperID() kernel.UUID {
	return p.shipperID
}

// Recipient returns the recipient contact block.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// WeightGrams returns the declared weight in grams.
func (p *Parcel) WeightGrams() int {
	return p.weightGrams
}

// PriceCents returns the declared price in cents.
func (p *Parcel) PriceCents() int64 {
	return p.priceCents
}

// FeesCents returns the declared fees in cents.
func (p *Parcel) FeesCents() int64 {
	return p.feesCents
}

// Pieces returns the declared piece count.
func (p *Parcel) Pieces() int {
	return p.pieces
}

// Article returns the free-text article description.
func (p *Parcel) Article() string {
	return p.article
}

// Status returns the parcel's current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Warehouse returns the bound warehouse's ID, or nil when none is bound.
func (p *Parcel) Warehouse() *kernel.UUID {
	return p.warehouseID
}

// Mission returns the active mission holding the parcel, or nil when free.
func (p *Parcel) Mission() *kernel.UUID {
	return p.missionID
}

// PriorStatus returns the status the parcel had before the active mission
// took it, or nil when no mission holds the parcel.
func (p *Parcel) PriorStatus() *Status {
	return p.priorStatus
}

// IsOwnedBy reports whether the parcel belongs to the given shipper.
func (p *Parcel) IsOwnedBy(shipperID kernel.UUID) bool {
	return p.shipperID.IsEqual(shipperID)
}

// AttachToMission binds the parcel to a mission and moves it to the mission
// kind's initial status. The pre-mission status is retained for revert on
// cancellation.
//
// Returns ErrParcelAlreadyAssigned if an active mission already holds the
// parcel, or a validation error if the status transition is illegal.
func (p *Parcel) AttachToMission(missionID kernel.UUID, initial Status) error {
	if err := missionID.Validate(); err != nil {
		return err
	}
	if p.missionID != nil {
		return ErrParcelAlreadyAssigned
	}

	prior := p.status
	if _, err := p.ChangeStatus(initial); err != nil {
		return err
	}

	p.missionID = &missionID
	p.priorStatus = &prior
	return nil
}

// DetachFromMission releases the mission binding without touching the status.
// Called when the mission reaches a final outcome for this parcel
// (completion or a terminal per-parcel outcome).
func (p *Parcel) DetachFromMission() error {
	if p.missionID == nil {
		return ErrParcelNotInMission
	}
	p.missionID = nil
	p.priorStatus = nil
	return nil
}

// RevertFromMission restores the pre-mission status and releases the mission
// binding. This is the cancellation path: the parcel becomes assignable again
// exactly as it was before the mission took it.
func (p *Parcel) RevertFromMission() (Status, error) {
	if p.missionID == nil || p.priorStatus == nil {
		return Unknown, ErrParcelNotInMission
	}

	restored := *p.priorStatus
	p.status = restored
	p.missionID = nil
	p.priorStatus = nil
	return restored, nil
}

// ChangeStatus moves the parcel along the forward transition graph.
// Re-applying the current status is an idempotent no-op and returns
// changed=false. Illegal transitions return a validation error and leave
// the parcel untouched.
func (p *Parcel) ChangeStatus(next Status) (bool, error) {
	if err := next.Validate(); err != nil {
		return false, err
	}
	if next == p.status {
		return false, nil
	}
	if !p.status.CanTransition(next) {
		return false, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not permitted", p.status, next))
	}

	p.status = next
	return true, nil
}

// AdvanceTo moves the parcel forward to any status reachable along the
// transition graph, skipping intermediate hops. Used by mission completion,
// where parcels still sitting at the mission's initial status jump straight
// to the kind's final status. Re-applying the current status is an
// idempotent no-op and returns changed=false.
func (p *Parcel) AdvanceTo(target Status) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	if target == p.status {
		return false, nil
	}
	if !p.status.CanAdvance(target) {
		return false, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("no forward path from %s to %s", p.status, target))
	}

	p.status = target
	return true, nil
}

// OverrideStatus sets the parcel to any registry status, bypassing the
// forward-only rule. Reserved for operator overrides; the tracking ledger
// records these transitions distinctly.
func (p *Parcel) OverrideStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	p.status = next
	return nil
}

// AssignWarehouse binds the parcel to a warehouse.
// Called when a parcel reaches At-warehouse.
func (p *Parcel) AssignWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	p.warehouseID = &warehouseID
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	p.shipperID = id
	return nil
}

func (p *Parcel) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setWeightGrams(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weight))
	}
	p.weightGrams = weight
	return nil
}

func (p *Parcel) setPriceCents(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	p.priceCents = price
	return nil
}

func (p *Parcel) setFeesCents(fees int64) error {
	if fees < 0 {
		return errs.NewValueIsInvalidErrorWithCause("fees",
			fmt.Errorf("%d is negative", fees))
	}
	p.feesCents = fees
	return nil
}

func (p *Parcel) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}
	p.pieces = pieces
	return nil
}

func (p *Parcel) setArticle(article string) error {
	if article == "" {
		return errs.NewValueIsRequiredError("article")
	}
	p.article = article
	return nil
}
