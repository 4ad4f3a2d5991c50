package mission

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrMissionIsNotConstructed is returned when a Mission instance was not
	// created through NewMission or RestoreMission.
	ErrMissionIsNotConstructed = errors.New("Mission must be created via NewMission or RestoreMission constructor")

	// ErrEmptyAssignment is returned when creating a mission whose resolved
	// parcel set is empty.
	ErrEmptyAssignment = errs.NewValueIsRequiredError("mission parcel set")

	// ErrDriverMismatch is returned when a driver operates a mission that is
	// assigned to someone else.
	ErrDriverMismatch = errs.NewAuthorizationError("mission is assigned to a different driver")

	// ErrInvalidCode is returned on a completion code mismatch.
	// The message is deliberately generic.
	ErrInvalidCode = errs.NewValueIsInvalidError("completion code")

	// ErrAlreadyCompleted is returned when operating on a terminal mission.
	ErrAlreadyCompleted = errs.NewConflictError("mission", "mission has already reached a terminal status")

	// ErrNotInProgress is returned when completing a mission that has not
	// reached a completable state.
	ErrNotInProgress = errs.NewConflictError("mission", "mission is not in progress")
)

// Mission represents one driver's assignment to move a set of parcels,
// either picking them up from shippers or delivering them to recipients.
// It is the aggregate root of the assignment engine.
//
// Invariants:
//   - The resolved parcel set is never empty
//   - Parcels held by the mission may not be held by any other mission whose
//     status is non-terminal (enforced at the assignment boundary)
//   - Terminal states are immutable
//   - Completion requires presenting the one-time completion code
type Mission struct {
	id     kernel.UUID
	number string
	kind   Kind

	driverID    kernel.UUID
	scheduledAt time.Time

	status         Status
	completionCode CompletionCode

	demandIDs []kernel.UUID
	parcelIDs []kernel.UUID

	// statusReason holds the driver's rejection reason or the operator's
	// cancellation reason, whichever applies.
	statusReason string

	createdAt time.Time

	isConstructed bool
}

// NewNumber derives a short human-readable mission number from the kind and
// creation time. Numbers are operator-facing labels; uniqueness is enforced
// by the store, and the completion code, not the number, is the secret.
func NewNumber(kind Kind, at time.Time) string {
	prefix := "MP"
	if kind == Delivery {
		prefix = "MD"
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36)))
}

// NewMission creates a new Mission in Pending status.
// The parcel set must already be resolved (demands expanded to their
// constituent parcels); an empty set fails with ErrEmptyAssignment.
func NewMission(
	id kernel.UUID,
	number string,
	kind Kind,
	driverID kernel.UUID,
	scheduledAt time.Time,
	completionCode CompletionCode,
	demandIDs []kernel.UUID,
	parcelIDs []kernel.UUID,
	createdAt time.Time,
) (*Mission, error) {
	m := &Mission{
		status:        Pending,
		scheduledAt:   scheduledAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setKind(kind),
		m.setDriverID(driverID),
		m.setCompletionCode(completionCode),
		m.setDemandIDs(demandIDs),
		m.setParcelIDs(parcelIDs),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMission reconstructs a Mission from persistence.
func RestoreMission(
	id kernel.UUID,
	number string,
	kind Kind,
	driverID kernel.UUID,
	scheduledAt time.Time,
	status Status,
	completionCode CompletionCode,
	demandIDs []kernel.UUID,
	parcelIDs []kernel.UUID,
	statusReason string,
	createdAt time.Time,
) (*Mission, error) {
	m := &Mission{
		scheduledAt:   scheduledAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setKind(kind),
		m.setDriverID(driverID),
		m.setCompletionCode(completionCode),
		m.setDemandIDs(demandIDs),
		m.setParcelIDs(parcelIDs),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	m.status = status
	m.statusReason = statusReason
	return m, nil
}

// Validate ensures the Mission instance was properly constructed.
func (m *Mission) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMissionIsNotConstructed
	}
	return nil
}

// IsEqual compares two missions by their unique identifiers.
func (m *Mission) IsEqual(other *Mission) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the mission's unique identifier.
func (m *Mission) ID() kernel.UUID {
	return m.id
}

// Number returns the operator-facing mission number.
func (m *Mission) Number() string {
	return m.number
}

// Kind returns whether this is a pickup or delivery mission.
func (m *Mission) Kind() Kind {
	return m.kind
}

// Driver returns the assigned driver's identifier.
func (m *Mission) Driver() kernel.UUID {
	return m.driverID
}

// ScheduledAt returns the planned execution time.
func (m *Mission) ScheduledAt() time.Time {
	return m.scheduledAt
}

// Status returns the mission's current status.
func (m *Mission) Status() Status {
	return m.status
}

// CompletionCode returns the one-time completion code.
// Exposed for persistence and for handing to the driver at creation.
func (m *Mission) CompletionCode() CompletionCode {
	return m.completionCode
}

// DemandIDs returns the identifiers of the demands the mission consumed.
func (m *Mission) DemandIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(m.demandIDs))
	copy(ids, m.demandIDs)
	return ids
}

// ParcelIDs returns the identifiers of the parcels the mission holds.
func (m *Mission) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(m.parcelIDs))
	copy(ids, m.parcelIDs)
	return ids
}

// StatusReason returns the driver's rejection reason or the operator's
// cancellation reason, whichever ended the mission's previous state.
func (m *Mission) StatusReason() string {
	return m.statusReason
}

// CreatedAt returns the creation timestamp.
func (m *Mission) CreatedAt() time.Time {
	return m.createdAt
}

// InitialParcelStatus returns the parcel status the mission applies to every
// parcel at assignment: To-be-picked-up for pickups, In-transit for deliveries.
func (m *Mission) InitialParcelStatus() parcel.Status {
	if m.kind == Delivery {
		return parcel.InTransit
	}
	return parcel.ToBePickedUp
}

// CompletionParcelStatus returns the happy-path terminal status the mission
// applies to every remaining parcel on verified completion: At-warehouse for
// pickups, Delivered for deliveries.
func (m *Mission) CompletionParcelStatus() parcel.Status {
	if m.kind == Delivery {
		return parcel.Delivered
	}
	return parcel.AtWarehouse
}

// Accept records the driver's agreement to run the mission.
// Legal only from Pending and only for the assigned driver.
func (m *Mission) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !m.driverID.IsEqual(driverID) {
		return ErrDriverMismatch
	}

	next, err := m.status.Accept()
	if err != nil {
		return err
	}

	m.status = next
	return nil
}

// Reject records the driver's refusal with a reason.
// Legal only from Pending and only for the assigned driver. The mission
// keeps holding its parcels until an operator cancels it.
func (m *Mission) Reject(driverID kernel.UUID, reason string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !m.driverID.IsEqual(driverID) {
		return ErrDriverMismatch
	}

	next, err := m.status.Reject()
	if err != nil {
		return err
	}

	m.status = next
	m.statusReason = reason
	return nil
}

// Start moves the mission to InProgress.
// Legal only from AcceptedByDriver and only for the assigned driver.
func (m *Mission) Start(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !m.driverID.IsEqual(driverID) {
		return ErrDriverMismatch
	}

	next, err := m.status.Start()
	if err != nil {
		return err
	}

	m.status = next
	return nil
}

// Complete verifies the presented one-time code and moves the mission to
// Completed. Fails with ErrAlreadyCompleted on terminal missions,
// ErrNotInProgress before the mission is completable, and ErrInvalidCode on
// a code mismatch, in that order, so a wrong code never reveals mission
// state and a stale completion is reported as a conflict.
func (m *Mission) Complete(presentedCode string) error {
	if m.status.IsTerminal() {
		return ErrAlreadyCompleted
	}
	if m.status != InProgress {
		return ErrNotInProgress
	}
	if !m.completionCode.Matches(presentedCode) {
		return ErrInvalidCode
	}

	m.status = Completed
	return nil
}

// Cancel aborts the mission with the operator's reason.
// Legal from any non-terminal state.
func (m *Mission) Cancel(reason string) error {
	next, err := m.status.Cancel()
	if err != nil {
		return err
	}

	m.status = next
	m.statusReason = reason
	return nil
}

func (m *Mission) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Mission) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("mission number")
	}
	m.number = number
	return nil
}

func (m *Mission) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *Mission) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	m.driverID = id
	return nil
}

func (m *Mission) setCompletionCode(code CompletionCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	m.completionCode = code
	return nil
}

func (m *Mission) setDemandIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	m.demandIDs = make([]kernel.UUID, len(ids))
	copy(m.demandIDs, ids)
	return nil
}

func (m *Mission) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyAssignment
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	m.parcelIDs = make([]kernel.UUID, len(ids))
	copy(m.parcelIDs, ids)
	return nil
}
