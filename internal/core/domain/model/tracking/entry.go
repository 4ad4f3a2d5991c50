package tracking

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Entry is one immutable record in a parcel's tracking ledger. A new entry
// is appended for every status change; existing entries are never updated
// or deleted, so the ledger is the authoritative history of the parcel.
//
// An operator override is recorded like any other change, flagged so audits
// can tell forced corrections apart from normal lifecycle progress.
type Entry struct {
	id       kernel.UUID
	parcelID kernel.UUID

	status     parcel.Status
	fromStatus *parcel.Status

	missionID *kernel.UUID
	actorID   kernel.UUID
	note      string
	override  bool

	recordedAt time.Time

	isConstructed bool
}

// NewEntry records a status change for a parcel.
// fromStatus is nil for the entry written at parcel creation, and missionID
// is nil for changes made outside any mission.
func NewEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status parcel.Status,
	fromStatus *parcel.Status,
	missionID *kernel.UUID,
	actorID kernel.UUID,
	note string,
	override bool,
	recordedAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		status.Validate(),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if missionID != nil {
		if err := missionID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Entry{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		fromStatus:    fromStatus,
		missionID:     missionID,
		actorID:       actorID,
		note:          note,
		override:      override,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status parcel.Status,
	fromStatus *parcel.Status,
	missionID *kernel.UUID,
	actorID kernel.UUID,
	note string,
	override bool,
	recordedAt time.Time,
) (*Entry, error) {
	return NewEntry(id, parcelID, status, fromStatus, missionID, actorID, note, override, recordedAt)
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Parcel returns the identifier of the parcel the entry belongs to.
func (e *Entry) Parcel() kernel.UUID {
	return e.parcelID
}

// Status returns the status the parcel moved to.
func (e *Entry) Status() parcel.Status {
	return e.status
}

// FromStatus returns the status the parcel moved from, or nil for the entry
// written at parcel creation.
func (e *Entry) FromStatus() *parcel.Status {
	return e.fromStatus
}

// Mission returns the mission that caused the change, if any.
func (e *Entry) Mission() *kernel.UUID {
	return e.missionID
}

// Actor returns the identifier of the user or driver who made the change.
func (e *Entry) Actor() kernel.UUID {
	return e.actorID
}

// Note returns the free-form note attached to the change.
func (e *Entry) Note() string {
	return e.note
}

// IsOverride reports whether the change was a forced operator correction.
func (e *Entry) IsOverride() bool {
	return e.override
}

// RecordedAt returns when the change was recorded.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}
