// Package trackingrepo persists the append-only tracking ledger. Entries
// are never updated or deleted; corrections happen by appending an
// override entry.
package trackingrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EntryDTO represents one ledger line in the database. from_status is NULL
// exactly once per parcel, on the creation entry.
type EntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     int        `gorm:"type:int;not null"`
	FromStatus *int       `gorm:"type:int"`
	MissionID  *uuid.UUID `gorm:"type:uuid;index"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null"`
	Note       string     `gorm:"type:varchar(512)"`
	Override   bool       `gorm:"not null"`
	RecordedAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "tracking_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *tracking.Entry) EntryDTO {
	var fromStatus *int
	if fs := entry.FromStatus(); fs != nil {
		raw := int(*fs)
		fromStatus = &raw
	}

	var missionID *uuid.UUID
	if id := entry.Mission(); id != nil {
		raw := id.Bytes()
		missionID = &raw
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		ParcelID:   entry.Parcel().Bytes(),
		Status:     int(entry.Status()),
		FromStatus: fromStatus,
		MissionID:  missionID,
		ActorID:    entry.Actor().Bytes(),
		Note:       entry.Note(),
		Override:   entry.IsOverride(),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*tracking.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var fromStatus *parcel.Status
	if dto.FromStatus != nil {
		raw := parcel.Status(*dto.FromStatus)
		fromStatus = &raw
	}

	var missionID *kernel.UUID
	if dto.MissionID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.MissionID)[:])
		if mErr != nil {
			return nil, mErr
		}
		missionID = &mID
	}

	return tracking.RestoreEntry(
		id,
		parcelID,
		parcel.Status(dto.Status),
		fromStatus,
		missionID,
		actorID,
		dto.Note,
		dto.Override,
		dto.RecordedAt,
	)
}
