// Package missionrepo provides data transfer objects and mapping functions
// for mission persistence. The demand and parcel sets a mission was built
// from live in link tables; they record what the mission was assigned, not
// what it currently holds (parcels carry their own mission_id for that).
package missionrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"

	"github.com/google/uuid"
)

// MissionDTO represents the database structure for persisting mission
// aggregates. The completion code is stored as issued; it is compared, not
// derived, so a leaked database row never yields codes for other missions.
type MissionDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Number         string             `gorm:"type:varchar(32);not null;uniqueIndex"`
	Kind           int                `gorm:"type:int;not null"`
	DriverID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	ScheduledAt    time.Time          `gorm:"not null"`
	Status         int                `gorm:"type:int;not null;index"`
	StatusReason   string             `gorm:"type:varchar(512)"`
	CompletionCode string             `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time          `gorm:"not null"`
	Demands        []MissionDemandDTO `gorm:"foreignKey:MissionID;constraint:OnDelete:CASCADE"`
	Parcels        []MissionParcelDTO `gorm:"foreignKey:MissionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for mission entities.
func (MissionDTO) TableName() string {
	return "missions"
}

// MissionDemandDTO links a mission to one demand it consumed.
type MissionDemandDTO struct {
	MissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	DemandID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for mission demand links.
func (MissionDemandDTO) TableName() string {
	return "mission_demands"
}

// MissionParcelDTO links a mission to one parcel it was assigned.
type MissionParcelDTO struct {
	MissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for mission parcel links.
func (MissionParcelDTO) TableName() string {
	return "mission_parcels"
}

// fromDomain converts a mission domain aggregate to its database
// representation.
func fromDomain(m *mission.Mission) MissionDTO {
	missionID := m.ID().Bytes()

	demands := make([]MissionDemandDTO, 0, len(m.DemandIDs()))
	for _, demandID := range m.DemandIDs() {
		demands = append(demands, MissionDemandDTO{
			MissionID: missionID,
			DemandID:  demandID.Bytes(),
		})
	}

	parcels := make([]MissionParcelDTO, 0, len(m.ParcelIDs()))
	for _, parcelID := range m.ParcelIDs() {
		parcels = append(parcels, MissionParcelDTO{
			MissionID: missionID,
			ParcelID:  parcelID.Bytes(),
		})
	}

	return MissionDTO{
		ID:             missionID,
		Number:         m.Number(),
		Kind:           int(m.Kind()),
		DriverID:       m.Driver().Bytes(),
		ScheduledAt:    m.ScheduledAt(),
		Status:         int(m.Status()),
		StatusReason:   m.StatusReason(),
		CompletionCode: m.CompletionCode().String(),
		CreatedAt:      m.CreatedAt(),
		Demands:        demands,
		Parcels:        parcels,
	}
}

// toDomain converts a database DTO to a mission domain aggregate using
// RestoreMission.
func toDomain(dto MissionDTO) (*mission.Mission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	completionCode, err := mission.CompletionCodeFromString(dto.CompletionCode)
	if err != nil {
		return nil, err
	}

	demandIDs := make([]kernel.UUID, 0, len(dto.Demands))
	for _, link := range dto.Demands {
		demandID, dErr := kernel.UUIDFromBytes(link.DemandID[:])
		if dErr != nil {
			return nil, dErr
		}
		demandIDs = append(demandIDs, demandID)
	}

	parcelIDs := make([]kernel.UUID, 0, len(dto.Parcels))
	for _, link := range dto.Parcels {
		parcelID, pErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if pErr != nil {
			return nil, pErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return mission.RestoreMission(
		id,
		dto.Number,
		mission.Kind(dto.Kind),
		driverID,
		dto.ScheduledAt,
		mission.Status(dto.Status),
		completionCode,
		demandIDs,
		parcelIDs,
		dto.StatusReason,
		dto.CreatedAt,
	)
}
