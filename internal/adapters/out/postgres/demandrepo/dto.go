// Package demandrepo provides data transfer objects and mapping functions
// for demand persistence. The parcel set a demand covers lives in a link
// table so parcels can be queried back from either side.
package demandrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DemandDTO represents the database structure for persisting demand
// aggregates. The in_mission flag is the sticky consumption marker the
// assignability checks read.
type DemandDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ShipperID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	Agency      string            `gorm:"type:varchar(128);not null;index"`
	ReviewState int               `gorm:"type:int;not null;index"`
	InMission   bool              `gorm:"not null"`
	ReviewerID  *uuid.UUID        `gorm:"type:uuid"`
	ReviewedAt  *time.Time        `gorm:""`
	ReviewNotes string            `gorm:"type:varchar(512)"`
	CreatedAt   time.Time         `gorm:"not null"`
	Parcels     []DemandParcelDTO `gorm:"foreignKey:DemandID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for demand entities.
func (DemandDTO) TableName() string {
	return "demands"
}

// DemandParcelDTO links a demand to one parcel it covers.
type DemandParcelDTO struct {
	DemandID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for demand parcel links.
func (DemandParcelDTO) TableName() string {
	return "demand_parcels"
}

// fromDomain converts a demand domain aggregate to its database
// representation.
func fromDomain(d *demand.Demand) DemandDTO {
	demandID := d.ID().Bytes()

	parcels := make([]DemandParcelDTO, 0, len(d.ParcelIDs()))
	for _, parcelID := range d.ParcelIDs() {
		parcels = append(parcels, DemandParcelDTO{
			DemandID: demandID,
			ParcelID: parcelID.Bytes(),
		})
	}

	var reviewerID *uuid.UUID
	if id := d.Reviewer(); id != nil {
		raw := id.Bytes()
		reviewerID = &raw
	}

	return DemandDTO{
		ID:          demandID,
		ShipperID:   d.ShipperID().Bytes(),
		Agency:      d.Agency(),
		ReviewState: int(d.ReviewState()),
		InMission:   d.InMission(),
		ReviewerID:  reviewerID,
		ReviewedAt:  d.ReviewedAt(),
		ReviewNotes: d.ReviewNotes(),
		CreatedAt:   d.CreatedAt(),
		Parcels:     parcels,
	}
}

// toDomain converts a database DTO to a demand domain aggregate using
// RestoreDemand.
func toDomain(dto DemandDTO) (*demand.Demand, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(dto.Parcels))
	for _, link := range dto.Parcels {
		parcelID, pErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if pErr != nil {
			return nil, pErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	var reviewerID *kernel.UUID
	if dto.ReviewerID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.ReviewerID)[:])
		if rErr != nil {
			return nil, rErr
		}
		reviewerID = &rID
	}

	return demand.RestoreDemand(
		id,
		shipperID,
		dto.Agency,
		parcelIDs,
		demand.ReviewState(dto.ReviewState),
		dto.InMission,
		reviewerID,
		dto.ReviewedAt,
		dto.ReviewNotes,
		dto.CreatedAt,
	)
}
