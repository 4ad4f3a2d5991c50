// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate, converting between domain entities and their database
// representation.
package parcelrepo

import (
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The current status is a derived column kept in sync with the
// tracking ledger inside the same transaction; prior_status is only set
// while a mission holds the parcel and feeds the cancellation revert.
type ParcelDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TrackingCode string       `gorm:"type:varchar(16);not null;uniqueIndex"`
	ShipperID    uuid.UUID    `gorm:"type:uuid;not null;index"`
	Recipient    RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	WeightGrams  int          `gorm:"type:int;not null"`
	PriceCents   int64        `gorm:"type:bigint;not null"`
	FeesCents    int64        `gorm:"type:bigint;not null"`
	Pieces       int          `gorm:"type:int;not null"`
	Article      string       `gorm:"type:varchar(255)"`
	Status       int          `gorm:"type:int;not null;index"`
	PriorStatus  *int         `gorm:"type:int"`
	WarehouseID  *uuid.UUID   `gorm:"type:uuid;index"`
	MissionID    *uuid.UUID   `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// RecipientDTO represents the embedded recipient contact details within the
// parcel table.
type RecipientDTO struct {
	Name           string `gorm:"type:varchar(255);not null"`
	PrimaryPhone   string `gorm:"type:varchar(32);not null"`
	SecondaryPhone string `gorm:"type:varchar(32)"`
	Address        string `gorm:"type:varchar(512);not null"`
	Region         string `gorm:"type:varchar(128);not null"`
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var priorStatus *int
	if ps := p.PriorStatus(); ps != nil {
		raw := int(*ps)
		priorStatus = &raw
	}

	var warehouseID *uuid.UUID
	if id := p.Warehouse(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	var missionID *uuid.UUID
	if id := p.Mission(); id != nil {
		raw := id.Bytes()
		missionID = &raw
	}

	return ParcelDTO{
		ID:           p.ID().Bytes(),
		TrackingCode: p.TrackingCode().String(),
		ShipperID:    p.ShipperID().Bytes(),
		Recipient: RecipientDTO{
			Name:           p.Recipient().Name(),
			PrimaryPhone:   p.Recipient().PrimaryPhone(),
			SecondaryPhone: p.Recipient().SecondaryPhone(),
			Address:        p.Recipient().Address(),
			Region:         p.Recipient().Region(),
		},
		WeightGrams: p.WeightGrams(),
		PriceCents:  p.PriceCents(),
		FeesCents:   p.FeesCents(),
		Pieces:      p.Pieces(),
		Article:     p.Article(),
		Status:      int(p.Status()),
		PriorStatus: priorStatus,
		WarehouseID: warehouseID,
		MissionID:   missionID,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := parcel.NewRecipient(
		dto.Recipient.Name,
		dto.Recipient.PrimaryPhone,
		dto.Recipient.SecondaryPhone,
		dto.Recipient.Address,
		dto.Recipient.Region,
	)
	if err != nil {
		return nil, err
	}

	var priorStatus *parcel.Status
	if dto.PriorStatus != nil {
		raw := parcel.Status(*dto.PriorStatus)
		priorStatus = &raw
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if wErr != nil {
			return nil, wErr
		}
		warehouseID = &wID
	}

	var missionID *kernel.UUID
	if dto.MissionID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.MissionID)[:])
		if mErr != nil {
			return nil, mErr
		}
		missionID = &mID
	}

	return parcel.RestoreParcel(
		id,
		trackingCode,
		shipperID,
		recipient,
		dto.WeightGrams,
		dto.PriceCents,
		dto.FeesCents,
		dto.Pieces,
		dto.Article,
		parcel.Status(dto.Status),
		warehouseID,
		missionID,
		priorStatus,
	)
}
