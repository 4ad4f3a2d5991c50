// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"parcelflow/internal/core/domain/model/driver"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates.
type DriverDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(32);not null"`
	Agency string    `gorm:"type:varchar(128);not null;index"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     d.ID().Bytes(),
		Name:   d.Name(),
		Phone:  d.Phone(),
		Agency: d.Agency(),
		Active: d.IsActive(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.Agency, dto.Active)
}
