package trackingrepo

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
// There is deliberately no Update or Delete on this repository.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking ledger repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends a new entry to the ledger.
func (r *GormTrackingRepository) Add(ctx context.Context, entry *tracking.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByParcel retrieves a parcel's full history, oldest first. Ties on
// the timestamp are broken by ID so the order is stable.
func (r *GormTrackingRepository) GetAllByParcel(
	ctx context.Context,
	parcelID kernel.UUID,
) ([]*tracking.Entry, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("recorded_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*tracking.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
