package parcelrepo

import (
	"context"
	"errors"
	"fmt"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database. Uses Select("*") so
// cleared nullable columns (mission_id, prior_status) are written back as
// NULL rather than skipped as zero values.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingCode retrieves a parcel by its public tracking code.
func (r *GormParcelRepository) GetByTrackingCode(
	ctx context.Context,
	code kernel.TrackingCode,
) (*parcel.Parcel, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the parcels with the given identifiers.
// Fails with an object-not-found error when any identifier is missing.
func (r *GormParcelRepository) GetAllByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*parcel.Parcel, error) {
	return r.getAllByIDs(ctx, ids, false)
}

// GetAllByIDsForUpdate retrieves the parcels with the given identifiers
// while holding row locks until the surrounding transaction ends.
func (r *GormParcelRepository) GetAllByIDsForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*parcel.Parcel, error) {
	return r.getAllByIDs(ctx, ids, true)
}

func (r *GormParcelRepository) getAllByIDs(
	ctx context.Context,
	ids []kernel.UUID,
	forUpdate bool,
) ([]*parcel.Parcel, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	raw := make([]uuid.UUID, 0, len(ids))
	requested := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		// A duplicate would hydrate the same row into two aggregates and
		// defeat the missing-row count check below.
		if requested[id.Bytes()] {
			return nil, errs.NewValueIsInvalidErrorWithCause("ids",
				fmt.Errorf("duplicate parcel id %s", id.String()))
		}
		requested[id.Bytes()] = true
		raw = append(raw, id.Bytes())
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dtos []ParcelDTO
	if err := db.Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	if len(dtos) != len(ids) {
		found := make(map[uuid.UUID]bool, len(dtos))
		for _, dto := range dtos {
			found[dto.ID] = true
		}
		for _, id := range ids {
			if !found[id.Bytes()] {
				return nil, errs.NewObjectNotFoundError("parcel", id.String())
			}
		}
	}

	// Return in the order the caller asked for.
	byID := make(map[uuid.UUID]ParcelDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	parcels := make([]*parcel.Parcel, 0, len(ids))
	for _, id := range ids {
		p, err := toDomain(byID[id.Bytes()])
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// GetAllByMission retrieves the parcels currently held by a mission.
func (r *GormParcelRepository) GetAllByMission(
	ctx context.Context,
	missionID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := missionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Find(&dtos, "mission_id = ?", missionID.Bytes()).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
