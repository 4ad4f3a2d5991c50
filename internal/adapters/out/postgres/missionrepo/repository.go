package missionrepo

import (
	"context"
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMissionRepository implements MissionRepository using GORM.
type GormMissionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMissionRepository creates a new GORM mission repository.
func NewGormMissionRepository(db *gorm.DB, tracker aggregateTracker) *GormMissionRepository {
	return &GormMissionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mission and its demand and parcel links to the database.
func (r *GormMissionRepository) Add(ctx context.Context, aggregate *mission.Mission) error {
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

// Update saves an existing mission to the database. The demand and parcel
// link sets are fixed at assignment, so only the mission row is written.
func (r *GormMissionRepository) Update(ctx context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MissionDTO{}).
		Where("id = ?", dto.ID).
		Select("number", "kind", "driver_id", "scheduled_at", "status",
			"status_reason", "completion_code", "created_at").
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

// Get retrieves a mission by ID.
func (r *GormMissionRepository) Get(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a mission while holding a row lock until the
// surrounding transaction ends.
func (r *GormMissionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	return r.get(ctx, id, true)
}

func (r *GormMissionRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*mission.Mission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto MissionDTO
	if err := db.
		Preload("Demands").
		Preload("Parcels").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByDriver retrieves all missions assigned to a driver, newest first.
func (r *GormMissionRepository) GetAllByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*mission.Mission, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MissionDTO
	if err := r.db.WithContext(ctx).
		Preload("Demands").
		Preload("Parcels").
		Where("driver_id = ?", driverID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllPendingBefore retrieves missions still pending whose scheduled time
// is before the given instant.
func (r *GormMissionRepository) GetAllPendingBefore(
	ctx context.Context,
	t time.Time,
) ([]*mission.Mission, error) {
	var dtos []MissionDTO
	if err := r.db.WithContext(ctx).
		Preload("Demands").
		Preload("Parcels").
		Where("status = ? AND scheduled_at < ?", int(mission.Pending), t).
		Order("scheduled_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormMissionRepository) toDomainAll(dtos []MissionDTO) ([]*mission.Mission, error) {
	missions := make([]*mission.Mission, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, nil
}
