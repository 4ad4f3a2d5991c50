package demandrepo

import (
	"context"
	"errors"
	"fmt"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDemandRepository implements DemandRepository using GORM.
type GormDemandRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDemandRepository creates a new GORM demand repository.
func NewGormDemandRepository(db *gorm.DB, tracker aggregateTracker) *GormDemandRepository {
	return &GormDemandRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new demand and its parcel links to the database.
func (r *GormDemandRepository) Add(ctx context.Context, aggregate *demand.Demand) error {
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

// Update saves an existing demand to the database. The parcel set never
// changes after creation, so only the demand row itself is written.
func (r *GormDemandRepository) Update(ctx context.Context, aggregate *demand.Demand) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DemandDTO{}).
		Where("id = ?", dto.ID).
		Select("shipper_id", "agency", "review_state", "in_mission",
			"reviewer_id", "reviewed_at", "review_notes", "created_at").
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

// Get retrieves a demand by ID.
func (r *GormDemandRepository) Get(ctx context.Context, id kernel.UUID) (*demand.Demand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DemandDTO
	if err := r.db.WithContext(ctx).
		Preload("Parcels").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("demand", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDsForUpdate retrieves the demands with the given identifiers
// while holding row locks until the surrounding transaction ends. The lock
// covers the demand rows only; parcel links are immutable.
func (r *GormDemandRepository) GetAllByIDsForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*demand.Demand, error) {
	if len(ids) == 0 {
		return []*demand.Demand{}, nil
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
				fmt.Errorf("duplicate demand id %s", id.String()))
		}
		requested[id.Bytes()] = true
		raw = append(raw, id.Bytes())
	}

	var dtos []DemandDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Parcels").
		Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	if len(dtos) != len(ids) {
		found := make(map[uuid.UUID]bool, len(dtos))
		for _, dto := range dtos {
			found[dto.ID] = true
		}
		for _, id := range ids {
			if !found[id.Bytes()] {
				return nil, errs.NewObjectNotFoundError("demand", id.String())
			}
		}
	}

	demands := make([]*demand.Demand, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}

	return demands, nil
}

// GetAllAssignable retrieves the demands of an agency that are accepted and
// not currently consumed by a mission, oldest first.
func (r *GormDemandRepository) GetAllAssignable(
	ctx context.Context,
	agency string,
) ([]*demand.Demand, error) {
	if agency == "" {
		return nil, errs.NewValueIsRequiredError("agency")
	}

	var dtos []DemandDTO
	if err := r.db.WithContext(ctx).
		Preload("Parcels").
		Where("agency = ? AND review_state = ? AND in_mission = FALSE", agency, int(demand.Accepted)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	demands := make([]*demand.Demand, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}

	return demands, nil
}
