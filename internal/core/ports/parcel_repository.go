package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its public tracking code.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error)

	// GetAllByIDs retrieves the parcels with the given identifiers.
	// Fails with an object-not-found error when any identifier is missing.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllByIDsForUpdate retrieves the parcels with the given identifiers
	// while holding row locks until the surrounding transaction ends.
	// Mission assignment uses this to rule out concurrent double-booking.
	GetAllByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllByMission retrieves the parcels currently held by a mission.
	GetAllByMission(ctx context.Context, missionID kernel.UUID) ([]*parcel.Parcel, error)
}
