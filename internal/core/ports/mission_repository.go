package ports

import (
	"context"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
)

// MissionRepository defines the persistence contract for mission aggregates.
type MissionRepository interface {
	// Add persists a new mission aggregate to storage.
	Add(ctx context.Context, aggregate *mission.Mission) error

	// Update persists changes to an existing mission aggregate.
	Update(ctx context.Context, aggregate *mission.Mission) error

	// Get retrieves a mission aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*mission.Mission, error)

	// GetForUpdate retrieves a mission while holding a row lock until the
	// surrounding transaction ends. Completion and cancellation use this so
	// concurrent attempts on the same mission serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*mission.Mission, error)

	// GetAllByDriver retrieves all missions assigned to a driver,
	// newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*mission.Mission, error)

	// GetAllPendingBefore retrieves missions still pending whose scheduled
	// time is before the given instant. The reminder job uses this.
	GetAllPendingBefore(ctx context.Context, t time.Time) ([]*mission.Mission, error)
}
