package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
)

// DemandRepository defines the persistence contract for demand aggregates.
type DemandRepository interface {
	// Add persists a new demand aggregate to storage.
	Add(ctx context.Context, aggregate *demand.Demand) error

	// Update persists changes to an existing demand aggregate.
	Update(ctx context.Context, aggregate *demand.Demand) error

	// Get retrieves a demand aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*demand.Demand, error)

	// GetAllByIDsForUpdate retrieves the demands with the given identifiers
	// while holding row locks until the surrounding transaction ends.
	// Mission assignment uses this so two operators cannot consume the same
	// demand at once.
	GetAllByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*demand.Demand, error)

	// GetAllAssignable retrieves the demands of the given agency that are
	// accepted and not currently consumed by a mission.
	GetAllAssignable(ctx context.Context, agency string) ([]*demand.Demand, error)
}
