package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the tracking
// ledger. The ledger is append-only: there is no update or delete.
type TrackingRepository interface {
	// Add appends a new entry to the ledger.
	Add(ctx context.Context, entry *tracking.Entry) error

	// GetAllByParcel retrieves a parcel's full history, oldest first.
	GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Entry, error)
}
