package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/tracking"
)

// Notifier publishes lifecycle events to interested consumers (driver apps,
// shipper notifications, downstream analytics). Publishing is best-effort
// from the caller's point of view: handlers log a failure but never roll
// back the committed state change because of it.
type Notifier interface {
	// MissionCreated announces a freshly assigned mission to its driver.
	MissionCreated(ctx context.Context, m *mission.Mission) error

	// MissionStatusChanged announces a mission status transition.
	MissionStatusChanged(ctx context.Context, m *mission.Mission) error

	// MissionReminder nudges the driver of a mission still pending past its
	// scheduled time.
	MissionReminder(ctx context.Context, m *mission.Mission) error

	// ParcelStatusChanged announces a parcel status change with its ledger
	// entry.
	ParcelStatusChanged(ctx context.Context, entry *tracking.Entry) error
}
