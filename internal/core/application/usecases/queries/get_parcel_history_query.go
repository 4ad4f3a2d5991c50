package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery retrieves a parcel's full tracking ledger by its
// public tracking code. This backs the customer-facing tracking page, so it
// is keyed on the code printed on the label rather than the internal ID.
type GetParcelHistoryQuery struct {
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query for a parcel's tracking history.
func NewGetParcelHistoryQuery(trackingCode kernel.TrackingCode) (GetParcelHistoryQuery, error) {
	if err := trackingCode.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}
	return GetParcelHistoryQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// TrackingCode returns the public tracking code to look up.
func (q GetParcelHistoryQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// GetParcelHistoryQueryResponse represents a parcel's current state plus its
// complete ledger, oldest entry first.
type GetParcelHistoryQueryResponse struct {
	ParcelID     kernel.UUID
	TrackingCode string
	Status       string
	Entries      []ParcelHistoryEntry
}

// ParcelHistoryEntry is one ledger line in the read model. Statuses are
// rendered as display strings since this feeds customer-visible output.
type ParcelHistoryEntry struct {
	Status     string
	FromStatus *string
	MissionID  *kernel.UUID
	Note       string
	Override   bool
	RecordedAt time.Time
}
