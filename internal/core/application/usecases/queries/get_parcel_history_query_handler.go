package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler reads a parcel and its ledger from the
// database. The ledger is returned in recording order, which for a parcel
// that only ever moved forward reads as its journey top to bottom.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for parcel history
// queries.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// parcel carries the given tracking code.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) (GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelHistoryQueryResponse{}, err
	}

	var response GetParcelHistoryQueryResponse
	var parcelID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, tracking_code, status
		FROM parcels
		WHERE tracking_code = ?
	`, query.TrackingCode().String()).Row()

	if err := row.Scan(&parcelID, &response.TrackingCode, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetParcelHistoryQueryResponse{}, errs.NewObjectNotFoundError(
				"parcel", query.TrackingCode().String())
		}
		return GetParcelHistoryQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return GetParcelHistoryQueryResponse{}, err
	}
	response.ParcelID = id
	response.Status = parcel.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, from_status, mission_id, note, override, recorded_at
		FROM tracking_entries
		WHERE parcel_id = ?
		ORDER BY recorded_at, id
	`, parcelID).Rows()
	if err != nil {
		return GetParcelHistoryQueryResponse{}, err
	}
	defer rows.Close()

	response.Entries = make([]ParcelHistoryEntry, 0)

	for rows.Next() {
		var entry ParcelHistoryEntry
		var entryStatus int
		var fromStatus *int
		var missionID *uuid.UUID

		err = rows.Scan(
			&entryStatus,
			&fromStatus,
			&missionID,
			&entry.Note,
			&entry.Override,
			&entry.RecordedAt,
		)
		if err != nil {
			return GetParcelHistoryQueryResponse{}, err
		}

		entry.Status = parcel.Status(entryStatus).String()
		if fromStatus != nil {
			from := parcel.Status(*fromStatus).String()
			entry.FromStatus = &from
		}
		if missionID != nil {
			mID, mErr := kernel.UUIDFromBytes((*missionID)[:])
			if mErr != nil {
				return GetParcelHistoryQueryResponse{}, mErr
			}
			entry.MissionID = &mID
		}

		response.Entries = append(response.Entries, entry)
	}

	if err = rows.Err(); err != nil {
		return GetParcelHistoryQueryResponse{}, err
	}

	return response, nil
}
