package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverMissionsQueryHandler reads a driver's open missions from the
// database.
type GetDriverMissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverMissionsQueryHandler creates a handler for driver mission
// queries.
func NewGetDriverMissionsQueryHandler(db *gorm.DB) GetDriverMissionsQueryHandler {
	return GetDriverMissionsQueryHandler{db: db}
}

// Handle executes the query. Missions are sorted by scheduled time so the
// next departure appears first.
func (h GetDriverMissionsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverMissionsQuery,
) ([]GetDriverMissionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			m.id,
			m.number,
			m.kind,
			m.status,
			m.status_reason,
			(SELECT COUNT(*) FROM mission_parcels mp WHERE mp.mission_id = m.id),
			m.scheduled_at
		FROM missions m
		JOIN drivers dr ON dr.id = m.driver_id
		WHERE m.driver_id = ?
		  AND m.status NOT IN (?, ?)
	`
	args := []any{query.DriverID().Bytes(), int(mission.Completed), int(mission.Cancelled)}

	if !query.Scope().IsAll() {
		sql += " AND dr.agency = ?"
		args = append(args, query.Scope().Agency())
	}
	sql += " ORDER BY m.scheduled_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	missions := make([]GetDriverMissionsQueryResponse, 0)

	for rows.Next() {
		var response GetDriverMissionsQueryResponse
		var id uuid.UUID
		var kind, status int

		err = rows.Scan(
			&id,
			&response.Number,
			&kind,
			&status,
			&response.StatusReason,
			&response.ParcelCount,
			&response.ScheduledAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		response.Kind = mission.Kind(kind).String()
		response.Status = mission.Status(status).String()

		missions = append(missions, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missions, nil
}
