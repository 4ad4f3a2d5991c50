package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignableDemandsQueryHandler reads assignable demands straight from
// the database. Assignability is evaluated in SQL from the same columns the
// write side maintains, so the list a dispatcher sees matches what
// CreateMission will accept.
type GetAssignableDemandsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignableDemandsQueryHandler creates a handler for assignable
// demand queries.
func NewGetAssignableDemandsQueryHandler(db *gorm.DB) GetAssignableDemandsQueryHandler {
	return GetAssignableDemandsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so long-waiting
// demands surface at the top of the dispatch screen.
func (h GetAssignableDemandsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableDemandsQuery,
) ([]GetAssignableDemandsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.id,
			d.shipper_id,
			d.agency,
			(SELECT COUNT(*) FROM demand_parcels dp WHERE dp.demand_id = d.id),
			d.review_notes,
			d.created_at
		FROM demands d
		WHERE d.review_state = ?
		  AND d.in_mission = FALSE
	`
	args := []any{int(demand.Accepted)}

	if !query.Scope().IsAll() {
		sql += " AND d.agency = ?"
		args = append(args, query.Scope().Agency())
	}
	sql += " ORDER BY d.created_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	demands := make([]GetAssignableDemandsQueryResponse, 0)

	for rows.Next() {
		var response GetAssignableDemandsQueryResponse
		var id, shipperID uuid.UUID

		err = rows.Scan(
			&id,
			&shipperID,
			&response.Agency,
			&response.ParcelCount,
			&response.ReviewNotes,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.ShipperID, err = kernel.UUIDFromBytes(shipperID[:]); err != nil {
			return nil, err
		}

		demands = append(demands, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return demands, nil
}
