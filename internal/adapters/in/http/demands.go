package http

import (
	"net/http"
	"time"

	"parcelflow/internal/core/application/auth"
	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDemandRequest is the body for POST /api/v1/demands.
type CreateDemandRequest struct {
	ShipperID string   `json:"shipper_id"`
	Agency    string   `json:"agency"`
	ParcelIDs []string `json:"parcel_ids"`
}

// CreateDemandResponse carries the identifier of the created demand.
type CreateDemandResponse struct {
	ID string `json:"id"`
}

// CreateDemand handles POST /api/v1/demands.
func (s *Server) CreateDemand(ctx echo.Context) error {
	var req CreateDemandRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("shipper_id", err))
	}

	parcelIDs, err := parseUUIDs(req.ParcelIDs, "parcel_ids")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDemandCommand(shipperID, req.Agency, parcelIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.createDemand.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDemandResponse{ID: id.String()})
}

// ReviewDemandRequest is the body for POST /api/v1/demands/:demandId/review.
type ReviewDemandRequest struct {
	Decision   string `json:"decision"`
	ReviewerID string `json:"reviewer_id"`
	Notes      string `json:"notes"`
}

// ReviewDemand handles POST /api/v1/demands/:demandId/review.
func (s *Server) ReviewDemand(ctx echo.Context) error {
	demandID, err := kernel.UUIDFromString(ctx.Param("demandId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("demandId", err))
	}

	var req ReviewDemandRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	decision, err := demand.ReviewStateFromString(req.Decision)
	if err != nil {
		return respondError(ctx, err)
	}
	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("reviewer_id", err))
	}

	cmd, err := commands.NewReviewDemandCommand(demandID, decision, reviewerID, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reviewDemand.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignableDemandResponse is one demand in the dispatch list.
type AssignableDemandResponse struct {
	ID          string `json:"id"`
	ShipperID   string `json:"shipper_id"`
	Agency      string `json:"agency"`
	ParcelCount int    `json:"parcel_count"`
	ReviewNotes string `json:"review_notes,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// GetAssignableDemands handles GET /api/v1/demands/assignable.
// The agency query parameter scopes the list; omitting it requests the
// back-office view across all agencies.
func (s *Server) GetAssignableDemands(ctx echo.Context) error {
	scope := auth.AllAgencies()
	if agency := ctx.QueryParam("agency"); agency != "" {
		var err error
		if scope, err = auth.ForAgency(agency); err != nil {
			return respondError(ctx, err)
		}
	}

	query, err := queries.NewGetAssignableDemandsQuery(scope)
	if err != nil {
		return respondError(ctx, err)
	}

	demands, err := s.assignableDemands.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AssignableDemandResponse, 0, len(demands))
	for _, d := range demands {
		response = append(response, AssignableDemandResponse{
			ID:          d.ID.String(),
			ShipperID:   d.ShipperID.String(),
			Agency:      d.Agency,
			ParcelCount: d.ParcelCount,
			ReviewNotes: d.ReviewNotes,
			CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseUUIDs converts a list of string identifiers, attributing failures to
// the named field.
func parseUUIDs(raw []string, field string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
