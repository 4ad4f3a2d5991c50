package http

import (
	"net/http"
	"time"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterParcelRequest is the body for POST /api/v1/parcels.
type RegisterParcelRequest struct {
	ShipperID      string `json:"shipper_id"`
	RecipientName  string `json:"recipient_name"`
	PrimaryPhone   string `json:"primary_phone"`
	SecondaryPhone string `json:"secondary_phone"`
	Address        string `json:"address"`
	Region         string `json:"region"`
	WeightGrams    int    `json:"weight_grams"`
	PriceCents     int64  `json:"price_cents"`
	FeesCents      int64  `json:"fees_cents"`
	Pieces         int    `json:"pieces"`
	Article        string `json:"article"`
	ActorID        string `json:"actor_id"`
}

// RegisterParcelResponse carries the tracking code issued at intake.
type RegisterParcelResponse struct {
	TrackingCode string `json:"tracking_code"`
}

// RegisterParcel handles POST /api/v1/parcels.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var req RegisterParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("shipper_id", err))
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("actor_id", err))
	}

	cmd, err := commands.NewRegisterParcelCommand(
		shipperID,
		req.RecipientName, req.PrimaryPhone, req.SecondaryPhone, req.Address, req.Region,
		req.WeightGrams, req.PriceCents, req.FeesCents, req.Pieces, req.Article,
		actorID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	code, err := s.registerParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterParcelResponse{TrackingCode: code.String()})
}

// ParcelHistoryEntryResponse is one ledger line in the history payload.
type ParcelHistoryEntryResponse struct {
	Status     string  `json:"status"`
	FromStatus *string `json:"from_status,omitempty"`
	MissionID  *string `json:"mission_id,omitempty"`
	Note       string  `json:"note,omitempty"`
	Override   bool    `json:"override"`
	RecordedAt string  `json:"recorded_at"`
}

// ParcelHistoryResponse is the body for GET /api/v1/parcels/:trackingCode/history.
type ParcelHistoryResponse struct {
	TrackingCode string                       `json:"tracking_code"`
	Status       string                       `json:"status"`
	History      []ParcelHistoryEntryResponse `json:"history"`
}

// GetParcelHistory handles GET /api/v1/parcels/:trackingCode/history.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	code, err := kernel.TrackingCodeFromString(ctx.Param("trackingCode"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelHistoryQuery(code)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.parcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ParcelHistoryResponse{
		TrackingCode: history.TrackingCode,
		Status:       history.Status,
		History:      make([]ParcelHistoryEntryResponse, 0, len(history.Entries)),
	}
	for _, entry := range history.Entries {
		var missionID *string
		if entry.MissionID != nil {
			id := entry.MissionID.String()
			missionID = &id
		}
		response.History = append(response.History, ParcelHistoryEntryResponse{
			Status:     entry.Status,
			FromStatus: entry.FromStatus,
			MissionID:  missionID,
			Note:       entry.Note,
			Override:   entry.Override,
			RecordedAt: entry.RecordedAt.UTC().Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// OverrideParcelStatusRequest is the body for POST /api/v1/parcels/:parcelId/override.
type OverrideParcelStatusRequest struct {
	Status  string `json:"status"`
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

// OverrideParcelStatus handles POST /api/v1/parcels/:parcelId/override.
func (s *Server) OverrideParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("parcelId", err))
	}

	var req OverrideParcelStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("actor_id", err))
	}

	cmd, err := commands.NewOverrideParcelStatusCommand(parcelID, status, actorID, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.overrideStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
