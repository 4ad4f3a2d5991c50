package http

import (
	"net/http"
	"time"

	"parcelflow/internal/core/application/auth"
	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateMissionRequest is the body for POST /api/v1/missions.
type CreateMissionRequest struct {
	Kind        string    `json:"kind"`
	DriverID    string    `json:"driver_id"`
	DemandIDs   []string  `json:"demand_ids"`
	ParcelIDs   []string  `json:"parcel_ids"`
	ScheduledAt time.Time `json:"scheduled_at"`
	ActorID     string    `json:"actor_id"`
}

// CreateMissionResponse carries the created mission and its completion
// code. This response is the only place the code ever leaves the system;
// the dispatcher relays it to the warehouse or recipient out of band.
type CreateMissionResponse struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	CompletionCode string `json:"completion_code"`
}

// CreateMission handles POST /api/v1/missions.
func (s *Server) CreateMission(ctx echo.Context) error {
	var req CreateMissionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	kind, err := mission.KindFromString(req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("actor_id", err))
	}
	demandIDs, err := parseUUIDs(req.DemandIDs, "demand_ids")
	if err != nil {
		return respondError(ctx, err)
	}
	parcelIDs, err := parseUUIDs(req.ParcelIDs, "parcel_ids")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateMissionCommand(
		kind, driverID, demandIDs, parcelIDs, req.ScheduledAt, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	m, err := s.createMission.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateMissionResponse{
		ID:             m.ID().String(),
		Number:         m.Number(),
		CompletionCode: m.CompletionCode().String(),
	})
}

// DriverActionRequest is the body for the accept and start endpoints.
type DriverActionRequest struct {
	DriverID string `json:"driver_id"`
}

// AcceptMission handles POST /api/v1/missions/:missionId/accept.
func (s *Server) AcceptMission(ctx echo.Context) error {
	missionID, driverID, err := s.bindDriverAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptMissionCommand(missionID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectMissionRequest is the body for POST /api/v1/missions/:missionId/reject.
type RejectMissionRequest struct {
	DriverID string `json:"driver_id"`
	Reason   string `json:"reason"`
}

// RejectMission handles POST /api/v1/missions/:missionId/reject.
func (s *Server) RejectMission(ctx echo.Context) error {
	missionID, err := kernel.UUIDFromString(ctx.Param("missionId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("missionId", err))
	}

	var req RejectMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}

	cmd, err := commands.NewRejectMissionCommand(missionID, driverID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartMission handles POST /api/v1/missions/:missionId/start.
func (s *Server) StartMission(ctx echo.Context) error {
	missionID, driverID, err := s.bindDriverAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartMissionCommand(missionID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.startMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkParcelOutcomeRequest is the body for
// POST /api/v1/missions/:missionId/parcels/:parcelId/outcome.
type MarkParcelOutcomeRequest struct {
	Outcome string `json:"outcome"`
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

// MarkParcelOutcome handles the per-parcel outcome endpoint.
func (s *Server) MarkParcelOutcome(ctx echo.Context) error {
	missionID, err := kernel.UUIDFromString(ctx.Param("missionId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("missionId", err))
	}
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("parcelId", err))
	}

	var req MarkParcelOutcomeRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	outcome, err := parcel.StatusFromString(req.Outcome)
	if err != nil {
		return respondError(ctx, err)
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("actor_id", err))
	}

	cmd, err := commands.NewMarkParcelOutcomeCommand(missionID, parcelID, outcome, actorID, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markParcelOutcome.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteMissionRequest is the body for POST /api/v1/missions/:missionId/complete.
type CompleteMissionRequest struct {
	Code    string `json:"code"`
	ActorID string `json:"actor_id"`
}

// CompleteMission handles POST /api/v1/missions/:missionId/complete.
func (s *Server) CompleteMission(ctx echo.Context) error {
	missionID, err := kernel.UUIDFromString(ctx.Param("missionId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("missionId", err))
	}

	var req CompleteMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("actor_id", err))
	}

	cmd, err := commands.NewCompleteMissionCommand(missionID, req.Code, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelMissionRequest is the body for POST /api/v1/missions/:missionId/cancel.
type CancelMissionRequest struct {
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

// CancelMission handles POST /api/v1/missions/:missionId/cancel.
func (s *Server) CancelMission(ctx echo.Context) error {
	missionID, err := kernel.UUIDFromString(ctx.Param("missionId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("missionId", err))
	}

	var req CancelMissionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("actor_id", err))
	}

	cmd, err := commands.NewCancelMissionCommand(missionID, actorID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DriverMissionResponse is one open mission in a driver's work queue.
type DriverMissionResponse struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	StatusReason string `json:"status_reason,omitempty"`
	ParcelCount  int    `json:"parcel_count"`
	ScheduledAt  string `json:"scheduled_at"`
}

// GetDriverMissions handles GET /api/v1/drivers/:driverId/missions.
func (s *Server) GetDriverMissions(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	scope := auth.AllAgencies()
	if agency := ctx.QueryParam("agency"); agency != "" {
		if scope, err = auth.ForAgency(agency); err != nil {
			return respondError(ctx, err)
		}
	}

	query, err := queries.NewGetDriverMissionsQuery(driverID, scope)
	if err != nil {
		return respondError(ctx, err)
	}

	missions, err := s.driverMissions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DriverMissionResponse, 0, len(missions))
	for _, m := range missions {
		response = append(response, DriverMissionResponse{
			ID:           m.ID.String(),
			Number:       m.Number,
			Kind:         m.Kind,
			Status:       m.Status,
			StatusReason: m.StatusReason,
			ParcelCount:  m.ParcelCount,
			ScheduledAt:  m.ScheduledAt.UTC().Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) bindDriverAction(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	missionID, err := kernel.UUIDFromString(ctx.Param("missionId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("missionId", err)
	}

	var req DriverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("driver_id", err)
	}

	return missionID, driverID, nil
}
