// Package http exposes the application's commands and queries over a REST
// API built on Echo. Handlers translate between JSON and the application
// layer; all business rules live behind the command and query handlers.
package http

import (
	"net/http"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to application use cases.
type Server struct {
	registerParcel commands.RegisterParcelCommandHandler
	overrideStatus commands.OverrideParcelStatusCommandHandler

	createDemand commands.CreateDemandCommandHandler
	reviewDemand commands.ReviewDemandCommandHandler

	createMission     commands.CreateMissionCommandHandler
	acceptMission     commands.AcceptMissionCommandHandler
	rejectMission     commands.RejectMissionCommandHandler
	startMission      commands.StartMissionCommandHandler
	markParcelOutcome commands.MarkParcelOutcomeCommandHandler
	completeMission   commands.CompleteMissionCommandHandler
	cancelMission     commands.CancelMissionCommandHandler

	assignableDemands queries.GetAssignableDemandsQueryHandler
	parcelHistory     queries.GetParcelHistoryQueryHandler
	driverMissions    queries.GetDriverMissionsQueryHandler
}

// NewServer creates an HTTP server facade over the given handlers.
func NewServer(
	registerParcel commands.RegisterParcelCommandHandler,
	overrideStatus commands.OverrideParcelStatusCommandHandler,
	createDemand commands.CreateDemandCommandHandler,
	reviewDemand commands.ReviewDemandCommandHandler,
	createMission commands.CreateMissionCommandHandler,
	acceptMission commands.AcceptMissionCommandHandler,
	rejectMission commands.RejectMissionCommandHandler,
	startMission commands.StartMissionCommandHandler,
	markParcelOutcome commands.MarkParcelOutcomeCommandHandler,
	completeMission commands.CompleteMissionCommandHandler,
	cancelMission commands.CancelMissionCommandHandler,
	assignableDemands queries.GetAssignableDemandsQueryHandler,
	parcelHistory queries.GetParcelHistoryQueryHandler,
	driverMissions queries.GetDriverMissionsQueryHandler,
) *Server {
	return &Server{
		registerParcel:    registerParcel,
		overrideStatus:    overrideStatus,
		createDemand:      createDemand,
		reviewDemand:      reviewDemand,
		createMission:     createMission,
		acceptMission:     acceptMission,
		rejectMission:     rejectMission,
		startMission:      startMission,
		markParcelOutcome: markParcelOutcome,
		completeMission:   completeMission,
		cancelMission:     cancelMission,
		assignableDemands: assignableDemands,
		parcelHistory:     parcelHistory,
		driverMissions:    driverMissions,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.RegisterParcel)
	api.GET("/parcels/:trackingCode/history", s.GetParcelHistory)
	api.POST("/parcels/:parcelId/override", s.OverrideParcelStatus)

	api.POST("/demands", s.CreateDemand)
	api.GET("/demands/assignable", s.GetAssignableDemands)
	api.POST("/demands/:demandId/review", s.ReviewDemand)

	api.POST("/missions", s.CreateMission)
	api.POST("/missions/:missionId/accept", s.AcceptMission)
	api.POST("/missions/:missionId/reject", s.RejectMission)
	api.POST("/missions/:missionId/start", s.StartMission)
	api.POST("/missions/:missionId/parcels/:parcelId/outcome", s.MarkParcelOutcome)
	api.POST("/missions/:missionId/complete", s.CompleteMission)
	api.POST("/missions/:missionId/cancel", s.CancelMission)

	api.GET("/drivers/:driverId/missions", s.GetDriverMissions)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
