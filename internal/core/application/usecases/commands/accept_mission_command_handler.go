package commands

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/ports"
)

// AcceptMissionCommandHandler handles a driver accepting a mission.
// The mission row is read under a lock so a concurrent cancellation and an
// acceptance of the same mission serialize instead of clobbering each other.
type AcceptMissionCommandHandler struct {
	uowFactory MissionStateUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewAcceptMissionCommandHandler creates a handler for mission acceptance.
func NewAcceptMissionCommandHandler(
	uowFactory MissionStateUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) AcceptMissionCommandHandler {
	return AcceptMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the mission acceptance command.
func (h AcceptMissionCommandHandler) Handle(ctx context.Context, cmd AcceptMissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missionRepo := uow.MissionRepository()

	m, err := missionRepo.GetForUpdate(ctx, cmd.MissionID())
	if err != nil {
		return err
	}

	if err = m.Accept(cmd.DriverID()); err != nil {
		return err
	}

	if err = missionRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.MissionStatusChanged(ctx, m); err != nil {
		h.log.Warn("mission status notification failed",
			"missionId", m.ID().String(), "error", err)
	}

	return nil
}
