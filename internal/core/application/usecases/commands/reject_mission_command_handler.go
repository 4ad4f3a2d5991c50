package commands

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/ports"
)

// RejectMissionCommandHandler handles a driver rejecting a mission.
type RejectMissionCommandHandler struct {
	uowFactory MissionStateUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewRejectMissionCommandHandler creates a handler for mission rejection.
func NewRejectMissionCommandHandler(
	uowFactory MissionStateUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) RejectMissionCommandHandler {
	return RejectMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the mission rejection command.
func (h RejectMissionCommandHandler) Handle(ctx context.Context, cmd RejectMissionCommand) error {
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

	if err = m.Reject(cmd.DriverID(), cmd.Reason()); err != nil {
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
