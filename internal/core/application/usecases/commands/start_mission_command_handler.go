package commands

import (
	"context"
)

// StartMissionCommandHandler handles a driver starting an accepted mission.
type StartMissionCommandHandler struct {
	uowFactory MissionStateUoWFactory
}

// NewStartMissionCommandHandler creates a handler for starting missions.
func NewStartMissionCommandHandler(uowFactory MissionStateUoWFactory) StartMissionCommandHandler {
	return StartMissionCommandHandler{uowFactory: uowFactory}
}

// Handle processes the mission start command.
func (h StartMissionCommandHandler) Handle(ctx context.Context, cmd StartMissionCommand) error {
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

	if err = m.Start(cmd.DriverID()); err != nil {
		return err
	}

	if err = missionRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
