package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/tracking"
	"parcelflow/internal/core/ports"
)

// CreateMissionCommandHandler orchestrates mission assignment.
//
// The whole operation runs in one transaction with the demand and parcel
// rows locked, so two operators racing to assign overlapping parcel sets
// serialize: the first commit wins, the second fails on the already-assigned
// check. The assignment is all-or-nothing; one conflicting parcel fails the
// entire mission.
type CreateMissionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewCreateMissionCommandHandler creates a handler for mission assignment.
func NewCreateMissionCommandHandler(
	uowFactory MissionUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
) CreateMissionCommandHandler {
	return CreateMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the mission assignment command and returns the created
// mission, completion code included, for handing to the driver.
func (h CreateMissionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMissionCommand,
) (*mission.Mission, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignedDriver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	if err = assignedDriver.CanBeAssigned(); err != nil {
		return nil, err
	}

	demandRepo := uow.DemandRepository()
	demands, err := demandRepo.GetAllByIDsForUpdate(ctx, cmd.DemandIDs())
	if err != nil {
		return nil, err
	}

	parcelIDs := cmd.ParcelIDs()
	seen := make(map[string]bool, len(parcelIDs))
	for _, id := range parcelIDs {
		seen[id.String()] = true
	}
	for _, d := range demands {
		for _, id := range d.ParcelIDs() {
			if !seen[id.String()] {
				seen[id.String()] = true
				parcelIDs = append(parcelIDs, id)
			}
		}
	}
	if len(parcelIDs) == 0 {
		return nil, mission.ErrEmptyAssignment
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetAllByIDsForUpdate(ctx, parcelIDs)
	if err != nil {
		return nil, err
	}

	completionCode, err := mission.NewCompletionCode()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newMission, err := mission.NewMission(
		kernel.NewUUID(),
		mission.NewNumber(cmd.Kind(), now),
		cmd.Kind(),
		cmd.DriverID(),
		cmd.ScheduledAt(),
		completionCode,
		cmd.DemandIDs(),
		parcelIDs,
		now,
	)
	if err != nil {
		return nil, err
	}

	trackingRepo := uow.TrackingRepository()
	initial := newMission.InitialParcelStatus()
	missionID := newMission.ID()

	for _, p := range parcels {
		from := p.Status()

		if err = p.AttachToMission(missionID, initial); err != nil {
			return nil, err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return nil, err
		}

		entry, entryErr := tracking.NewEntry(
			kernel.NewUUID(), p.ID(), p.Status(),
			&from, &missionID, cmd.ActorID(), "", false, now)
		if entryErr != nil {
			return nil, entryErr
		}
		if err = trackingRepo.Add(ctx, entry); err != nil {
			return nil, err
		}
	}

	for _, d := range demands {
		if err = d.MarkInMission(); err != nil {
			return nil, err
		}
		if err = demandRepo.Update(ctx, d); err != nil {
			return nil, err
		}
	}

	if err = uow.MissionRepository().Add(ctx, newMission); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.MissionCreated(ctx, newMission); err != nil {
		h.log.Warn("mission created notification failed",
			"missionId", newMission.ID().String(), "error", err)
	}

	return newMission, nil
}
