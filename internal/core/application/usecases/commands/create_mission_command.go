package commands

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var (
	ErrCreateMissionCommandIsNotConstructed = errors.New(
		"CreateMissionCommand must be created via NewCreateMissionCommand constructor",
	)
	// ErrNothingToAssign is returned when a mission references neither
	// demands nor parcels.
	ErrNothingToAssign = errs.NewValueIsRequiredError("demandIds or parcelIds")
)

// CreateMissionCommand represents an operator's request to assign a driver
// to a set of demands and/or individual parcels.
type CreateMissionCommand struct { //nolint:recvcheck //using for validation
	kind        mission.Kind
	driverID    kernel.UUID
	demandIDs   []kernel.UUID
	parcelIDs   []kernel.UUID
	scheduledAt time.Time
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMissionCommand creates a command to assign a mission.
// At least one demand or parcel reference is required; the handler resolves
// demands to their constituent parcels and enforces the no-double-booking
// rule against the resulting union.
func NewCreateMissionCommand(
	kind mission.Kind,
	driverID kernel.UUID,
	demandIDs []kernel.UUID,
	parcelIDs []kernel.UUID,
	scheduledAt time.Time,
	actorID kernel.UUID,
) (CreateMissionCommand, error) {
	cmd := CreateMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setDriverID(driverID),
		cmd.setReferences(demandIDs, parcelIDs),
		cmd.setScheduledAt(scheduledAt),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateMissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMissionCommand) Validate() error {
	return c.guard.Validate(ErrCreateMissionCommandIsNotConstructed)
}

// Kind returns the mission kind.
func (c CreateMissionCommand) Kind() mission.Kind {
	return c.kind
}

// DriverID returns the identifier of the driver to assign.
func (c CreateMissionCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DemandIDs returns the identifiers of the demands to consume.
func (c CreateMissionCommand) DemandIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.demandIDs))
	copy(ids, c.demandIDs)
	return ids
}

// ParcelIDs returns the identifiers of individually referenced parcels.
func (c CreateMissionCommand) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.parcelIDs))
	copy(ids, c.parcelIDs)
	return ids
}

// ScheduledAt returns the planned execution time.
func (c CreateMissionCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// ActorID returns the identifier of the operator creating the mission.
func (c CreateMissionCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateMissionCommand) setKind(kind mission.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateMissionCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	c.driverID = id
	return nil
}

func (c *CreateMissionCommand) setReferences(demandIDs, parcelIDs []kernel.UUID) error {
	if len(demandIDs) == 0 && len(parcelIDs) == 0 {
		return ErrNothingToAssign
	}
	// Duplicates are dropped here so the same row is never resolved into
	// two aggregates downstream.
	seenDemands := make(map[string]bool, len(demandIDs))
	c.demandIDs = make([]kernel.UUID, 0, len(demandIDs))
	for _, id := range demandIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("demandIds", err)
		}
		if seenDemands[id.String()] {
			continue
		}
		seenDemands[id.String()] = true
		c.demandIDs = append(c.demandIDs, id)
	}

	seenParcels := make(map[string]bool, len(parcelIDs))
	c.parcelIDs = make([]kernel.UUID, 0, len(parcelIDs))
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("parcelIds", err)
		}
		if seenParcels[id.String()] {
			continue
		}
		seenParcels[id.String()] = true
		c.parcelIDs = append(c.parcelIDs, id)
	}
	return nil
}

func (c *CreateMissionCommand) setScheduledAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	c.scheduledAt = at
	return nil
}

func (c *CreateMissionCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}
