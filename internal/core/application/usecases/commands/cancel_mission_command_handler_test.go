package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelMissionCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelMissionCommand(kernel.NewUUID(), kernel.NewUUID(), "shipper withdrew")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("requires a reason", func(t *testing.T) {
		_, err := commands.NewCancelMissionCommand(kernel.NewUUID(), kernel.NewUUID(), "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelMissionCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelMissionCommandIsNotConstructed)
	})
}

// Cancelling an in-progress pickup mission reverts its parcels to their
// pre-mission status and returns the consumed demands to the assignable
// pool.
func TestCancelMissionCommandHandler_Handle_RevertsParcelsAndDemands(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()

	p1 := testParcelOwnedBy(t, shipperID)
	p2 := testParcelOwnedBy(t, shipperID)
	d := testAcceptedDemand(t, shipperID, []kernel.UUID{p1.ID(), p2.ID()})
	require.NoError(t, d.MarkInMission())

	m := testInProgressMission(t, mission.Pickup, []kernel.UUID{d.ID()}, []kernel.UUID{p1.ID(), p2.ID()})
	require.NoError(t, p1.AttachToMission(m.ID(), parcel.ToBePickedUp))
	require.NoError(t, p2.AttachToMission(m.ID(), parcel.ToBePickedUp))

	cmd, err := commands.NewCancelMissionCommand(m.ID(), kernel.NewUUID(), "vehicle broke down")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	demandRepo := new(MockDemandRepository)
	missionRepo := new(MockMissionRepository)
	trackingRepo := new(MockTrackingRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		parcelRepo.On("GetAllByMission", ctx, m.ID()).Return([]*parcel.Parcel{p1, p2}, nil).Once(),
		parcelRepo.On("Update", ctx, p1).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		parcelRepo.On("Update", ctx, p2).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		uow.On("DemandRepository").Return(demandRepo).Once(),
		demandRepo.On("GetAllByIDsForUpdate", ctx, mock.Anything).Return([]*demand.Demand{d}, nil).Once(),
		demandRepo.On("Update", ctx, d).Return(nil).Once(),
		missionRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("MissionStatusChanged", ctx, m).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelMissionCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, mission.Cancelled, m.Status())
	assert.Equal(t, "vehicle broke down", m.StatusReason())

	assert.Equal(t, parcel.Pending, p1.Status())
	assert.Equal(t, parcel.Pending, p2.Status())
	assert.Nil(t, p1.Mission())
	assert.Nil(t, p2.Mission())

	assert.False(t, d.InMission())
	assert.True(t, d.IsAssignable())

	mock.AssertExpectationsForObjects(t, uow, parcelRepo, demandRepo, missionRepo, trackingRepo, notifier, factory)
}

// Completed missions cannot be cancelled.
func TestCancelMissionCommandHandler_Handle_TerminalMission(t *testing.T) {
	ctx := t.Context()

	m := testInProgressMission(t, mission.Pickup, nil, []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, m.Complete(m.CompletionCode().String()))

	cmd, err := commands.NewCancelMissionCommand(m.ID(), kernel.NewUUID(), "too late")
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelMissionCommandHandler(factory, new(MockNotifier), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, mission.Completed, m.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
