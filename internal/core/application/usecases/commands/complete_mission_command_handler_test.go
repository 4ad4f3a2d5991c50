package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteMissionCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCompleteMissionCommand(kernel.NewUUID(), "X7K2QM", kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "X7K2QM", cmd.PresentedCode())
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := commands.NewCompleteMissionCommand(kernel.NewUUID(), "", kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CompleteMissionCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteMissionCommandIsNotConstructed)
	})
}

// Completing a delivery mission with the right code closes the mission and
// delivers every remaining parcel, one ledger entry each.
func TestCompleteMissionCommandHandler_Handle_CorrectCode(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()

	p1 := testParcelOwnedBy(t, shipperID)
	p2 := testParcelOwnedBy(t, shipperID)
	require.NoError(t, p1.OverrideStatus(parcel.AtWarehouse))
	require.NoError(t, p2.OverrideStatus(parcel.AtWarehouse))

	m := testInProgressMission(t, mission.Delivery, nil, []kernel.UUID{p1.ID(), p2.ID()})
	require.NoError(t, p1.AttachToMission(m.ID(), parcel.InTransit))
	require.NoError(t, p2.AttachToMission(m.ID(), parcel.InTransit))

	cmd, err := commands.NewCompleteMissionCommand(m.ID(), m.CompletionCode().String(), kernel.NewUUID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
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
		missionRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("MissionStatusChanged", ctx, m).Return(nil).Once(),
		notifier.On("ParcelStatusChanged", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteMissionCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, mission.Completed, m.Status())
	assert.Equal(t, parcel.Delivered, p1.Status())
	assert.Equal(t, parcel.Delivered, p2.Status())
	assert.Nil(t, p1.Mission())
	assert.Nil(t, p2.Mission())

	mock.AssertExpectationsForObjects(t, uow, parcelRepo, missionRepo, trackingRepo, notifier, factory)
}

// Completing a pickup mission brings every remaining parcel to the
// warehouse even though the driver never reported the intermediate
// picked-up hop.
func TestCompleteMissionCommandHandler_Handle_PickupKind(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()

	p := testParcelOwnedBy(t, shipperID)
	m := testInProgressMission(t, mission.Pickup, nil, []kernel.UUID{p.ID()})
	require.NoError(t, p.AttachToMission(m.ID(), parcel.ToBePickedUp))

	cmd, err := commands.NewCompleteMissionCommand(m.ID(), m.CompletionCode().String(), kernel.NewUUID())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
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
		parcelRepo.On("GetAllByMission", ctx, m.ID()).Return([]*parcel.Parcel{p}, nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		missionRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("MissionStatusChanged", ctx, m).Return(nil).Once(),
		notifier.On("ParcelStatusChanged", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteMissionCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, mission.Completed, m.Status())
	assert.Equal(t, parcel.AtWarehouse, p.Status())
	assert.Nil(t, p.Mission())

	entry := trackingRepo.Calls[0].Arguments.Get(1).(*tracking.Entry)
	assert.Equal(t, parcel.AtWarehouse, entry.Status())
	require.NotNil(t, entry.FromStatus())
	assert.Equal(t, parcel.ToBePickedUp, *entry.FromStatus())

	mock.AssertExpectationsForObjects(t, uow, parcelRepo, missionRepo, trackingRepo, notifier, factory)
}

// Repeated wrong codes leave the mission in progress and touch nothing.
func TestCompleteMissionCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()

	p := testParcelOwnedBy(t, shipperID)
	m := testInProgressMission(t, mission.Pickup, nil, []kernel.UUID{p.ID()})
	require.NoError(t, p.AttachToMission(m.ID(), parcel.ToBePickedUp))

	cmd, err := commands.NewCompleteMissionCommand(m.ID(), "WRONG2", kernel.NewUUID())
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("MissionRepository").Return(missionRepo).Times(3)
	missionRepo.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	handler := commands.NewCompleteMissionCommandHandler(factory, new(MockNotifier), discardLogger())

	for range 3 {
		err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, mission.ErrInvalidCode)
	}

	assert.Equal(t, mission.InProgress, m.Status())
	assert.Equal(t, parcel.ToBePickedUp, p.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	mock.AssertExpectationsForObjects(t, uow, missionRepo, factory)
}

// A terminal mission reports already-completed even when the code matches.
func TestCompleteMissionCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()

	m := testInProgressMission(t, mission.Pickup, nil, []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, m.Cancel("re-planned"))

	cmd, err := commands.NewCompleteMissionCommand(m.ID(), m.CompletionCode().String(), kernel.NewUUID())
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

	handler := commands.NewCompleteMissionCommandHandler(factory, new(MockNotifier), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, mission.ErrAlreadyCompleted)
	uow.AssertNotCalled(t, "Commit", ctx)
}
