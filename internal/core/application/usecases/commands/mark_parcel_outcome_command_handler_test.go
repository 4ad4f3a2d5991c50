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

func TestNewMarkParcelOutcomeCommand(t *testing.T) {
	t.Run("rejects an invalid outcome", func(t *testing.T) {
		_, err := commands.NewMarkParcelOutcomeCommand(
			kernel.NewUUID(), kernel.NewUUID(), parcel.Status(0), kernel.NewUUID(), "")
		require.Error(t, err)
	})

	t.Run("a note is optional", func(t *testing.T) {
		_, err := commands.NewMarkParcelOutcomeCommand(
			kernel.NewUUID(), kernel.NewUUID(), parcel.Delivered, kernel.NewUUID(), "")
		require.NoError(t, err)
	})
}

func TestMarkParcelOutcomeCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()

	p := testParcelOwnedBy(t, shipperID)
	require.NoError(t, p.OverrideStatus(parcel.AtWarehouse))

	m := testInProgressMission(t, mission.Delivery, nil, []kernel.UUID{p.ID()})
	require.NoError(t, p.AttachToMission(m.ID(), parcel.InTransit))

	cmd, err := commands.NewMarkParcelOutcomeCommand(
		m.ID(), p.ID(), parcel.Delivered, m.Driver(), "left with concierge")
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	parcelRepo := new(MockParcelRepository)
	trackingRepo := new(MockTrackingRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetAllByIDsForUpdate", ctx, []kernel.UUID{p.ID()}).
			Return([]*parcel.Parcel{p}, nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("ParcelStatusChanged", ctx, mock.AnythingOfType("*tracking.Entry")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkParcelOutcomeCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, parcel.Delivered, p.Status())
	assert.Nil(t, p.Mission())

	entry, _ := trackingRepo.Calls[0].Arguments.Get(1).(*tracking.Entry)
	require.NotNil(t, entry)
	assert.Equal(t, parcel.Delivered, entry.Status())
	require.NotNil(t, entry.FromStatus())
	assert.Equal(t, parcel.InTransit, *entry.FromStatus())
	require.NotNil(t, entry.Mission())
	assert.True(t, entry.Mission().IsEqual(m.ID()))
	assert.False(t, entry.IsOverride())

	mock.AssertExpectationsForObjects(t, uow, missionRepo, parcelRepo, trackingRepo, notifier, factory)
}

// A non-terminal outcome is a progress report: the parcel moves forward but
// stays on the mission, so completion still advances it and no other
// mission can claim it.
func TestMarkParcelOutcomeCommandHandler_Handle_NonTerminalOutcomeKeepsBinding(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()

	p := testParcelOwnedBy(t, shipperID)
	m := testInProgressMission(t, mission.Pickup, nil, []kernel.UUID{p.ID()})
	require.NoError(t, p.AttachToMission(m.ID(), parcel.ToBePickedUp))

	cmd, err := commands.NewMarkParcelOutcomeCommand(
		m.ID(), p.ID(), parcel.PickedUp, m.Driver(), "")
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	parcelRepo := new(MockParcelRepository)
	trackingRepo := new(MockTrackingRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetAllByIDsForUpdate", ctx, []kernel.UUID{p.ID()}).
			Return([]*parcel.Parcel{p}, nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("ParcelStatusChanged", ctx, mock.AnythingOfType("*tracking.Entry")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkParcelOutcomeCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, parcel.PickedUp, p.Status())
	require.NotNil(t, p.Mission())
	assert.True(t, p.Mission().IsEqual(m.ID()))
	require.NotNil(t, p.PriorStatus())

	mock.AssertExpectationsForObjects(t, uow, missionRepo, parcelRepo, trackingRepo, notifier, factory)
}

func TestMarkParcelOutcomeCommandHandler_Handle_MissionNotInProgress(t *testing.T) {
	ctx := t.Context()

	p := testParcelOwnedBy(t, kernel.NewUUID())
	m := testPendingMission(t, mission.Delivery, nil, []kernel.UUID{p.ID()})

	cmd, err := commands.NewMarkParcelOutcomeCommand(
		m.ID(), p.ID(), parcel.Delivered, m.Driver(), "")
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

	handler := commands.NewMarkParcelOutcomeCommandHandler(factory, new(MockNotifier), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, mission.ErrNotInProgress)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkParcelOutcomeCommandHandler_Handle_ParcelNotHeld(t *testing.T) {
	ctx := t.Context()

	p := testParcelOwnedBy(t, kernel.NewUUID())
	m := testInProgressMission(t, mission.Delivery, nil, []kernel.UUID{p.ID()})

	// The parcel rides on another mission entirely.
	require.NoError(t, p.OverrideStatus(parcel.AtWarehouse))
	require.NoError(t, p.AttachToMission(kernel.NewUUID(), parcel.InTransit))

	cmd, err := commands.NewMarkParcelOutcomeCommand(
		m.ID(), p.ID(), parcel.Delivered, m.Driver(), "")
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetAllByIDsForUpdate", ctx, []kernel.UUID{p.ID()}).
			Return([]*parcel.Parcel{p}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkParcelOutcomeCommandHandler(factory, new(MockNotifier), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrParcelNotHeldByMission)
	assert.Equal(t, parcel.InTransit, p.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
