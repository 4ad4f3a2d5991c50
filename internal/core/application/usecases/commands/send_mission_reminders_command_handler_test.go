package commands_test

import (
	"testing"
	"time"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSendMissionRemindersCommand(t *testing.T) {
	_, err := commands.NewSendMissionRemindersCommand(time.Time{})
	require.Error(t, err)

	cmd, err := commands.NewSendMissionRemindersCommand(time.Now())
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestSendMissionRemindersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	m1 := testPendingMission(t, mission.Pickup, []kernel.UUID{kernel.NewUUID()}, nil)
	m2 := testPendingMission(t, mission.Delivery, nil, []kernel.UUID{kernel.NewUUID()})

	cmd, err := commands.NewSendMissionRemindersCommand(now)
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("GetAllPendingBefore", ctx, now).Return([]*mission.Mission{m1, m2}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionStateUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("MissionReminder", ctx, m1).Return(nil).Once()
	notifier.On("MissionReminder", ctx, m2).Return(nil).Once()

	handler := commands.NewSendMissionRemindersCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	mock.AssertExpectationsForObjects(t, uow, missionRepo, factory, notifier)
}

func TestSendMissionRemindersCommandHandler_Handle_NotificationFailureDoesNotStopFanOut(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	m1 := testPendingMission(t, mission.Pickup, []kernel.UUID{kernel.NewUUID()}, nil)
	m2 := testPendingMission(t, mission.Delivery, nil, []kernel.UUID{kernel.NewUUID()})

	cmd, err := commands.NewSendMissionRemindersCommand(now)
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	missionRepo.On("GetAllPendingBefore", ctx, now).Return([]*mission.Mission{m1, m2}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MissionRepository").Return(missionRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMissionStateUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("MissionReminder", ctx, m1).Return(assert.AnError).Once()
	notifier.On("MissionReminder", ctx, m2).Return(nil).Once()

	handler := commands.NewSendMissionRemindersCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	notifier.AssertNumberOfCalls(t, "MissionReminder", 2)
}
