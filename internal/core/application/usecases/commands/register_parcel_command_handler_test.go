package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterParcelCommand(t *testing.T) commands.RegisterParcelCommand {
	t.Helper()
	cmd, err := commands.NewRegisterParcelCommand(
		kernel.NewUUID(),
		"Jane Doe", "+212600000001", "", "12 Rue des Fleurs", "Casablanca",
		1500, 24900, 3500, 2, "ceramic tableware",
		kernel.NewUUID())
	require.NoError(t, err)
	return cmd
}

func TestNewRegisterParcelCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd := validRegisterParcelCommand(t)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 2, cmd.Pieces())
	})

	t.Run("requires a shipper", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewRegisterParcelCommand(
			zero, "Jane", "+2126", "", "addr", "region", 100, 100, 10, 1, "x", kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RegisterParcelCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterParcelCommandIsNotConstructed)
	})
}

func TestRegisterParcelCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterParcelCommand(t)

	parcelRepo := new(MockParcelRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterParcelCommandHandler(factory)
	code, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, code.Validate())
	assert.Regexp(t, `^PF-[A-HJ-NP-Z2-9]{10}$`, code.String())

	mock.AssertExpectationsForObjects(t, uow, parcelRepo, trackingRepo, factory)
}

func TestRegisterParcelCommandHandler_Handle_InvalidDeclaration(t *testing.T) {
	ctx := t.Context()

	// Declaration checks live in the aggregate; the handler fails before
	// opening a transaction.
	cmd, err := commands.NewRegisterParcelCommand(
		kernel.NewUUID(), "Jane", "+2126", "", "addr", "region",
		0, 100, 10, 1, "x", kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockParcelUoWFactory)
	handler := commands.NewRegisterParcelCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
