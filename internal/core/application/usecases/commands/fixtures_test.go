package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"parcelflow/internal/core/domain/model/demand"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testParcelOwnedBy(t *testing.T, shipperID kernel.UUID) *parcel.Parcel {
	t.Helper()
	code, err := kernel.NewTrackingCode()
	require.NoError(t, err)
	recipient, err := parcel.NewRecipient("Jane Doe", "+212600000001", "", "12 Rue des Fleurs", "Casablanca")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), code, shipperID, recipient, 1500, 24900, 3500, 1, "books")
	require.NoError(t, err)
	return p
}

func testAcceptedDemand(t *testing.T, shipperID kernel.UUID, parcelIDs []kernel.UUID) *demand.Demand {
	t.Helper()
	d, err := demand.NewDemand(kernel.NewUUID(), shipperID, "casablanca-center", parcelIDs, time.Now())
	require.NoError(t, err)
	require.NoError(t, d.Review(demand.Accepted, kernel.NewUUID(), "ok", time.Now()))
	return d
}

func testPendingMission(t *testing.T, kind mission.Kind, demandIDs, parcelIDs []kernel.UUID) *mission.Mission {
	t.Helper()
	now := time.Now()
	code, err := mission.NewCompletionCode()
	require.NoError(t, err)

	m, err := mission.NewMission(
		kernel.NewUUID(), mission.NewNumber(kind, now), kind,
		kernel.NewUUID(), now.Add(time.Hour), code, demandIDs, parcelIDs, now)
	require.NoError(t, err)
	return m
}

func testInProgressMission(t *testing.T, kind mission.Kind, demandIDs, parcelIDs []kernel.UUID) *mission.Mission {
	t.Helper()
	m := testPendingMission(t, kind, demandIDs, parcelIDs)
	require.NoError(t, m.Accept(m.Driver()))
	require.NoError(t, m.Start(m.Driver()))
	return m
}
