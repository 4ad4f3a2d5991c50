package tracking_test

import (
	"testing"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/parcel"
	"parcelflow/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("creation entry has no prior status", func(t *testing.T) {
		e, err := tracking.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), parcel.Pending,
			nil, nil, kernel.NewUUID(), "registered at intake", false, time.Now())

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, parcel.Pending, e.Status())
		assert.Nil(t, e.FromStatus())
		assert.Nil(t, e.Mission())
		assert.False(t, e.IsOverride())
	})

	t.Run("mission-driven entry carries the mission and prior status", func(t *testing.T) {
		from := parcel.Pending
		missionID := kernel.NewUUID()

		e, err := tracking.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), parcel.ToBePickedUp,
			&from, &missionID, kernel.NewUUID(), "", false, time.Now())

		require.NoError(t, err)
		require.NotNil(t, e.FromStatus())
		assert.Equal(t, parcel.Pending, *e.FromStatus())
		require.NotNil(t, e.Mission())
		assert.True(t, e.Mission().IsEqual(missionID))
	})

	t.Run("override entries are flagged", func(t *testing.T) {
		from := parcel.InTransit

		e, err := tracking.NewEntry(
			kernel.NewUUID(), kernel.NewUUID(), parcel.AtWarehouse,
			&from, nil, kernel.NewUUID(), "corrected after phone call", true, time.Now())

		require.NoError(t, err)
		assert.True(t, e.IsOverride())
		assert.Equal(t, "corrected after phone call", e.Note())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		var zero kernel.UUID
		now := time.Now()

		_, err := tracking.NewEntry(zero, kernel.NewUUID(), parcel.Pending, nil, nil, kernel.NewUUID(), "", false, now)
		require.Error(t, err, "zero entry id")

		_, err = tracking.NewEntry(kernel.NewUUID(), zero, parcel.Pending, nil, nil, kernel.NewUUID(), "", false, now)
		require.Error(t, err, "zero parcel id")

		_, err = tracking.NewEntry(kernel.NewUUID(), kernel.NewUUID(), parcel.Unknown, nil, nil, kernel.NewUUID(), "", false, now)
		require.Error(t, err, "unknown status")

		bad := parcel.Unknown
		_, err = tracking.NewEntry(kernel.NewUUID(), kernel.NewUUID(), parcel.Pending, &bad, nil, kernel.NewUUID(), "", false, now)
		require.Error(t, err, "unknown prior status")
	})

	t.Run("nil entry fails validation", func(t *testing.T) {
		var e *tracking.Entry
		require.ErrorIs(t, e.Validate(), tracking.ErrEntryIsNotConstructed)
	})
}
