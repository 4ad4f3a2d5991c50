package mission_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/mission"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromString(t *testing.T) {
	t.Run("known kinds", func(t *testing.T) {
		k, err := mission.KindFromString("Pickup")
		require.NoError(t, err)
		assert.Equal(t, mission.Pickup, k)

		k, err = mission.KindFromString("Delivery")
		require.NoError(t, err)
		assert.Equal(t, mission.Delivery, k)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := mission.KindFromString("Roundtrip")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("the unknown sentinel cannot be parsed", func(t *testing.T) {
		_, err := mission.KindFromString("Unknown")
		require.Error(t, err)
	})
}

func TestKind_Validate(t *testing.T) {
	assert.NoError(t, mission.Pickup.Validate())
	assert.NoError(t, mission.Delivery.Validate())
	assert.Error(t, mission.UnknownKind.Validate())
	assert.Error(t, mission.Kind(42).Validate())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Pickup", mission.Pickup.String())
	assert.Equal(t, "Delivery", mission.Delivery.String())
	assert.Equal(t, "Unknown", mission.Kind(42).String())
}
