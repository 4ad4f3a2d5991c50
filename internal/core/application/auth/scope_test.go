package auth_test

import (
	"testing"

	"parcelflow/internal/core/application/auth"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	t.Run("agency scope only allows its own agency", func(t *testing.T) {
		scope, err := auth.ForAgency("casablanca-center")
		require.NoError(t, err)

		assert.True(t, scope.Allows("casablanca-center"))
		assert.False(t, scope.Allows("rabat-hub"))
		assert.False(t, scope.IsAll())
	})

	t.Run("all-agencies scope allows everything", func(t *testing.T) {
		scope := auth.AllAgencies()

		assert.True(t, scope.Allows("casablanca-center"))
		assert.True(t, scope.Allows("rabat-hub"))
		assert.True(t, scope.IsAll())
	})

	t.Run("empty agency is rejected", func(t *testing.T) {
		_, err := auth.ForAgency("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var scope auth.Scope
		require.Error(t, scope.Validate())
	})
}
