package menugroup_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuGroup(t *testing.T) {
	t.Run("should create valid menu group", func(t *testing.T) {
		id := kernel.NewUUID()

		g, err := menugroup.NewMenuGroup(id, "Chicken Specials")

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.ID().IsEqual(id))
		assert.Equal(t, "Chicken Specials", g.Name())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		g, err := menugroup.NewMenuGroup(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed id", func(t *testing.T) {
		var invalidID kernel.UUID

		g, err := menugroup.NewMenuGroup(invalidID, "Chicken Specials")

		require.Error(t, err)
		assert.Nil(t, g)
	})
}

func TestMenuGroupValidate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var g menugroup.MenuGroup

		assert.ErrorIs(t, g.Validate(), menugroup.ErrMenuGroupIsNotConstructed)
	})
}
