// file: internals/tenancy/context_test.go
package tenancy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeStates(t *testing.T) {
	schoolID := uuid.New()

	t.Run("zero value is unresolved", func(t *testing.T) {
		var sc Scope
		assert.True(t, sc.IsUnresolved())
		assert.False(t, sc.HasSchool())
		assert.False(t, sc.IsUnrestricted())

		_, ok := sc.SchoolID()
		assert.False(t, ok)
	})

	t.Run("school-bound", func(t *testing.T) {
		sc := ScopeForSchool(schoolID)
		assert.True(t, sc.HasSchool())
		assert.False(t, sc.IsUnresolved())
		assert.False(t, sc.IsUnrestricted())

		id, ok := sc.SchoolID()
		require.True(t, ok)
		assert.Equal(t, schoolID, id)
	})

	t.Run("unrestricted is not unresolved", func(t *testing.T) {
		sc := UnrestrictedScope()
		assert.True(t, sc.IsUnrestricted())
		assert.False(t, sc.IsUnresolved())
		assert.False(t, sc.HasSchool())

		_, ok := sc.SchoolID()
		assert.False(t, ok)
	})

	t.Run("nil school id is still unresolved", func(t *testing.T) {
		sc := ScopeForSchool(uuid.Nil)
		assert.True(t, sc.IsUnresolved())
		assert.False(t, sc.HasSchool())
	})
}

func TestScopeContextRoundTrip(t *testing.T) {
	schoolID := uuid.New()

	ctx := context.Background()
	assert.True(t, ScopeFromContext(ctx).IsUnresolved(), "context tanpa scope harus unresolved")

	ctx = WithScope(ctx, ScopeForSchool(schoolID))
	got := ScopeFromContext(ctx)
	id, ok := got.SchoolID()
	require.True(t, ok)
	assert.Equal(t, schoolID, id)
}

func TestClearScope(t *testing.T) {
	schoolID := uuid.New()

	ctx := WithScope(context.Background(), ScopeForSchool(schoolID))
	ctx = ClearScope(ctx)
	assert.True(t, ScopeFromContext(ctx).IsUnresolved())

	// idempotent: clear berkali-kali dan clear tanpa pernah set
	ctx = ClearScope(ctx)
	assert.True(t, ScopeFromContext(ctx).IsUnresolved())
	assert.True(t, ScopeFromContext(ClearScope(context.Background())).IsUnresolved())

	// nil-safe
	assert.True(t, ScopeFromContext(ClearScope(nil)).IsUnresolved()) //nolint:staticcheck
}

func TestScopeFromNilContext(t *testing.T) {
	assert.True(t, ScopeFromContext(nil).IsUnresolved()) //nolint:staticcheck
}
