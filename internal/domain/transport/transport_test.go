package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoute(t *testing.T) *Route {
	t.Helper()
	r, err := NewRoute("North Loop", "KA-01-F-2231", "Suresh", "9800000001", 2, 90000, []string{"Market Gate", "Old Bridge"})
	require.NoError(t, err)
	require.NoError(t, r.SetID(1))
	return r
}

func TestRouteCapacity(t *testing.T) {
	r := newTestRoute(t)

	assert.True(t, r.HasCapacity(0))
	assert.True(t, r.HasCapacity(1))
	assert.False(t, r.HasCapacity(2))
}

func TestRouteStops(t *testing.T) {
	r := newTestRoute(t)

	assert.True(t, r.HasStop("Market Gate"))
	assert.True(t, r.HasStop("market gate"))
	assert.False(t, r.HasStop("Station Road"))
}

func TestNewRouteValidation(t *testing.T) {
	_, err := NewRoute("", "KA-01", "", "", 10, 0, []string{"A"})
	assert.Error(t, err)

	_, err = NewRoute("Loop", "KA-01", "", "", 0, 0, []string{"A"})
	assert.Error(t, err)

	_, err = NewRoute("Loop", "KA-01", "", "", 10, 0, nil)
	assert.Error(t, err)
}

func TestAssignmentLifecycle(t *testing.T) {
	a, err := NewAssignment(1, 4, "Market Gate")
	require.NoError(t, err)
	assert.True(t, a.IsActive())

	a.End()
	assert.False(t, a.IsActive())
	endedAt := *a.EndedAt

	a.End()
	assert.Equal(t, endedAt, *a.EndedAt)
}
