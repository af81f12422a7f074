package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{
		"pending", "confirmed", "checked-in", "arrived", "service-started",
		"completed", "cancelled", "no-show", "blocked",
	} {
		st, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), st)
	}

	_, err := ParseStatus("done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = ParseStatus("")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusServiceStarted, true},
		{StatusCheckedIn, StatusServiceStarted, true},
		{StatusArrived, StatusCompleted, true},
		{StatusServiceStarted, StatusCompleted, true},
		{StatusServiceStarted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusConfirmed, false},
		{StatusBlocked, StatusCancelled, true},
		{StatusBlocked, StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusBlocked.IsTerminal())
}

func TestAllowedNextReturnsCopy(t *testing.T) {
	next := AllowedNext(StatusServiceStarted)
	require.Equal(t, []Status{StatusCompleted}, next)

	next[0] = StatusPending
	assert.True(t, CanTransition(StatusServiceStarted, StatusCompleted))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(TypeAppointment))
	assert.Equal(t, StatusPending, InitialStatus(""))
	assert.Equal(t, StatusBlocked, InitialStatus(TypeBlocked))
}
