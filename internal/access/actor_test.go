package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
)

func TestActorAccess(t *testing.T) {
	staff := Actor{UserID: "u1", Role: RoleStaff, LocationIDs: []string{"loc1"}}

	assert.False(t, staff.IsAdmin())
	assert.True(t, staff.CanAccess("loc1"))
	assert.False(t, staff.CanAccess("loc2"))
	assert.NoError(t, staff.Require("loc1"))
	assert.True(t, httperr.IsBusiness(staff.Require("loc2"), "location_forbidden"))

	ids, restricted := staff.Scope()
	assert.True(t, restricted)
	assert.Equal(t, []string{"loc1"}, ids)
}

func TestAdminAndSystemSeeEverything(t *testing.T) {
	for _, a := range []Actor{{Role: RoleAdmin}, System()} {
		assert.True(t, a.IsAdmin())
		assert.True(t, a.CanAccess("anywhere"))

		ids, restricted := a.Scope()
		assert.False(t, restricted)
		assert.Nil(t, ids)
	}
}

func TestStaffWithoutLocationsIsRestrictedToNothing(t *testing.T) {
	a := Actor{Role: RoleManager}
	ids, restricted := a.Scope()
	assert.True(t, restricted)
	assert.Empty(t, ids)
	assert.False(t, a.CanAccess("loc1"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Ana", Actor{Name: "Ana", UserID: "u1"}.Label())
	assert.Equal(t, "u1", Actor{UserID: "u1"}.Label())
	assert.Equal(t, "unknown", Actor{}.Label())
	assert.Equal(t, "system", System().Label())
}
