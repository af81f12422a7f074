// Package access describes who is calling and which locations they may touch.
// An Actor is built once per request and passed explicitly to use cases.
package access

import "github.com/BruksfildServices01/salon-erp/internal/httperr"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleSystem  = "system"
)

type Actor struct {
	UserID      string
	StaffID     string
	Name        string
	Role        string
	LocationIDs []string
}

// System is the actor used for work not triggered by a user.
func System() Actor {
	return Actor{Name: "system", Role: RoleSystem}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSystem
}

// CanAccess reports whether the actor may read or write data of a location.
func (a Actor) CanAccess(locationID string) bool {
	if a.IsAdmin() {
		return true
	}
	for _, id := range a.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}

// Require returns location_forbidden when the actor cannot access locationID.
func (a Actor) Require(locationID string) error {
	if !a.CanAccess(locationID) {
		return httperr.ErrBusiness("location_forbidden")
	}
	return nil
}

// Scope returns the location ids a query must be limited to.
// restricted=false means the actor sees every location.
func (a Actor) Scope() (ids []string, restricted bool) {
	if a.IsAdmin() {
		return nil, false
	}
	return a.LocationIDs, true
}

// Label is the value recorded as "updated by" in logs and history.
func (a Actor) Label() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.UserID != "":
		return a.UserID
	default:
		return "unknown"
	}
}
