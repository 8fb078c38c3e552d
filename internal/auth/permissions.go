// Package auth defines the role/capability model. Roles come from the users
// table; capabilities are the screens and destructive actions a role may reach.
package auth

import "strings"

// Capability tags checked at the route level.
type Capability string

const (
	CapClients     Capability = "clients"
	CapBuses       Capability = "buses"
	CapTrips       Capability = "trips"
	CapAccounts    Capability = "accounts"
	CapBackup      Capability = "backup"
	CapUsers       Capability = "users"
	CapManageUsers Capability = "manage-users"
	CapWrite       Capability = "write"
)

// Known roles.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleReadonly = "readonly"
)

// roleCapabilities is the explicit allow-list per role. Admin is implicit in
// HasCapability and intentionally absent here.
var roleCapabilities = map[string]map[Capability]struct{}{
	RoleManager:  capSet(CapClients, CapBuses, CapTrips, CapAccounts, CapBackup, CapUsers, CapWrite),
	RoleOperator: capSet(CapClients, CapBuses, CapTrips, CapAccounts, CapWrite),
	RoleReadonly: capSet(CapClients, CapBuses, CapTrips, CapAccounts),
}

func capSet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// HasCapability is the single permission check point. Admin has every
// capability implicitly; other roles only what their allow-list grants.
func HasCapability(role string, tag Capability) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == RoleAdmin {
		return true
	}
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	_, ok = caps[tag]
	return ok
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	switch strings.ToLower(strings.TrimSpace(r)) {
	case RoleAdmin, RoleManager, RoleOperator, RoleReadonly:
		return true
	default:
		return false
	}
}
