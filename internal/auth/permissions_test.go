package auth

import "testing"

func TestAdminHasEverything(t *testing.T) {
	for _, cap := range []Capability{CapClients, CapBuses, CapTrips, CapAccounts, CapBackup, CapUsers, CapManageUsers, CapWrite} {
		if !HasCapability("admin", cap) {
			t.Errorf("admin should have %q implicitly", cap)
		}
	}
}

func TestRoleAllowLists(t *testing.T) {
	tests := []struct {
		role string
		cap  Capability
		want bool
	}{
		{"manager", CapBackup, true},
		{"manager", CapManageUsers, false},
		{"operator", CapClients, true},
		{"operator", CapBackup, false},
		{"operator", CapUsers, false},
		{"readonly", CapAccounts, true},
		{"readonly", CapWrite, false},
		{"readonly", CapBackup, false},
		{"", CapClients, false},
		{"ghost", CapClients, false},
	}
	for _, tt := range tests {
		if got := HasCapability(tt.role, tt.cap); got != tt.want {
			t.Errorf("HasCapability(%q, %q) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestHasCapabilityNormalizesRole(t *testing.T) {
	if !HasCapability("  Manager ", CapClients) {
		t.Error("role lookup should trim and lowercase")
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{"admin", "manager", "operator", "readonly"} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false", r)
		}
	}
	if ValidRole("root") {
		t.Error("unknown role accepted")
	}
}
