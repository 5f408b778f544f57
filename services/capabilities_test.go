package services

import (
	"reflect"
	"testing"
)

func TestTenderCapabilityRoleSets(t *testing.T) {
	cases := []struct {
		capability Capability
		roles      []string
	}{
		{CapabilityTenders, []string{
			FrontendRoleLocalAuthority,
			FrontendRoleGovernmentOffice,
			FrontendRoleDeveloper,
			FrontendRoleProfessional,
		}},
		{CapabilityTenderCreate, []string{
			FrontendRoleLocalAuthority,
			FrontendRoleGovernmentOffice,
		}},
		{CapabilityTenderApply, []string{
			FrontendRoleDeveloper,
			FrontendRoleProfessional,
		}},
	}

	for _, tc := range cases {
		if got := RolesFor(tc.capability); !reflect.DeepEqual(got, tc.roles) {
			t.Errorf("RolesFor(%s) = %v, want %v", tc.capability, got, tc.roles)
		}
	}
}

func TestEveryRoleSeesDashboardProjectsReports(t *testing.T) {
	for _, role := range FrontendRoles() {
		for _, capability := range []Capability{CapabilityDashboard, CapabilityProjects, CapabilityReports} {
			if !CanAccess(role, capability) {
				t.Errorf("expected %s to access %s", role, capability)
			}
		}
	}
}

func TestCanAccessDeniesOutsiders(t *testing.T) {
	if CanAccess(FrontendRoleResident, CapabilityTenders) {
		t.Error("resident must not see tenders")
	}
	if CanAccess(FrontendRoleLawyer, CapabilityTenderApply) {
		t.Error("lawyer must not apply to tenders")
	}
	if CanAccess(FrontendRoleDeveloper, CapabilityTenderCreate) {
		t.Error("developer must not create tenders")
	}
	if CanAccess("unknown", CapabilityDashboard) {
		t.Error("unknown role must have no capabilities")
	}
}

func TestCapabilitiesForFollowsDisplayOrder(t *testing.T) {
	got := CapabilitiesFor(FrontendRoleDeveloper)
	want := []Capability{
		CapabilityDashboard,
		CapabilityProjects,
		CapabilityDocuments,
		CapabilityTenders,
		CapabilityTenderApply,
		CapabilityReports,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CapabilitiesFor(developer) = %v, want %v", got, want)
	}
}

func TestIsFrontendRole(t *testing.T) {
	for _, role := range FrontendRoles() {
		if !IsFrontendRole(role) {
			t.Errorf("expected %s to be a known role", role)
		}
	}
	if IsFrontendRole("Administrator") {
		t.Error("backend role must not be a presentation role")
	}
}
