package services

// Front-end presentation roles. These drive UI visibility only; the backend
// authorization middleware knows nothing about them beyond this table.
const (
	FrontendRoleResident         = "resident"
	FrontendRoleDeveloper        = "developer"
	FrontendRoleLawyer           = "lawyer"
	FrontendRoleAppraiser        = "appraiser"
	FrontendRoleFinancialAdvisor = "financialAdvisor"
	FrontendRoleProfessional     = "professional"
	FrontendRoleLocalAuthority   = "localAuthority"
	FrontendRoleGovernmentOffice = "governmentOffice"
)

// Capability names a UI section or action a role may use.
type Capability string

const (
	CapabilityDashboard    Capability = "dashboard"
	CapabilityProjects     Capability = "projects"
	CapabilityCustomers    Capability = "customers"
	CapabilityDocuments    Capability = "documents"
	CapabilityTenders      Capability = "tenders"
	CapabilityTenderCreate Capability = "tenders.create"
	CapabilityTenderApply  Capability = "tenders.apply"
	CapabilityValuations   Capability = "valuations"
	CapabilityReports      Capability = "reports"
)

// frontendRoles lists every presentation role in display order.
var frontendRoles = []string{
	FrontendRoleResident,
	FrontendRoleDeveloper,
	FrontendRoleLawyer,
	FrontendRoleAppraiser,
	FrontendRoleFinancialAdvisor,
	FrontendRoleProfessional,
	FrontendRoleLocalAuthority,
	FrontendRoleGovernmentOffice,
}

// capabilityOrder fixes the order capabilities are reported in.
var capabilityOrder = []Capability{
	CapabilityDashboard,
	CapabilityProjects,
	CapabilityCustomers,
	CapabilityDocuments,
	CapabilityTenders,
	CapabilityTenderCreate,
	CapabilityTenderApply,
	CapabilityValuations,
	CapabilityReports,
}

// capabilityRoles is the single place the role -> capability rules live.
// Both the /capabilities endpoints and any future server side gating consult
// this table; nothing branches on role strings elsewhere.
var capabilityRoles = map[Capability][]string{
	CapabilityDashboard: frontendRoles,
	CapabilityProjects:  frontendRoles,
	CapabilityCustomers: {
		FrontendRoleLawyer,
		FrontendRoleFinancialAdvisor,
		FrontendRoleLocalAuthority,
		FrontendRoleGovernmentOffice,
	},
	CapabilityDocuments: {
		FrontendRoleDeveloper,
		FrontendRoleLawyer,
		FrontendRoleLocalAuthority,
		FrontendRoleGovernmentOffice,
	},
	CapabilityTenders: {
		FrontendRoleLocalAuthority,
		FrontendRoleGovernmentOffice,
		FrontendRoleDeveloper,
		FrontendRoleProfessional,
	},
	CapabilityTenderCreate: {
		FrontendRoleLocalAuthority,
		FrontendRoleGovernmentOffice,
	},
	CapabilityTenderApply: {
		FrontendRoleDeveloper,
		FrontendRoleProfessional,
	},
	CapabilityValuations: {
		FrontendRoleAppraiser,
		FrontendRoleFinancialAdvisor,
		FrontendRoleLocalAuthority,
		FrontendRoleGovernmentOffice,
	},
	CapabilityReports: frontendRoles,
}

// IsFrontendRole reports whether the value is a known presentation role.
func IsFrontendRole(role string) bool {
	for _, r := range frontendRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccess reports whether the role may use the capability.
func CanAccess(role string, capability Capability) bool {
	for _, r := range capabilityRoles[capability] {
		if r == role {
			return true
		}
	}
	return false
}

// CapabilitiesFor returns the capabilities available to a role, in the fixed
// display order.
func CapabilitiesFor(role string) []Capability {
	capabilities := make([]Capability, 0, len(capabilityOrder))
	for _, capability := range capabilityOrder {
		if CanAccess(role, capability) {
			capabilities = append(capabilities, capability)
		}
	}
	return capabilities
}

// RolesFor returns the roles allowed to use a capability.
func RolesFor(capability Capability) []string {
	roles := capabilityRoles[capability]
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}

// FrontendRoles returns every presentation role in display order.
func FrontendRoles() []string {
	out := make([]string, len(frontendRoles))
	copy(out, frontendRoles)
	return out
}
