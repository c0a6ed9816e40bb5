package enums

type FamilyRole string

const (
	RoleOwner   FamilyRole = "owner"
	RoleEditor  FamilyRole = "editor"
	RoleViewer  FamilyRole = "viewer"
	RoleAdvisor FamilyRole = "advisor"
)
