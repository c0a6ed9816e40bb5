package enums

const (
	FamiliesResource      = "families"
	FamilyMembersResource = "family-members"
	AccountsResource      = "accounts"
	TransactionsResource  = "transactions"
	DashboardResource     = "dashboard"
)
