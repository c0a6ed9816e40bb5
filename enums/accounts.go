package enums

type AccountType string

const (
	AccountSavings      AccountType = "savings"
	AccountCurrent      AccountType = "current"
	AccountCreditCard   AccountType = "credit_card"
	AccountFixedDeposit AccountType = "fixed_deposit"
	AccountMutualFund   AccountType = "mutual_fund"
	AccountStock        AccountType = "stock"
	AccountDebt         AccountType = "debt"
	AccountCollection   AccountType = "collection"
)

type AccountStatus string

const (
	AccountStatusPending      AccountStatus = "pending"
	AccountStatusLinked       AccountStatus = "linked"
	AccountStatusError        AccountStatus = "error"
	AccountStatusExpired      AccountStatus = "expired"
	AccountStatusDisconnected AccountStatus = "disconnected"
)

type AccountProvider string

const (
	ProviderManual            AccountProvider = "manual"
	ProviderAccountAggregator AccountProvider = "account_aggregator"
	ProviderCSVImport         AccountProvider = "csv_import"
	ProviderPDFImport         AccountProvider = "pdf_import"
)
