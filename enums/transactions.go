package enums

type TransactionType string

const (
	TransactionCredit     TransactionType = "credit"
	TransactionDebit      TransactionType = "debit"
	TransactionTransfer   TransactionType = "transfer"
	TransactionInvestment TransactionType = "investment"
	TransactionRedemption TransactionType = "redemption"
	TransactionDividend   TransactionType = "dividend"
	TransactionInterest   TransactionType = "interest"
	TransactionFee        TransactionType = "fee"
)

type TransactionCategory string

const (
	CategoryFood          TransactionCategory = "food"
	CategoryTransport     TransactionCategory = "transport"
	CategoryShopping      TransactionCategory = "shopping"
	CategoryBills         TransactionCategory = "bills"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryHealthcare    TransactionCategory = "healthcare"
	CategoryEducation     TransactionCategory = "education"
	CategoryInvestment    TransactionCategory = "investment"
	CategorySalary        TransactionCategory = "salary"
	CategoryTransfer      TransactionCategory = "transfer"
	CategoryOther         TransactionCategory = "other"
)
