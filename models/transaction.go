package models

import (
	"time"

	"github.com/wealthnest/client-go/enums"
)

type Transaction struct {
	ID              int64                     `json:"id"`
	AccountID       int64                     `json:"account_id"`
	TransactionID   string                    `json:"transaction_id"`
	TransactionDate time.Time                 `json:"transaction_date"`
	Amount          float64                   `json:"amount"`
	TransactionType enums.TransactionType     `json:"transaction_type"`
	Category        enums.TransactionCategory `json:"category"`
	Description     string                    `json:"description,omitempty"`
	MerchantName    string                    `json:"merchant_name,omitempty"`
	ReferenceNumber string                    `json:"reference_number,omitempty"`
	Currency        string                    `json:"currency"`
	BalanceAfter    *float64                  `json:"balance_after,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
	IsActive        bool                      `json:"is_active"`
}
