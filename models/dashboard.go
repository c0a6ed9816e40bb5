package models

import "time"

type NetWorth struct {
	TotalNetWorth    float64   `json:"total_net_worth"`
	TotalAssets      float64   `json:"total_assets"`
	TotalLiabilities float64   `json:"total_liabilities"`
	Currency         string    `json:"currency"`
	LastUpdated      time.Time `json:"last_updated"`
}

type AssetAllocationItem struct {
	AccountType string  `json:"account_type"`
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage"`
}

type AssetAllocation struct {
	Allocation []AssetAllocationItem `json:"allocation"`
	Currency   string                `json:"currency"`
}

type MemberNetWorth struct {
	UserID        int64   `json:"user_id"`
	UserName      string  `json:"user_name"`
	NetWorth      float64 `json:"net_worth"`
	AccountsCount int     `json:"accounts_count"`
}

type TopMover struct {
	AccountID        int64   `json:"account_id"`
	AccountName      string  `json:"account_name"`
	ChangeAmount     float64 `json:"change_amount"`
	ChangePercentage float64 `json:"change_percentage"`
	ChangeType       string  `json:"change_type"`
}

type Alert struct {
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	AccountID *int64     `json:"account_id,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Amount    *float64   `json:"amount,omitempty"`
}

// Dashboard is the aggregate view returned by GET /dashboard.
type Dashboard struct {
	NetWorth        NetWorth         `json:"net_worth"`
	AssetAllocation AssetAllocation  `json:"asset_allocation"`
	MemberNetWorth  []MemberNetWorth `json:"member_net_worth"`
	TopMovers       []TopMover       `json:"top_movers"`
	Alerts          []Alert          `json:"alerts"`
	LastSynced      *time.Time       `json:"last_synced,omitempty"`
}
