package models

import (
	"time"

	"github.com/wealthnest/client-go/enums"
)

// Request payloads carry validate tags so credentials and forms are checked
// before any network call is made.

type LoginRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	TwoFactorCode string `json:"two_factor_code,omitempty" validate:"omitempty,len=6,numeric"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
}

type AcceptInvitationRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
	Phone           string `json:"phone" validate:"required"`
	FullName        string `json:"full_name,omitempty"`
}

type CreateFamilyRequest struct {
	Name string `json:"name" validate:"required"`
}

type InviteMemberRequest struct {
	Email              string           `json:"email" validate:"required,email"`
	Role               enums.FamilyRole `json:"role" validate:"required"`
	CanViewAllAccounts bool             `json:"can_view_all_accounts"`
	CanEditAccounts    bool             `json:"can_edit_accounts"`
	CanInviteMembers   bool             `json:"can_invite_members"`
	CanExportReports   bool             `json:"can_export_reports"`
}

type CreateAccountRequest struct {
	FamilyID           int64                 `json:"family_id" validate:"required"`
	Name               string                `json:"name" validate:"required"`
	AccountType        enums.AccountType     `json:"account_type" validate:"required"`
	Provider           enums.AccountProvider `json:"provider,omitempty"`
	AccountNumberLast4 string                `json:"account_number_last_4,omitempty"`
	CurrentBalance     float64               `json:"current_balance"`
	Currency           string                `json:"currency,omitempty"`
	Metadata           map[string]any        `json:"metadata,omitempty"`
}

type CreateTransactionRequest struct {
	AccountID       int64                     `json:"account_id" validate:"required"`
	TransactionID   string                    `json:"transaction_id" validate:"required"`
	TransactionDate time.Time                 `json:"transaction_date" validate:"required"`
	Amount          float64                   `json:"amount" validate:"required"`
	TransactionType enums.TransactionType     `json:"transaction_type" validate:"required"`
	Category        enums.TransactionCategory `json:"category,omitempty"`
	Description     string                    `json:"description,omitempty"`
	MerchantName    string                    `json:"merchant_name,omitempty"`
	ReferenceNumber string                    `json:"reference_number,omitempty"`
	Currency        string                    `json:"currency,omitempty"`
	BalanceAfter    *float64                  `json:"balance_after,omitempty"`
}
