package models

import (
	"time"

	"github.com/wealthnest/client-go/enums"
)

type Account struct {
	ID                 int64                 `json:"id"`
	FamilyID           int64                 `json:"family_id"`
	OwnerID            int64                 `json:"owner_id"`
	Name               string                `json:"name"`
	AccountType        enums.AccountType     `json:"account_type"`
	Provider           enums.AccountProvider `json:"provider"`
	Status             enums.AccountStatus   `json:"status"`
	AccountNumberLast4 string                `json:"account_number_last_4,omitempty"`
	CurrentBalance     float64               `json:"current_balance"`
	Currency           string                `json:"currency"`
	LastSyncedAt       *time.Time            `json:"last_synced_at,omitempty"`
	SyncError          string                `json:"sync_error,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
	IsActive           bool                  `json:"is_active"`
	Metadata           map[string]any        `json:"metadata,omitempty"`
}
