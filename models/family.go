package models

import (
	"time"

	"github.com/wealthnest/client-go/enums"
)

type Family struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedBy   int64     `json:"created_by"`
	MemberCount int       `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `json:"is_active"`
}

type FamilyMember struct {
	ID                 int64            `json:"id"`
	FamilyID           int64            `json:"family_id"`
	UserID             int64            `json:"user_id"`
	Role               enums.FamilyRole `json:"role"`
	CanViewAllAccounts bool             `json:"can_view_all_accounts"`
	CanEditAccounts    bool             `json:"can_edit_accounts"`
	CanInviteMembers   bool             `json:"can_invite_members"`
	CanExportReports   bool             `json:"can_export_reports"`
	JoinedAt           *time.Time       `json:"joined_at,omitempty"`
	User               *User            `json:"user,omitempty"`
}
