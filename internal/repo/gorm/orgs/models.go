package orgs

import "time"

type Organization struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Slug      string `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	Name      string `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time
}

func (Organization) TableName() string { return "organizations" }

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Membership gates every organization-scoped operation.
type Membership struct {
	ID     uint   `gorm:"primaryKey"`
	OrgID  uint   `gorm:"uniqueIndex:idx_org_user;not null"`
	UserID uint   `gorm:"uniqueIndex:idx_org_user;not null"`
	Role   string `gorm:"size:16;not null"`
}

func (Membership) TableName() string { return "memberships" }
