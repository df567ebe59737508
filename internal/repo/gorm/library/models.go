package library

import (
	"time"

	"gorm.io/datatypes"
)

// LibraryEntry is a per-user, per-organization ownership claim.
type LibraryEntry struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	OrgID           uint      `gorm:"uniqueIndex:idx_org_user_game;not null" json:"org_id"`
	UserID          uint      `gorm:"uniqueIndex:idx_org_user_game;not null" json:"user_id"`
	GameID          uint      `gorm:"uniqueIndex:idx_org_user_game;not null" json:"game_id"`
	OwnershipSource string    `gorm:"size:32" json:"ownership_source"`
	ProofType       string    `gorm:"size:32" json:"proof_type"`
	ProofValue      string    `gorm:"size:128" json:"proof_value"`
	VerifiedAt      time.Time `json:"verified_at"`
}

func (LibraryEntry) TableName() string { return "user_game_library" }

// ExternalAccountLink records a simulated external-platform account link.
type ExternalAccountLink struct {
	ID         uint           `gorm:"primaryKey"`
	OrgID      uint           `gorm:"uniqueIndex:idx_org_user_platform;not null"`
	UserID     uint           `gorm:"uniqueIndex:idx_org_user_platform;not null"`
	Platform   string         `gorm:"uniqueIndex:idx_org_user_platform;size:32;not null"`
	ExternalID string         `gorm:"size:64"`
	Metadata   datatypes.JSON `gorm:"type:json"`
}

func (ExternalAccountLink) TableName() string { return "external_account_links" }
