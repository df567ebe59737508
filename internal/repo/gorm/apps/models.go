package apps

// AppShortcut is a launcher-visible shortcut definition. The ID is the
// operator-assigned slug, not an autoincrement.
type AppShortcut struct {
	ID            string `gorm:"primaryKey;size:64" json:"id"`
	Name          string `gorm:"size:128;not null" json:"name"`
	MoonlightName string `gorm:"size:128" json:"moonlight_name"`
	Enabled       bool   `gorm:"default:true" json:"enabled"`
	SortOrder     int    `gorm:"default:100" json:"sort_order"`
}

func (AppShortcut) TableName() string { return "apps" }

// UserAppOverride overrides AppShortcut.Enabled for a single user.
type UserAppOverride struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_user_app;not null"`
	AppID     string `gorm:"uniqueIndex:idx_user_app;size:64;not null"`
	Installed bool
}

func (UserAppOverride) TableName() string { return "user_apps" }
