package catalog

import "time"

// Game is a canonical catalog item, independent of launcher shortcuts.
type Game struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Slug        string  `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	Name        string  `gorm:"size:128;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Rating      float64 `json:"rating"`
	CoverURL    string  `gorm:"size:255" json:"cover_url"`
}

func (Game) TableName() string { return "games" }

// GameExternalID maps a game onto an external platform identifier.
type GameExternalID struct {
	ID         uint   `gorm:"primaryKey"`
	GameID     uint   `gorm:"uniqueIndex:idx_game_platform;not null" json:"game_id"`
	Platform   string `gorm:"uniqueIndex:idx_game_platform;size:32;not null" json:"platform"`
	ExternalID string `gorm:"size:64;not null" json:"external_id"`
}

func (GameExternalID) TableName() string { return "game_external_ids" }

// ChartEntry is an immutable daily snapshot row. GameID stays nil when the
// chart row never got linked to a catalog game.
type ChartEntry struct {
	ID         uint   `gorm:"primaryKey"`
	ChartDate  string `gorm:"uniqueIndex:idx_chart_date_rank;size:10;not null;index"`
	Rank       int    `gorm:"uniqueIndex:idx_chart_date_rank;not null"`
	SteamAppID int64
	GameID     *uint
	Name       string `gorm:"size:128"`
}

func (ChartEntry) TableName() string { return "chart_entries" }

// DownloadedGame marks a game install-ready for an organization.
type DownloadedGame struct {
	ID        uint `gorm:"primaryKey"`
	OrgID     uint `gorm:"uniqueIndex:idx_org_game;not null"`
	GameID    uint `gorm:"uniqueIndex:idx_org_game;not null"`
	CreatedAt time.Time
}

func (DownloadedGame) TableName() string { return "downloaded_games" }
