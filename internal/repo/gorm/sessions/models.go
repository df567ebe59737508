package sessions

import "time"

const (
	StatusProvisioning = "provisioning"
	StatusTerminated   = "terminated"
)

// StreamSession only ever moves provisioning -> terminated.
type StreamSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OrgID     uint      `gorm:"not null;index" json:"org_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	GameID    uint      `gorm:"not null" json:"game_id"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	StreamURL string    `gorm:"size:255" json:"stream_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StreamSession) TableName() string { return "sessions" }
