package users

import (
	"time"

	"gorm.io/datatypes"
)

// UserAccount never stores the username in plaintext: the digest is the
// lookup key, the cipher is the recoverable original spelling.
type UserAccount struct {
	ID                 uint   `gorm:"primaryKey"`
	UsernameDigest     string `gorm:"uniqueIndex;size:64;not null"`
	UsernameCipher     []byte `gorm:"not null"`
	PasswordHash       string `gorm:"size:64;not null"`
	PasswordSalt       string `gorm:"size:32;not null"`
	PasswordIterations int    `gorm:"not null"`
	CreatedAt          time.Time
}

func (UserAccount) TableName() string { return "users" }

// UserSettings is one opaque blob per user, replaced wholesale on PUT.
type UserSettings struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"uniqueIndex;not null"`
	Data      datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}

func (UserSettings) TableName() string { return "user_settings" }
