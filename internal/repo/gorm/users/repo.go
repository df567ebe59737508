package users

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&UserAccount{}, &UserSettings{}) }
func New(db *gorm.DB) *Repo         { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, u *UserAccount) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *Repo) GetByID(ctx context.Context, id uint) (*UserAccount, error) {
	var u UserAccount
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) GetByDigest(ctx context.Context, digest string) (*UserAccount, error) {
	var u UserAccount
	if err := r.db.WithContext(ctx).Where("username_digest = ?", digest).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) DigestExists(ctx context.Context, digest string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserAccount{}).Where("username_digest = ?", digest).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&UserAccount{}).Count(&n).Error
	return n, err
}

// GetSettings lazily creates an empty row on first read.
func (r *Repo) GetSettings(ctx context.Context, userID uint) (*UserSettings, error) {
	var s UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	s = UserSettings{UserID: userID, Data: datatypes.JSON([]byte("{}"))}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// PutSettings replaces the blob, creating the row when missing.
func (r *Repo) PutSettings(ctx context.Context, userID uint, data datatypes.JSON) (*UserSettings, error) {
	var s UserSettings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		s = UserSettings{UserID: userID, Data: data}
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	s.Data = data
	if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
