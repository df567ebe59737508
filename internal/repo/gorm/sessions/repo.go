package sessions

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&StreamSession{}) }
func NewRepo(db *gorm.DB) *Repo     { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, s *StreamSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repo) Get(ctx context.Context, id string) (*StreamSession, error) {
	var s StreamSession
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Terminate is idempotent: a second call leaves the row terminated.
func (r *Repo) Terminate(ctx context.Context, id string) (*StreamSession, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Status != StatusTerminated {
		s.Status = StatusTerminated
		if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
			return nil, err
		}
	}
	return s, nil
}
