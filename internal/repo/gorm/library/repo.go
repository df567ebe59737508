package library

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&LibraryEntry{}, &ExternalAccountLink{})
}
func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// Upsert writes the ownership record for (org, user, game), refreshing the
// proof on repeat verification.
func (r *Repo) Upsert(ctx context.Context, e *LibraryEntry) error {
	var existing LibraryEntry
	err := r.db.WithContext(ctx).Where("org_id = ? AND user_id = ? AND game_id = ?", e.OrgID, e.UserID, e.GameID).First(&existing).Error
	if err != nil {
		return r.db.WithContext(ctx).Create(e).Error
	}
	existing.OwnershipSource = e.OwnershipSource
	existing.ProofType = e.ProofType
	existing.ProofValue = e.ProofValue
	existing.VerifiedAt = e.VerifiedAt
	*e = existing
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *Repo) List(ctx context.Context, orgID, userID uint) ([]*LibraryEntry, error) {
	var arr []*LibraryEntry
	if err := r.db.WithContext(ctx).Where("org_id = ? AND user_id = ?", orgID, userID).Order("game_id").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

// OwnedSet returns game_id -> true for the user's library in an organization.
func (r *Repo) OwnedSet(ctx context.Context, orgID, userID uint) (map[uint]bool, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&LibraryEntry{}).Where("org_id = ? AND user_id = ?", orgID, userID).Pluck("game_id", &ids).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// UpsertLink records the external account link, replacing prior metadata.
func (r *Repo) UpsertLink(ctx context.Context, l *ExternalAccountLink) error {
	var existing ExternalAccountLink
	err := r.db.WithContext(ctx).Where("org_id = ? AND user_id = ? AND platform = ?", l.OrgID, l.UserID, l.Platform).First(&existing).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return r.db.WithContext(ctx).Create(l).Error
	}
	existing.ExternalID = l.ExternalID
	existing.Metadata = l.Metadata
	*l = existing
	return r.db.WithContext(ctx).Save(&existing).Error
}
