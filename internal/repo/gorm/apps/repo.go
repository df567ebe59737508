package apps

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicateID = errors.New("app id already exists")

type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&AppShortcut{}, &UserAppOverride{}) }
func NewRepo(db *gorm.DB) *Repo     { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, a *AppShortcut) error {
	var existing AppShortcut
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", a.ID).Error; err == nil {
		return ErrDuplicateID
	}
	return r.db.WithContext(ctx).Create(a).Error
}

// Update replaces all mutable columns. Returns gorm.ErrRecordNotFound when
// the id is unknown.
func (r *Repo) Update(ctx context.Context, a *AppShortcut) error {
	res := r.db.WithContext(ctx).Model(&AppShortcut{}).Where("id = ?", a.ID).
		Select("name", "moonlight_name", "enabled", "sort_order").
		Updates(map[string]any{
			"name":           a.Name,
			"moonlight_name": a.MoonlightName,
			"enabled":        a.Enabled,
			"sort_order":     a.SortOrder,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&AppShortcut{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (*AppShortcut, error) {
	var a AppShortcut
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns shortcuts ordered for display. enabled filters when non-nil.
func (r *Repo) List(ctx context.Context, enabled *bool) ([]*AppShortcut, error) {
	q := r.db.WithContext(ctx).Order("sort_order, name")
	if enabled != nil {
		q = q.Where("enabled = ?", *enabled)
	}
	var arr []*AppShortcut
	if err := q.Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) BySlug(ctx context.Context, slugs []string) (map[string]*AppShortcut, error) {
	out := map[string]*AppShortcut{}
	if len(slugs) == 0 {
		return out, nil
	}
	var arr []*AppShortcut
	if err := r.db.WithContext(ctx).Where("id IN ?", slugs).Find(&arr).Error; err != nil {
		return nil, err
	}
	for _, a := range arr {
		out[a.ID] = a
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&AppShortcut{}).Count(&n).Error
	return n, err
}

// UpsertOverride creates or updates the per-user installed flag.
func (r *Repo) UpsertOverride(ctx context.Context, userID uint, appID string, installed bool) error {
	var o UserAppOverride
	err := r.db.WithContext(ctx).Where("user_id = ? AND app_id = ?", userID, appID).First(&o).Error
	if err != nil {
		o = UserAppOverride{UserID: userID, AppID: appID, Installed: installed}
		return r.db.WithContext(ctx).Create(&o).Error
	}
	o.Installed = installed
	return r.db.WithContext(ctx).Save(&o).Error
}

// Overrides returns app_id -> installed for a user.
func (r *Repo) Overrides(ctx context.Context, userID uint) (map[string]bool, error) {
	var arr []UserAppOverride
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&arr).Error; err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(arr))
	for _, o := range arr {
		out[o.AppID] = o.Installed
	}
	return out, nil
}
