package orgs

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicateSlug = errors.New("organization slug already exists")

// DefaultSlug is the organization the first registered user becomes owner of.
const DefaultSlug = "default"

type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&Organization{}, &Membership{}) }
func NewRepo(db *gorm.DB) *Repo     { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, o *Organization) error {
	var existing Organization
	if err := r.db.WithContext(ctx).Where("slug = ?", o.Slug).First(&existing).Error; err == nil {
		return ErrDuplicateSlug
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *Repo) Get(ctx context.Context, id uint) (*Organization, error) {
	var o Organization
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (*Organization, error) {
	var o Organization
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) List(ctx context.Context) ([]*Organization, error) {
	var arr []*Organization
	if err := r.db.WithContext(ctx).Order("id").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

// EnsureDefault creates the default organization when missing and returns it.
func (r *Repo) EnsureDefault(ctx context.Context) (*Organization, error) {
	o, err := r.GetBySlug(ctx, DefaultSlug)
	if err == nil {
		return o, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	o = &Organization{Slug: DefaultSlug, Name: "Default"}
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// AddMember inserts or updates the role for (org, user). Never duplicates.
func (r *Repo) AddMember(ctx context.Context, orgID, userID uint, role string) error {
	var m Membership
	err := r.db.WithContext(ctx).Where("org_id = ? AND user_id = ?", orgID, userID).First(&m).Error
	if err != nil {
		m = Membership{OrgID: orgID, UserID: userID, Role: role}
		return r.db.WithContext(ctx).Create(&m).Error
	}
	m.Role = role
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *Repo) IsMember(ctx context.Context, orgID, userID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Membership{}).Where("org_id = ? AND user_id = ?", orgID, userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) Members(ctx context.Context, orgID uint) ([]*Membership, error) {
	var arr []*Membership
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("user_id").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}
