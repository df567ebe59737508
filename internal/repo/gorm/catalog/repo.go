package catalog

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Game{}, &GameExternalID{}, &ChartEntry{}, &DownloadedGame{})
}
func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreateGame(ctx context.Context, g *Game) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *Repo) GetGame(ctx context.Context, id uint) (*Game, error) {
	var g Game
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repo) GamesByID(ctx context.Context, ids []uint) (map[uint]*Game, error) {
	out := map[uint]*Game{}
	if len(ids) == 0 {
		return out, nil
	}
	var arr []*Game
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&arr).Error; err != nil {
		return nil, err
	}
	for _, g := range arr {
		out[g.ID] = g
	}
	return out, nil
}

func (r *Repo) ExternalIDs(ctx context.Context, gameID uint) ([]*GameExternalID, error) {
	var arr []*GameExternalID
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("platform").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) AddExternalID(ctx context.Context, e *GameExternalID) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repo) AddChartEntry(ctx context.Context, e *ChartEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// LatestChartDate returns "" when no chart snapshot exists.
func (r *Repo) LatestChartDate(ctx context.Context) (string, error) {
	var date *string
	if err := r.db.WithContext(ctx).Model(&ChartEntry{}).Select("MAX(chart_date)").Scan(&date).Error; err != nil {
		return "", err
	}
	if date == nil {
		return "", nil
	}
	return *date, nil
}

func (r *Repo) ChartByDate(ctx context.Context, date string) ([]*ChartEntry, error) {
	var arr []*ChartEntry
	if err := r.db.WithContext(ctx).Where("chart_date = ?", date).Order("rank").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) AddDownload(ctx context.Context, orgID, gameID uint) error {
	var d DownloadedGame
	err := r.db.WithContext(ctx).Where("org_id = ? AND game_id = ?", orgID, gameID).First(&d).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(&DownloadedGame{OrgID: orgID, GameID: gameID}).Error
}

func (r *Repo) HasDownload(ctx context.Context, orgID, gameID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&DownloadedGame{}).Where("org_id = ? AND game_id = ?", orgID, gameID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// DownloadedSet returns game_id -> true for the organization's downloads.
func (r *Repo) DownloadedSet(ctx context.Context, orgID uint) (map[uint]bool, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&DownloadedGame{}).Where("org_id = ?", orgID).Pluck("game_id", &ids).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *Repo) DownloadedGameIDs(ctx context.Context, orgID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&DownloadedGame{}).Where("org_id = ?", orgID).Order("game_id").Pluck("game_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
