package catalog

import (
	"context"

	appsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/apps"
	catrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/catalog"
	libraryrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/library"
)

// Entry is one merged catalog row. Chart-backed rows carry Rank and maybe a
// resolved game; fallback rows come straight from the app table.
type Entry struct {
	Rank          *int    `json:"rank"`
	GameID        *uint   `json:"game_id"`
	SteamAppID    int64   `json:"steam_appid,omitempty"`
	Slug          string  `json:"slug,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	CoverURL      string  `json:"cover_url,omitempty"`
	AppID         string  `json:"app_id,omitempty"`
	MoonlightName string  `json:"moonlight_name,omitempty"`
	SortOrder     int     `json:"sort_order,omitempty"`
	Installed     bool    `json:"installed"`
	Owned         bool    `json:"owned"`
}

// Params scope the view. Nil pointers mean "no viewer" and degrade the
// install/owned flags to defaults; absence of data is never an error.
type Params struct {
	UserID  *uint
	OrgID   *uint
	Date    string
	Enabled *bool // fallback-only filter, matches the original /apps?enabled=
	Limit   int
}

type Builder struct {
	apps    *appsrepo.Repo
	catalog *catrepo.Repo
	library *libraryrepo.Repo
}

func NewBuilder(apps *appsrepo.Repo, catalog *catrepo.Repo, library *libraryrepo.Repo) *Builder {
	return &Builder{apps: apps, catalog: catalog, library: library}
}

// Build merges the chart snapshot for p.Date (or the most recent one) with
// games, app shortcuts and the viewer's install/ownership state. With no
// chart rows at all it degrades to the raw app table.
func (b *Builder) Build(ctx context.Context, p Params) ([]*Entry, error) {
	date := p.Date
	if date == "" {
		latest, err := b.catalog.LatestChartDate(ctx)
		if err != nil {
			return nil, err
		}
		date = latest
	}

	var rows []*catrepo.ChartEntry
	if date != "" {
		var err error
		rows, err = b.catalog.ChartByDate(ctx, date)
		if err != nil {
			return nil, err
		}
	}
	if len(rows) == 0 {
		return b.buildFromApps(ctx, p)
	}

	gameIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		if row.GameID != nil {
			gameIDs = append(gameIDs, *row.GameID)
		}
	}
	games, err := b.catalog.GamesByID(ctx, gameIDs)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(games))
	for _, g := range games {
		slugs = append(slugs, g.Slug)
	}
	shortcuts, err := b.apps.BySlug(ctx, slugs)
	if err != nil {
		return nil, err
	}

	downloaded := map[uint]bool{}
	if p.OrgID != nil {
		if downloaded, err = b.catalog.DownloadedSet(ctx, *p.OrgID); err != nil {
			return nil, err
		}
	}
	owned := map[uint]bool{}
	if p.OrgID != nil && p.UserID != nil {
		if owned, err = b.library.OwnedSet(ctx, *p.OrgID, *p.UserID); err != nil {
			return nil, err
		}
	}

	out := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		rank := row.Rank
		e := &Entry{
			Rank:       &rank,
			SteamAppID: row.SteamAppID,
			Name:       row.Name,
		}
		if row.GameID != nil {
			if g, ok := games[*row.GameID]; ok {
				id := g.ID
				e.GameID = &id
				e.Slug = g.Slug
				e.Name = g.Name
				e.Description = g.Description
				e.Rating = g.Rating
				e.CoverURL = g.CoverURL
				e.Installed = downloaded[g.ID]
				e.Owned = owned[g.ID]
				if a, ok := shortcuts[g.Slug]; ok {
					e.AppID = a.ID
					e.MoonlightName = a.MoonlightName
					if a.Name != "" {
						e.Name = a.Name
					}
				}
			}
		}
		out = append(out, e)
	}
	return limit(out, p.Limit), nil
}

// buildFromApps is the degenerate catalog: the shortcut table itself, with
// installed = enabled unless the user overrode it.
func (b *Builder) buildFromApps(ctx context.Context, p Params) ([]*Entry, error) {
	shortcuts, err := b.apps.List(ctx, p.Enabled)
	if err != nil {
		return nil, err
	}
	overrides := map[string]bool{}
	if p.UserID != nil {
		if overrides, err = b.apps.Overrides(ctx, *p.UserID); err != nil {
			return nil, err
		}
	}
	out := make([]*Entry, 0, len(shortcuts))
	for _, a := range shortcuts {
		installed := a.Enabled
		if v, ok := overrides[a.ID]; ok {
			installed = v
		}
		out = append(out, &Entry{
			AppID:         a.ID,
			Name:          a.Name,
			MoonlightName: a.MoonlightName,
			SortOrder:     a.SortOrder,
			Installed:     installed,
		})
	}
	return limit(out, p.Limit), nil
}

func limit(arr []*Entry, n int) []*Entry {
	if n > 0 && len(arr) > n {
		return arr[:n]
	}
	return arr
}
