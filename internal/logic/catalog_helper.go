package logic

import (
	"strconv"

	catalogsvc "github.com/couchlauncher/couchserver/internal/service/catalog"
	"github.com/couchlauncher/couchserver/internal/types"
)

func toCatalogEntries(entries []*catalogsvc.Entry) []types.CatalogEntry {
	out := make([]types.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.CatalogEntry{
			Rank:          e.Rank,
			GameID:        e.GameID,
			SteamAppID:    e.SteamAppID,
			Slug:          e.Slug,
			Name:          e.Name,
			Description:   e.Description,
			Rating:        e.Rating,
			CoverURL:      e.CoverURL,
			AppID:         e.AppID,
			MoonlightName: e.MoonlightName,
			SortOrder:     e.SortOrder,
			Installed:     e.Installed,
			Owned:         e.Owned,
		})
	}
	return out
}

// parseOptionalBool keeps the original query semantics: absent means no
// filter, anything else is parsed loosely ("1"/"true"/"false"/"0").
func parseOptionalBool(s string) *bool {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

func optionalUint(v uint64) *uint {
	if v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}
