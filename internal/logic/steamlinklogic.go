package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	libraryrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/library"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/datatypes"
)

const platformSteam = "steam"

type SteamLinkLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSteamLinkLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SteamLinkLogic {
	return &SteamLinkLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SteamLink records a Steam account link for the member. There is no real
// OpenID round trip; a missing external id gets a synthetic one so the rest
// of the ownership flow behaves the same either way.
func (l *SteamLinkLogic) SteamLink(req *types.SteamLinkRequest) (*types.SteamLinkResponse, error) {
	orgID, userID := uint(req.OrgID), uint(req.UserID)
	if err := requireMembership(l.ctx, l.svcCtx, orgID, userID); err != nil {
		return nil, err
	}
	externalID := req.ExternalID
	if externalID == "" {
		externalID = fmt.Sprintf("steam-sim-%d", userID)
	}
	meta, err := json.Marshal(map[string]string{
		"display_name": req.DisplayName,
		"linked_at":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	link := &libraryrepo.ExternalAccountLink{
		OrgID:      orgID,
		UserID:     userID,
		Platform:   platformSteam,
		ExternalID: externalID,
		Metadata:   datatypes.JSON(meta),
	}
	if err := l.svcCtx.Library.UpsertLink(l.ctx, link); err != nil {
		return nil, err
	}
	return &types.SteamLinkResponse{Linked: true, Platform: platformSteam, ExternalID: link.ExternalID}, nil
}
