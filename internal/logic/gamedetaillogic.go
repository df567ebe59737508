package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GameDetailLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameDetailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameDetailLogic {
	return &GameDetailLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GameDetailLogic) GameDetail(req *types.GameDetailRequest) (*types.GameDetailResponse, error) {
	g, err := l.svcCtx.Catalog.GetGame(l.ctx, uint(req.ID))
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", req.ID, ErrNotFound)
	}
	externals, err := l.svcCtx.Catalog.ExternalIDs(l.ctx, g.ID)
	if err != nil {
		return nil, err
	}
	resp := &types.GameDetailResponse{
		ID:          g.ID,
		Slug:        g.Slug,
		Name:        g.Name,
		Description: g.Description,
		Rating:      g.Rating,
		CoverURL:    g.CoverURL,
		ExternalIDs: make([]types.GameExternalID, 0, len(externals)),
	}
	for _, e := range externals {
		resp.ExternalIDs = append(resp.ExternalIDs, types.GameExternalID{Platform: e.Platform, ExternalID: e.ExternalID})
	}
	return resp, nil
}
