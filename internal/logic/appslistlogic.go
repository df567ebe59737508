package logic

import (
	"context"

	catalogsvc "github.com/couchlauncher/couchserver/internal/service/catalog"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type AppsListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAppsListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AppsListLogic {
	return &AppsListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AppsListLogic) AppsList(req *types.AppsListRequest) (*types.AppsListResponse, error) {
	entries, err := l.svcCtx.Builder.Build(l.ctx, catalogsvc.Params{
		UserID:  optionalUint(req.UserID),
		OrgID:   optionalUint(req.OrgID),
		Date:    req.ChartDate,
		Enabled: parseOptionalBool(req.Enabled),
	})
	if err != nil {
		return nil, err
	}
	return &types.AppsListResponse{Apps: toCatalogEntries(entries)}, nil
}
