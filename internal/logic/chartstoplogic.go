package logic

import (
	"context"

	catalogsvc "github.com/couchlauncher/couchserver/internal/service/catalog"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const chartsTopLimit = 10

type ChartsTopLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChartsTopLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChartsTopLogic {
	return &ChartsTopLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChartsTopLogic) ChartsTop(req *types.ChartsTopRequest) (*types.ChartsTopResponse, error) {
	entries, err := l.svcCtx.Builder.Build(l.ctx, catalogsvc.Params{
		UserID: optionalUint(req.UserID),
		OrgID:  optionalUint(req.OrgID),
		Date:   req.Date,
		Limit:  chartsTopLimit,
	})
	if err != nil {
		return nil, err
	}
	return &types.ChartsTopResponse{Entries: toCatalogEntries(entries)}, nil
}
