package logic

import (
	"context"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type WarmLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWarmLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WarmLogic {
	return &WarmLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Warm acknowledges a cache-warm request. The host-side cache build is not
// implemented; the launcher only needs the accepted receipt.
func (l *WarmLogic) Warm(req *types.WarmRequest) (*types.WarmResponse, error) {
	l.Infof("warm queued for app %s", req.AppID)
	return &types.WarmResponse{Queued: req.AppID}, nil
}
