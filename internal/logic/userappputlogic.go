package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UserAppPutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserAppPutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserAppPutLogic {
	return &UserAppPutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UserAppPutLogic) UserAppPut(req *types.UserAppPutRequest) (*types.UserApp, error) {
	userID := uint(req.UserID)
	if _, err := l.svcCtx.Users.GetByID(l.ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
	}
	a, err := l.svcCtx.Apps.Get(l.ctx, req.AppID)
	if err != nil {
		return nil, fmt.Errorf("app %s: %w", req.AppID, ErrNotFound)
	}
	if err := l.svcCtx.Apps.UpsertOverride(l.ctx, userID, a.ID, req.Installed); err != nil {
		return nil, err
	}
	return &types.UserApp{
		ID:            a.ID,
		Name:          a.Name,
		MoonlightName: a.MoonlightName,
		Enabled:       a.Enabled,
		SortOrder:     a.SortOrder,
		Installed:     req.Installed,
	}, nil
}
