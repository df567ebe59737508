package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UserAppsListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserAppsListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserAppsListLogic {
	return &UserAppsListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UserAppsList is the app table through a user's eyes: installed follows
// enabled unless the user overrode it.
func (l *UserAppsListLogic) UserAppsList(req *types.UserAppsRequest) (*types.UserAppsResponse, error) {
	userID := uint(req.UserID)
	if _, err := l.svcCtx.Users.GetByID(l.ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
	}
	shortcuts, err := l.svcCtx.Apps.List(l.ctx, nil)
	if err != nil {
		return nil, err
	}
	overrides, err := l.svcCtx.Apps.Overrides(l.ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &types.UserAppsResponse{Apps: make([]types.UserApp, 0, len(shortcuts))}
	for _, a := range shortcuts {
		installed := a.Enabled
		if v, ok := overrides[a.ID]; ok {
			installed = v
		}
		resp.Apps = append(resp.Apps, types.UserApp{
			ID:            a.ID,
			Name:          a.Name,
			MoonlightName: a.MoonlightName,
			Enabled:       a.Enabled,
			SortOrder:     a.SortOrder,
			Installed:     installed,
		})
	}
	return resp, nil
}
