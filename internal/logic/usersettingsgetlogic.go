package logic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UserSettingsGetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserSettingsGetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserSettingsGetLogic {
	return &UserSettingsGetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UserSettingsGetLogic) UserSettingsGet(req *types.SettingsGetRequest) (*types.SettingsResponse, error) {
	userID := uint(req.UserID)
	if _, err := l.svcCtx.Users.GetByID(l.ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
	}
	s, err := l.svcCtx.Users.GetSettings(l.ctx, userID)
	if err != nil {
		return nil, err
	}
	blob := map[string]interface{}{}
	if len(s.Data) > 0 {
		if err := json.Unmarshal(s.Data, &blob); err != nil {
			return nil, err
		}
	}
	return &types.SettingsResponse{UserID: userID, Settings: blob}, nil
}
