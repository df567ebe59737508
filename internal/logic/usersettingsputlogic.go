package logic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/datatypes"
)

type UserSettingsPutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserSettingsPutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserSettingsPutLogic {
	return &UserSettingsPutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UserSettingsPut replaces the stored blob wholesale; it never merges.
func (l *UserSettingsPutLogic) UserSettingsPut(req *types.SettingsPutRequest) (*types.SettingsResponse, error) {
	userID := uint(req.UserID)
	if _, err := l.svcCtx.Users.GetByID(l.ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
	}
	blob := req.Settings
	if blob == nil {
		blob = map[string]interface{}{}
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return nil, err
	}
	if _, err := l.svcCtx.Users.PutSettings(l.ctx, userID, datatypes.JSON(raw)); err != nil {
		return nil, err
	}
	return &types.SettingsResponse{UserID: userID, Settings: blob}, nil
}
