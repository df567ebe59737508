package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/apps"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type AppUpdateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAppUpdateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AppUpdateLogic {
	return &AppUpdateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AppUpdateLogic) AppUpdate(req *types.AppUpdateRequest) (*types.App, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	a := &appsrepo.AppShortcut{
		ID:            req.ID,
		Name:          name,
		MoonlightName: req.MoonlightName,
		Enabled:       req.Enabled,
		SortOrder:     req.SortOrder,
	}
	if err := l.svcCtx.Apps.Update(l.ctx, a); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("app %s: %w", req.ID, ErrNotFound)
		}
		return nil, err
	}
	return &types.App{ID: a.ID, Name: a.Name, MoonlightName: a.MoonlightName, Enabled: a.Enabled, SortOrder: a.SortOrder}, nil
}
