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
)

type AppCreateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAppCreateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AppCreateLogic {
	return &AppCreateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AppCreateLogic) AppCreate(req *types.AppCreateRequest) (*types.App, error) {
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("id and name are required: %w", ErrInvalidInput)
	}
	a := &appsrepo.AppShortcut{
		ID:            id,
		Name:          name,
		MoonlightName: req.MoonlightName,
		Enabled:       req.Enabled,
		SortOrder:     req.SortOrder,
	}
	if err := l.svcCtx.Apps.Create(l.ctx, a); err != nil {
		if errors.Is(err, appsrepo.ErrDuplicateID) {
			return nil, fmt.Errorf("id already exists: %w", ErrConflict)
		}
		return nil, err
	}
	return &types.App{ID: a.ID, Name: a.Name, MoonlightName: a.MoonlightName, Enabled: a.Enabled, SortOrder: a.SortOrder}, nil
}
