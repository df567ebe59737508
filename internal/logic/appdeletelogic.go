package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type AppDeleteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAppDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AppDeleteLogic {
	return &AppDeleteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AppDeleteLogic) AppDelete(req *types.AppDeleteRequest) (*types.AppDeleteResponse, error) {
	if err := l.svcCtx.Apps.Delete(l.ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("app %s: %w", req.ID, ErrNotFound)
		}
		return nil, err
	}
	return &types.AppDeleteResponse{Deleted: req.ID}, nil
}
