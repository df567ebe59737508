package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SessionGetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSessionGetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SessionGetLogic {
	return &SessionGetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SessionGetLogic) SessionGet(req *types.SessionGetRequest) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Get(l.ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", req.ID, ErrNotFound)
	}
	return toSessionResponse(s), nil
}
