package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SessionTerminateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSessionTerminateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SessionTerminateLogic {
	return &SessionTerminateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SessionTerminate is idempotent: terminating a terminated session returns
// the same row.
func (l *SessionTerminateLogic) SessionTerminate(req *types.SessionGetRequest) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Terminate(l.ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", req.ID, ErrNotFound)
	}
	return toSessionResponse(s), nil
}
