package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UserExistsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserExistsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserExistsLogic {
	return &UserExistsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UserExistsLogic) UserExists(req *types.UserExistsRequest) (*types.UserExistsResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("username is required: %w", ErrInvalidInput)
	}
	exists, err := l.svcCtx.Users.DigestExists(l.ctx, l.svcCtx.Usernames.Digest(req.Username))
	if err != nil {
		return nil, err
	}
	return &types.UserExistsResponse{Exists: exists}, nil
}
