package logic

import (
	"context"
	"fmt"

	orgsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/orgs"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type OrgMemberAddLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOrgMemberAddLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OrgMemberAddLogic {
	return &OrgMemberAddLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OrgMemberAddLogic) OrgMemberAdd(req *types.OrgMemberAddRequest) (*types.Member, error) {
	orgID, userID := uint(req.OrgID), uint(req.UserID)
	if _, err := l.svcCtx.Orgs.Get(l.ctx, orgID); err != nil {
		return nil, fmt.Errorf("organization %d: %w", req.OrgID, ErrNotFound)
	}
	if _, err := l.svcCtx.Users.GetByID(l.ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
	}
	role := req.Role
	if role != orgsrepo.RoleOwner && role != orgsrepo.RoleMember {
		return nil, fmt.Errorf("role %q: %w", role, ErrInvalidInput)
	}
	if err := l.svcCtx.Orgs.AddMember(l.ctx, orgID, userID, role); err != nil {
		return nil, err
	}
	return &types.Member{UserID: userID, Role: role}, nil
}
