package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type OrgMembersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOrgMembersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OrgMembersLogic {
	return &OrgMembersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OrgMembersLogic) OrgMembers(req *types.OrgMembersRequest) (*types.OrgMembersResponse, error) {
	orgID := uint(req.OrgID)
	if _, err := l.svcCtx.Orgs.Get(l.ctx, orgID); err != nil {
		return nil, fmt.Errorf("organization %d: %w", req.OrgID, ErrNotFound)
	}
	members, err := l.svcCtx.Orgs.Members(l.ctx, orgID)
	if err != nil {
		return nil, err
	}
	resp := &types.OrgMembersResponse{Members: make([]types.Member, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, types.Member{UserID: m.UserID, Role: m.Role})
	}
	return resp, nil
}
