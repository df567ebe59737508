package logic

import (
	"context"

	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type OrgsListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOrgsListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OrgsListLogic {
	return &OrgsListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OrgsListLogic) OrgsList() (*types.OrgsListResponse, error) {
	arr, err := l.svcCtx.Orgs.List(l.ctx)
	if err != nil {
		return nil, err
	}
	resp := &types.OrgsListResponse{Orgs: make([]types.Organization, 0, len(arr))}
	for _, o := range arr {
		resp.Orgs = append(resp.Orgs, types.Organization{ID: o.ID, Slug: o.Slug, Name: o.Name})
	}
	return resp, nil
}
