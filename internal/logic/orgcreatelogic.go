package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orgsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/orgs"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type OrgCreateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOrgCreateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OrgCreateLogic {
	return &OrgCreateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OrgCreateLogic) OrgCreate(req *types.OrgCreateRequest) (*types.Organization, error) {
	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	name := strings.TrimSpace(req.Name)
	if slug == "" {
		return nil, fmt.Errorf("slug is required: %w", ErrInvalidInput)
	}
	if name == "" {
		name = slug
	}
	o := &orgsrepo.Organization{Slug: slug, Name: name}
	if err := l.svcCtx.Orgs.Create(l.ctx, o); err != nil {
		if errors.Is(err, orgsrepo.ErrDuplicateSlug) {
			return nil, fmt.Errorf("organization %q: %w", slug, ErrConflict)
		}
		return nil, err
	}
	return &types.Organization{ID: o.ID, Slug: o.Slug, Name: o.Name}, nil
}
