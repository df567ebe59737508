package logic

import (
	"context"

	libraryrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/library"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UserLibraryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserLibraryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserLibraryLogic {
	return &UserLibraryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UserLibraryLogic) UserLibrary(req *types.UserLibraryRequest) (*types.UserLibraryResponse, error) {
	orgID, userID := uint(req.OrgID), uint(req.UserID)
	if err := requireMembership(l.ctx, l.svcCtx, orgID, userID); err != nil {
		return nil, err
	}
	entries, err := l.svcCtx.Library.List(l.ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	return &types.UserLibraryResponse{Library: toLibraryEntries(entries)}, nil
}

func toLibraryEntries(entries []*libraryrepo.LibraryEntry) []types.LibraryEntry {
	out := make([]types.LibraryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.LibraryEntry{
			OrgID:           e.OrgID,
			UserID:          e.UserID,
			GameID:          e.GameID,
			OwnershipSource: e.OwnershipSource,
			ProofType:       e.ProofType,
			ProofValue:      e.ProofValue,
			VerifiedAt:      e.VerifiedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}
