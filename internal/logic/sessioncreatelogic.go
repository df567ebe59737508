package logic

import (
	"context"
	"fmt"

	sessionsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/sessions"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

type SessionCreateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSessionCreateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SessionCreateLogic {
	return &SessionCreateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SessionCreate provisions a stream session record. No machine is actually
// started; the session stays in provisioning until terminated.
func (l *SessionCreateLogic) SessionCreate(req *types.SessionCreateRequest) (*types.SessionResponse, error) {
	orgID, userID, gameID := uint(req.OrgID), uint(req.UserID), uint(req.GameID)
	if err := requireMembership(l.ctx, l.svcCtx, orgID, userID); err != nil {
		return nil, err
	}
	if _, err := l.svcCtx.Catalog.GetGame(l.ctx, gameID); err != nil {
		return nil, fmt.Errorf("game %d: %w", req.GameID, ErrNotFound)
	}
	ok, err := l.svcCtx.Catalog.HasDownload(l.ctx, orgID, gameID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("game %d is not downloaded for organization %d: %w", req.GameID, req.OrgID, ErrConflict)
	}
	id := uuid.NewString()
	s := &sessionsrepo.StreamSession{
		ID:        id,
		OrgID:     orgID,
		UserID:    userID,
		GameID:    gameID,
		Status:    sessionsrepo.StatusProvisioning,
		StreamURL: "moonlight://stream/" + id,
	}
	if err := l.svcCtx.Sessions.Create(l.ctx, s); err != nil {
		return nil, err
	}
	l.Infof("session %s provisioning for org=%d user=%d game=%d", s.ID, orgID, userID, gameID)
	return toSessionResponse(s), nil
}

func toSessionResponse(s *sessionsrepo.StreamSession) *types.SessionResponse {
	return &types.SessionResponse{
		ID:        s.ID,
		OrgID:     s.OrgID,
		UserID:    s.UserID,
		GameID:    s.GameID,
		Status:    s.Status,
		StreamURL: s.StreamURL,
		CreatedAt: s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
