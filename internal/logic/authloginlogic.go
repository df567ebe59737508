package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/couchlauncher/couchserver/internal/security/password"
	catalogsvc "github.com/couchlauncher/couchserver/internal/service/catalog"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type AuthLoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAuthLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthLoginLogic {
	return &AuthLoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AuthLogin returns the same ErrUnauthorized for an unknown username and a
// wrong password so the response never leaks which one failed.
func (l *AuthLoginLogic) AuthLogin(req *types.LoginRequest) (*types.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	plain := strings.TrimSpace(req.Password)
	if username == "" || plain == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidInput)
	}

	u, err := l.svcCtx.Users.GetByDigest(l.ctx, l.svcCtx.Usernames.Digest(username))
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !password.Verify(u.PasswordHash, u.PasswordSalt, u.PasswordIterations, plain) {
		return nil, ErrUnauthorized
	}

	// Echo the username as registered, not as typed.
	original, err := l.svcCtx.Usernames.Open(u.UsernameCipher)
	if err != nil {
		return nil, err
	}
	tok, err := l.svcCtx.Tokens.Issue(u.ID, original, l.svcCtx.Config.Version)
	if err != nil {
		return nil, err
	}
	entries, err := l.svcCtx.Builder.Build(l.ctx, catalogsvc.Params{UserID: &u.ID})
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		UserID:   u.ID,
		Username: original,
		Token:    tok,
		Apps:     toCatalogEntries(entries),
	}, nil
}
