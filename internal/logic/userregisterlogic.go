package logic

import (
	"context"
	"fmt"
	"strings"

	orgsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/orgs"
	usersrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/users"
	"github.com/couchlauncher/couchserver/internal/security/password"
	catalogsvc "github.com/couchlauncher/couchserver/internal/service/catalog"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UserRegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserRegisterLogic {
	return &UserRegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UserRegister creates the account and logs it straight in. The first user
// becomes owner of the default organization.
func (l *UserRegisterLogic) UserRegister(req *types.RegisterRequest) (*types.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	plain := strings.TrimSpace(req.Password)
	if username == "" || plain == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidInput)
	}

	digest := l.svcCtx.Usernames.Digest(username)
	exists, err := l.svcCtx.Users.DigestExists(l.ctx, digest)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("username already registered: %w", ErrConflict)
	}

	existing, err := l.svcCtx.Users.Count(l.ctx)
	if err != nil {
		return nil, err
	}

	hash, salt, iterations, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	cipher, err := l.svcCtx.Usernames.Seal(username)
	if err != nil {
		return nil, err
	}
	u := &usersrepo.UserAccount{
		UsernameDigest:     digest,
		UsernameCipher:     cipher,
		PasswordHash:       hash,
		PasswordSalt:       salt,
		PasswordIterations: iterations,
	}
	if err := l.svcCtx.Users.Create(l.ctx, u); err != nil {
		return nil, err
	}

	if existing == 0 {
		org, err := l.svcCtx.Orgs.EnsureDefault(l.ctx)
		if err != nil {
			return nil, err
		}
		if err := l.svcCtx.Orgs.AddMember(l.ctx, org.ID, u.ID, orgsrepo.RoleOwner); err != nil {
			return nil, err
		}
	}

	tok, err := l.svcCtx.Tokens.Issue(u.ID, username, l.svcCtx.Config.Version)
	if err != nil {
		return nil, err
	}
	entries, err := l.svcCtx.Builder.Build(l.ctx, catalogsvc.Params{UserID: &u.ID})
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		UserID:   u.ID,
		Username: username,
		Token:    tok,
		Apps:     toCatalogEntries(entries),
	}, nil
}
