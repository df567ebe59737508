package svc

import (
	"context"
	"os"
	"time"

	"github.com/couchlauncher/couchserver/internal/config"
	"github.com/couchlauncher/couchserver/internal/db"
	appsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/apps"
	catrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/catalog"
	libraryrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/library"
	orgsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/orgs"
	sessionsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/sessions"
	usersrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/users"
	"github.com/couchlauncher/couchserver/internal/security/token"
	"github.com/couchlauncher/couchserver/internal/security/usercrypt"
	catalogsvc "github.com/couchlauncher/couchserver/internal/service/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// SecretEnv overrides the configured cipher/token secret.
const SecretEnv = "COUCHSERVER_SECRET"

type ServiceContext struct {
	Config    config.Config
	DB        *gorm.DB
	Apps      *appsrepo.Repo
	Users     *usersrepo.Repo
	Orgs      *orgsrepo.Repo
	Catalog   *catrepo.Repo
	Library   *libraryrepo.Repo
	Sessions  *sessionsrepo.Repo
	Builder   *catalogsvc.Builder
	Tokens    *token.Manager
	Usernames *usercrypt.Codec
	StartedAt time.Time
}

func NewServiceContext(c config.Config) *ServiceContext {
	gdb, err := db.Open(c.Store.DataSource)
	logx.Must(err)
	logx.Must(Migrate(gdb))
	ctx := NewServiceContextWithDB(c, gdb)
	_, err = ctx.Orgs.EnsureDefault(context.Background())
	logx.Must(err)
	logx.Must(ctx.seedApps(context.Background()))
	return ctx
}

// NewServiceContextWithDB wires repos over an already-open database. Used by
// tests with an in-memory store; performs no seeding.
func NewServiceContextWithDB(c config.Config, gdb *gorm.DB) *ServiceContext {
	secret := resolveSecret(c)
	apps := appsrepo.NewRepo(gdb)
	cat := catrepo.NewRepo(gdb)
	lib := libraryrepo.NewRepo(gdb)
	return &ServiceContext{
		Config:    c,
		DB:        gdb,
		Apps:      apps,
		Users:     usersrepo.New(gdb),
		Orgs:      orgsrepo.NewRepo(gdb),
		Catalog:   cat,
		Library:   lib,
		Sessions:  sessionsrepo.NewRepo(gdb),
		Builder:   catalogsvc.NewBuilder(apps, cat, lib),
		Tokens:    token.NewManager(secret),
		Usernames: usercrypt.New(secret),
		StartedAt: time.Now(),
	}
}

// Migrate creates the schema when absent, the counterpart of the original
// seed-script bootstrap.
func Migrate(gdb *gorm.DB) error {
	for _, fn := range []func(*gorm.DB) error{
		appsrepo.AutoMigrate,
		usersrepo.AutoMigrate,
		orgsrepo.AutoMigrate,
		catrepo.AutoMigrate,
		libraryrepo.AutoMigrate,
		sessionsrepo.AutoMigrate,
	} {
		if err := fn(gdb); err != nil {
			return err
		}
	}
	return nil
}

func resolveSecret(c config.Config) string {
	if s := os.Getenv(SecretEnv); s != "" {
		return s
	}
	if c.Auth.Secret != "" {
		return c.Auth.Secret
	}
	return "couch-dev-secret"
}

// seedApps fills the shortcut table with the launcher defaults on first run.
func (s *ServiceContext) seedApps(ctx context.Context) error {
	n, err := s.Apps.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	defaults := []*appsrepo.AppShortcut{
		{ID: "steam", Name: "Steam Big Picture", MoonlightName: "Steam Big Picture", Enabled: true, SortOrder: 10},
		{ID: "desktop", Name: "Desktop", MoonlightName: "Desktop", Enabled: true, SortOrder: 20},
	}
	for _, a := range defaults {
		if err := s.Apps.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
