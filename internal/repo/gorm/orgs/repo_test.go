package orgs

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(db)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Create(ctx, &Organization{Slug: "home", Name: "Home"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, &Organization{Slug: "home", Name: "Again"}); err != ErrDuplicateSlug {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestEnsureDefaultIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("EnsureDefault: %v", err)
	}
	second, err := r.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("EnsureDefault: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected one default org, got %d and %d", first.ID, second.ID)
	}
	orgs, err := r.List(ctx)
	if err != nil || len(orgs) != 1 {
		t.Fatalf("expected a single org, got %d %v", len(orgs), err)
	}
}

func TestAddMemberUpsertsRole(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	o, err := r.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("EnsureDefault: %v", err)
	}
	if err := r.AddMember(ctx, o.ID, 7, RoleMember); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if err := r.AddMember(ctx, o.ID, 7, RoleOwner); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	members, err := r.Members(ctx, o.ID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 1 || members[0].Role != RoleOwner {
		t.Fatalf("expected one membership with the updated role, got %+v", members)
	}

	ok, err := r.IsMember(ctx, o.ID, 7)
	if err != nil || !ok {
		t.Fatalf("expected membership, got %v %v", ok, err)
	}
	ok, err = r.IsMember(ctx, o.ID, 8)
	if err != nil || ok {
		t.Fatalf("expected no membership for user 8, got %v %v", ok, err)
	}
}
