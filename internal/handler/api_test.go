package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/couchlauncher/couchserver/internal/config"
	appsrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/apps"
	catrepo "github.com/couchlauncher/couchserver/internal/repo/gorm/catalog"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/glebarez/sqlite"
	"github.com/zeromicro/go-zero/rest/pathvar"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mustApp(id, name string, enabled bool, sortOrder int) *appsrepo.AppShortcut {
	return &appsrepo.AppShortcut{ID: id, Name: name, MoonlightName: name, Enabled: enabled, SortOrder: sortOrder}
}

func newTestCtx(t *testing.T) *svc.ServiceContext {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := svc.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	var c config.Config
	c.Version = "0.3.0"
	return svc.NewServiceContextWithDB(c, db)
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	r := httptest.NewRequest(method, target, &buf)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e types.ErrorResponse
	decodeBody(t, w, &e)
	if e.Detail == "" {
		t.Fatalf("expected a detail field in %q", w.Body.String())
	}
	return e.Detail
}

func register(t *testing.T, ctx *svc.ServiceContext, username, pass string) types.LoginResponse {
	t.Helper()
	w := httptest.NewRecorder()
	r := jsonRequest(t, http.MethodPost, "/users", map[string]string{"username": username, "password": pass})
	UserRegisterHandler(ctx)(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("register %q: expected 200, got %d: %s", username, w.Code, w.Body.String())
	}
	var resp types.LoginResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ctx := newTestCtx(t)

	created := register(t, ctx, "Alice", "hunter2")
	if created.UserID == 0 || created.Token == "" {
		t.Fatalf("expected user id and token, got %+v", created)
	}
	if created.Username != "Alice" {
		t.Fatalf("expected original casing echoed back, got %q", created.Username)
	}

	// Case and whitespace variants are the same account.
	w := httptest.NewRecorder()
	UserRegisterHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/users", map[string]string{"username": "alice", "password": "other"}))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", w.Code)
	}
	detailOf(t, w)

	w = httptest.NewRecorder()
	AuthLoginHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{"username": "ALICE ", "password": "hunter2"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 login, got %d: %s", w.Code, w.Body.String())
	}
	var login types.LoginResponse
	decodeBody(t, w, &login)
	if login.UserID != created.UserID {
		t.Fatalf("expected the same account, got %d and %d", created.UserID, login.UserID)
	}
	if login.Username != "Alice" {
		t.Fatalf("expected original casing on login, got %q", login.Username)
	}

	// Wrong password and unknown user must be indistinguishable.
	w1 := httptest.NewRecorder()
	AuthLoginHandler(ctx)(w1, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{"username": "alice", "password": "wrong"}))
	w2 := httptest.NewRecorder()
	AuthLoginHandler(ctx)(w2, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{"username": "nobody", "password": "wrong"}))
	if w1.Code != http.StatusUnauthorized || w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401s, got %d and %d", w1.Code, w2.Code)
	}
	if detailOf(t, w1) != detailOf(t, w2) {
		t.Fatal("expected identical error bodies for bad password and unknown user")
	}
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	ctx := newTestCtx(t)
	for _, body := range []map[string]string{
		{"username": "", "password": "x"},
		{"username": "  ", "password": "x"},
		{"username": "bob", "password": ""},
	} {
		w := httptest.NewRecorder()
		UserRegisterHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/users", body))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, w.Code)
		}
	}
}

func TestFirstUserOwnsDefaultOrg(t *testing.T) {
	ctx := newTestCtx(t)
	first := register(t, ctx, "alice", "pw")
	register(t, ctx, "bob", "pw")

	org, err := ctx.Orgs.GetBySlug(context.Background(), "default")
	if err != nil {
		t.Fatalf("expected default org: %v", err)
	}
	w := httptest.NewRecorder()
	r := jsonRequest(t, http.MethodGet, "/orgs/1/members", nil)
	OrgMembersHandler(ctx)(w, pathvar.WithVars(r, map[string]string{"id": fmt.Sprint(org.ID)}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp types.OrgMembersResponse
	decodeBody(t, w, &resp)
	if len(resp.Members) != 1 || resp.Members[0].UserID != first.UserID || resp.Members[0].Role != "owner" {
		t.Fatalf("expected only the first user as owner, got %+v", resp.Members)
	}
}

func TestSettingsFullReplace(t *testing.T) {
	ctx := newTestCtx(t)
	u := register(t, ctx, "alice", "pw")
	vars := map[string]string{"id": fmt.Sprint(u.UserID)}

	w := httptest.NewRecorder()
	UserSettingsGetHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodGet, "/users/1/settings", nil), vars))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp types.SettingsResponse
	decodeBody(t, w, &resp)
	if len(resp.Settings) != 0 {
		t.Fatalf("expected empty settings, got %+v", resp.Settings)
	}

	w = httptest.NewRecorder()
	body := map[string]interface{}{"settings": map[string]interface{}{"volume": 80, "theme": "dark"}}
	UserSettingsPutHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodPut, "/users/1/settings", body), vars))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	body = map[string]interface{}{"settings": map[string]interface{}{"theme": "light"}}
	UserSettingsPutHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodPut, "/users/1/settings", body), vars))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	UserSettingsGetHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodGet, "/users/1/settings", nil), vars))
	decodeBody(t, w, &resp)
	if len(resp.Settings) != 1 || resp.Settings["theme"] != "light" {
		t.Fatalf("expected a full replace, got %+v", resp.Settings)
	}

	w = httptest.NewRecorder()
	UserSettingsGetHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodGet, "/users/999/settings", nil), map[string]string{"id": "999"}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}

func TestAppsCRUD(t *testing.T) {
	ctx := newTestCtx(t)

	w := httptest.NewRecorder()
	AppCreateHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/apps", map[string]interface{}{
		"id": "retro", "name": "RetroArch", "moonlight_name": "RetroArch", "sort_order": 30,
	}))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var app types.App
	decodeBody(t, w, &app)
	if app.ID != "retro" || !app.Enabled {
		t.Fatalf("expected enabled default, got %+v", app)
	}

	w = httptest.NewRecorder()
	AppCreateHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/apps", map[string]interface{}{"id": "retro", "name": "Again"}))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate id, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r := jsonRequest(t, http.MethodPut, "/apps/retro", map[string]interface{}{"id": "retro", "name": "RetroArch Nightly", "enabled": false})
	AppUpdateHandler(ctx)(w, pathvar.WithVars(r, map[string]string{"id": "retro"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &app)
	if app.Name != "RetroArch Nightly" || app.Enabled {
		t.Fatalf("unexpected updated app %+v", app)
	}

	w = httptest.NewRecorder()
	r = jsonRequest(t, http.MethodPut, "/apps/ghost", map[string]interface{}{"id": "ghost", "name": "Ghost"})
	AppUpdateHandler(ctx)(w, pathvar.WithVars(r, map[string]string{"id": "ghost"}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown app, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	AppDeleteHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodDelete, "/apps/retro", nil), map[string]string{"id": "retro"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	AppDeleteHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodDelete, "/apps/retro", nil), map[string]string{"id": "retro"}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestMembershipGate(t *testing.T) {
	ctx := newTestCtx(t)
	owner := register(t, ctx, "alice", "pw")
	outsider := register(t, ctx, "bob", "pw")
	org, err := ctx.Orgs.GetBySlug(context.Background(), "default")
	if err != nil {
		t.Fatalf("expected default org: %v", err)
	}

	libraryReq := func(userID uint) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		target := fmt.Sprintf("/users/%d/library?org_id=%d", userID, org.ID)
		r := jsonRequest(t, http.MethodGet, target, nil)
		UserLibraryHandler(ctx)(w, pathvar.WithVars(r, map[string]string{"id": fmt.Sprint(userID)}))
		return w
	}

	if w := libraryReq(owner.UserID); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for member, got %d: %s", w.Code, w.Body.String())
	}
	if w := libraryReq(outsider.UserID); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-member, got %d", w.Code)
	}

	// Adding the outsider opens the gate.
	w := httptest.NewRecorder()
	r := jsonRequest(t, http.MethodPost, "/orgs/1/members", map[string]interface{}{"user_id": outsider.UserID})
	OrgMemberAddHandler(ctx)(w, pathvar.WithVars(r, map[string]string{"id": fmt.Sprint(org.ID)}))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := libraryReq(outsider.UserID); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after join, got %d", w.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := newTestCtx(t)
	u := register(t, ctx, "alice", "pw")
	org, err := ctx.Orgs.GetBySlug(context.Background(), "default")
	if err != nil {
		t.Fatalf("expected default org: %v", err)
	}
	game := &catrepo.Game{Slug: "portal", Name: "Portal"}
	if err := ctx.Catalog.CreateGame(context.Background(), game); err != nil {
		t.Fatalf("create game: %v", err)
	}

	createBody := map[string]interface{}{"org_id": org.ID, "user_id": u.UserID, "game_id": game.ID}

	// Not downloaded yet.
	w := httptest.NewRecorder()
	SessionCreateHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/sessions", createBody))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 before download, got %d: %s", w.Code, w.Body.String())
	}

	if err := ctx.Catalog.AddDownload(context.Background(), org.ID, game.ID); err != nil {
		t.Fatalf("add download: %v", err)
	}
	w = httptest.NewRecorder()
	SessionCreateHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/sessions", createBody))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var sess types.SessionResponse
	decodeBody(t, w, &sess)
	if sess.Status != "provisioning" {
		t.Fatalf("expected provisioning status, got %q", sess.Status)
	}
	if !strings.HasPrefix(sess.StreamURL, "moonlight://stream/") {
		t.Fatalf("unexpected stream url %q", sess.StreamURL)
	}

	w = httptest.NewRecorder()
	SessionGetHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodGet, "/sessions/"+sess.ID, nil), map[string]string{"id": sess.ID}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	terminate := func() types.SessionResponse {
		w := httptest.NewRecorder()
		r := jsonRequest(t, http.MethodDelete, "/sessions/"+sess.ID, nil)
		SessionTerminateHandler(ctx)(w, pathvar.WithVars(r, map[string]string{"id": sess.ID}))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 terminate, got %d: %s", w.Code, w.Body.String())
		}
		var out types.SessionResponse
		decodeBody(t, w, &out)
		return out
	}
	if got := terminate(); got.Status != "terminated" {
		t.Fatalf("expected terminated, got %q", got.Status)
	}
	if got := terminate(); got.Status != "terminated" {
		t.Fatalf("expected terminate to be idempotent, got %q", got.Status)
	}

	w = httptest.NewRecorder()
	SessionGetHandler(ctx)(w, pathvar.WithVars(jsonRequest(t, http.MethodGet, "/sessions/ghost", nil), map[string]string{"id": "ghost"}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", w.Code)
	}
}

func TestOwnershipFlow(t *testing.T) {
	ctx := newTestCtx(t)
	u := register(t, ctx, "alice", "pw")
	org, err := ctx.Orgs.GetBySlug(context.Background(), "default")
	if err != nil {
		t.Fatalf("expected default org: %v", err)
	}
	game := &catrepo.Game{Slug: "hades", Name: "Hades"}
	if err := ctx.Catalog.CreateGame(context.Background(), game); err != nil {
		t.Fatalf("create game: %v", err)
	}
	if err := ctx.Catalog.AddDownload(context.Background(), org.ID, game.ID); err != nil {
		t.Fatalf("add download: %v", err)
	}

	w := httptest.NewRecorder()
	SteamLinkHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/auth/link/steam", map[string]interface{}{
		"org_id": org.ID, "user_id": u.UserID, "display_name": "alice",
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 link, got %d: %s", w.Code, w.Body.String())
	}
	var link types.SteamLinkResponse
	decodeBody(t, w, &link)
	if !link.Linked || link.Platform != "steam" || link.ExternalID == "" {
		t.Fatalf("unexpected link response %+v", link)
	}

	// Verify without explicit ids falls back to the downloaded set.
	verify := func() types.UserLibraryResponse {
		w := httptest.NewRecorder()
		OwnershipVerifyHandler(ctx)(w, jsonRequest(t, http.MethodPost, "/ownership/verify/steam", map[string]interface{}{
			"org_id": org.ID, "user_id": u.UserID,
		}))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 verify, got %d: %s", w.Code, w.Body.String())
		}
		var out types.UserLibraryResponse
		decodeBody(t, w, &out)
		return out
	}
	lib := verify()
	if len(lib.Library) != 1 || lib.Library[0].GameID != game.ID {
		t.Fatalf("expected one verified game, got %+v", lib.Library)
	}
	if lib.Library[0].ProofType != "simulated" || lib.Library[0].OwnershipSource != "steam" {
		t.Fatalf("unexpected proof %+v", lib.Library[0])
	}

	// A second verification refreshes the proof instead of duplicating rows.
	first := lib.Library[0].ProofValue
	lib = verify()
	if len(lib.Library) != 1 {
		t.Fatalf("expected idempotent verify, got %d rows", len(lib.Library))
	}
	if lib.Library[0].ProofValue == first {
		t.Fatal("expected a refreshed proof value")
	}
}

func TestHealthAndVersion(t *testing.T) {
	ctx := newTestCtx(t)

	w := httptest.NewRecorder()
	HealthHandler(ctx)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var h types.HealthResponse
	decodeBody(t, w, &h)
	if !h.Ok {
		t.Fatal("expected ok health")
	}

	w = httptest.NewRecorder()
	VersionHandler(ctx)(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	var v types.VersionResponse
	decodeBody(t, w, &v)
	if v.Server != "0.3.0" {
		t.Fatalf("expected configured version, got %q", v.Server)
	}
}

func TestCatalogEndpointFallsBackToApps(t *testing.T) {
	ctx := newTestCtx(t)
	if err := ctx.Apps.Create(context.Background(), mustApp("steam", "Steam Big Picture", true, 10)); err != nil {
		t.Fatalf("create app: %v", err)
	}
	if err := ctx.Apps.Create(context.Background(), mustApp("retro", "RetroArch", false, 20)); err != nil {
		t.Fatalf("create app: %v", err)
	}

	w := httptest.NewRecorder()
	AppsListHandler(ctx)(w, jsonRequest(t, http.MethodGet, "/apps?enabled=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp types.AppsListResponse
	decodeBody(t, w, &resp)
	if len(resp.Apps) != 1 || resp.Apps[0].AppID != "steam" {
		t.Fatalf("expected the enabled filter to apply, got %+v", resp.Apps)
	}
}
