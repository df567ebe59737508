package handler

import (
	"net/http"

	"github.com/couchlauncher/couchserver/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/version",
				Handler: VersionHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/apps",
				Handler: AppsListHandler(serverCtx),
			},
			{
				// Legacy launcher clients still fetch the catalog here.
				Method:  http.MethodGet,
				Path:    "/repo/default",
				Handler: AppsListHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/apps",
				Handler: AppCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/apps/:id",
				Handler: AppUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/apps/:id",
				Handler: AppDeleteHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/warm/:app_id",
				Handler: WarmHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/charts/top10",
				Handler: ChartsTopHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/games/:id",
				Handler: GameDetailHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/users/exists",
				Handler: UserExistsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/users",
				Handler: UserRegisterHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/login",
				Handler: AuthLoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/users/:id/settings",
				Handler: UserSettingsGetHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/users/:id/settings",
				Handler: UserSettingsPutHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/users/:id/apps",
				Handler: UserAppsListHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/users/:id/apps/:app_id",
				Handler: UserAppPutHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/users/:id/library",
				Handler: UserLibraryHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/orgs",
				Handler: OrgsListHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/orgs",
				Handler: OrgCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/orgs/:id/members",
				Handler: OrgMembersHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/orgs/:id/members",
				Handler: OrgMemberAddHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/auth/link/steam",
				Handler: SteamLinkHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/ownership/verify/steam",
				Handler: OwnershipVerifyHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/sessions",
				Handler: SessionCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/sessions/:id",
				Handler: SessionGetHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/sessions/:id",
				Handler: SessionTerminateHandler(serverCtx),
			},
		},
	)
}
