package types

type (
	ErrorResponse struct {
		Detail string `json:"detail"`
	}

	HealthResponse struct {
		Ok bool `json:"ok"`
	}

	VersionResponse struct {
		Server string `json:"server"`
	}

	// CatalogEntry is one merged row of the launcher catalog. Chart-backed
	// rows carry Rank; fallback rows carry AppID/SortOrder instead.
	CatalogEntry struct {
		Rank          *int    `json:"rank"`
		GameID        *uint   `json:"game_id"`
		SteamAppID    int64   `json:"steam_appid,omitempty"`
		Slug          string  `json:"slug,omitempty"`
		Name          string  `json:"name"`
		Description   string  `json:"description,omitempty"`
		Rating        float64 `json:"rating,omitempty"`
		CoverURL      string  `json:"cover_url,omitempty"`
		AppID         string  `json:"app_id,omitempty"`
		MoonlightName string  `json:"moonlight_name,omitempty"`
		SortOrder     int     `json:"sort_order,omitempty"`
		Installed     bool    `json:"installed"`
		Owned         bool    `json:"owned"`
	}

	AppsListRequest struct {
		Enabled   string `form:"enabled,optional"`
		ChartDate string `form:"chart_date,optional"`
		UserID    uint64 `form:"user_id,optional"`
		OrgID     uint64 `form:"org_id,optional"`
	}

	AppsListResponse struct {
		Apps []CatalogEntry `json:"apps"`
	}

	App struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		MoonlightName string `json:"moonlight_name"`
		Enabled       bool   `json:"enabled"`
		SortOrder     int    `json:"sort_order"`
	}

	AppCreateRequest struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		MoonlightName string `json:"moonlight_name,optional"`
		Enabled       bool   `json:"enabled,default=true"`
		SortOrder     int    `json:"sort_order,default=100"`
	}

	AppUpdateRequest struct {
		ID            string `path:"id"`
		Name          string `json:"name"`
		MoonlightName string `json:"moonlight_name,optional"`
		Enabled       bool   `json:"enabled,default=true"`
		SortOrder     int    `json:"sort_order,default=100"`
	}

	AppDeleteRequest struct {
		ID string `path:"id"`
	}

	AppDeleteResponse struct {
		Deleted string `json:"deleted"`
	}

	WarmRequest struct {
		AppID string `path:"app_id"`
	}

	WarmResponse struct {
		Queued string `json:"queued"`
	}

	ChartsTopRequest struct {
		Date   string `form:"date,optional"`
		OrgID  uint64 `form:"org_id,optional"`
		UserID uint64 `form:"user_id,optional"`
	}

	ChartsTopResponse struct {
		Entries []CatalogEntry `json:"entries"`
	}

	GameDetailRequest struct {
		ID uint64 `path:"id"`
	}

	GameExternalID struct {
		Platform   string `json:"platform"`
		ExternalID string `json:"external_id"`
	}

	GameDetailResponse struct {
		ID          uint             `json:"id"`
		Slug        string           `json:"slug"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Rating      float64          `json:"rating"`
		CoverURL    string           `json:"cover_url"`
		ExternalIDs []GameExternalID `json:"external_ids"`
	}

	UserExistsRequest struct {
		Username string `form:"username"`
	}

	UserExistsResponse struct {
		Exists bool `json:"exists"`
	}

	RegisterRequest struct {
		Username string `json:"username,optional"`
		Password string `json:"password,optional"`
	}

	LoginRequest struct {
		Username string `json:"username,optional"`
		Password string `json:"password,optional"`
	}

	// LoginResponse doubles as the register response: the launcher logs the
	// user straight in and wants its catalog in the same round trip.
	LoginResponse struct {
		UserID   uint           `json:"user_id"`
		Username string         `json:"username"`
		Token    string         `json:"token"`
		Apps     []CatalogEntry `json:"apps"`
	}

	SettingsGetRequest struct {
		UserID uint64 `path:"id"`
	}

	SettingsPutRequest struct {
		UserID   uint64                 `path:"id"`
		Settings map[string]interface{} `json:"settings"`
	}

	SettingsResponse struct {
		UserID   uint                   `json:"user_id"`
		Settings map[string]interface{} `json:"settings"`
	}

	UserAppsRequest struct {
		UserID uint64 `path:"id"`
	}

	UserApp struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		MoonlightName string `json:"moonlight_name"`
		Enabled       bool   `json:"enabled"`
		SortOrder     int    `json:"sort_order"`
		Installed     bool   `json:"installed"`
	}

	UserAppsResponse struct {
		Apps []UserApp `json:"apps"`
	}

	UserAppPutRequest struct {
		UserID    uint64 `path:"id"`
		AppID     string `path:"app_id"`
		Installed bool   `json:"installed"`
	}

	UserLibraryRequest struct {
		UserID uint64 `path:"id"`
		OrgID  uint64 `form:"org_id"`
	}

	LibraryEntry struct {
		OrgID           uint   `json:"org_id"`
		UserID          uint   `json:"user_id"`
		GameID          uint   `json:"game_id"`
		OwnershipSource string `json:"ownership_source"`
		ProofType       string `json:"proof_type"`
		ProofValue      string `json:"proof_value"`
		VerifiedAt      string `json:"verified_at"`
	}

	UserLibraryResponse struct {
		Library []LibraryEntry `json:"library"`
	}

	Organization struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	OrgsListResponse struct {
		Orgs []Organization `json:"orgs"`
	}

	OrgCreateRequest struct {
		Slug string `json:"slug,optional"`
		Name string `json:"name,optional"`
	}

	OrgMembersRequest struct {
		OrgID uint64 `path:"id"`
	}

	Member struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
	}

	OrgMembersResponse struct {
		Members []Member `json:"members"`
	}

	OrgMemberAddRequest struct {
		OrgID  uint64 `path:"id"`
		UserID uint64 `json:"user_id"`
		Role   string `json:"role,default=member"`
	}

	SteamLinkRequest struct {
		OrgID       uint64 `json:"org_id"`
		UserID      uint64 `json:"user_id"`
		ExternalID  string `json:"external_id,optional"`
		DisplayName string `json:"display_name,optional"`
	}

	SteamLinkResponse struct {
		Linked     bool   `json:"linked"`
		Platform   string `json:"platform"`
		ExternalID string `json:"external_id"`
	}

	OwnershipVerifyRequest struct {
		OrgID   uint64 `json:"org_id"`
		UserID  uint64 `json:"user_id"`
		GameIDs []uint `json:"game_ids,optional"`
	}

	SessionCreateRequest struct {
		OrgID  uint64 `json:"org_id"`
		UserID uint64 `json:"user_id"`
		GameID uint64 `json:"game_id"`
	}

	SessionGetRequest struct {
		ID string `path:"id"`
	}

	SessionResponse struct {
		ID        string `json:"id"`
		OrgID     uint   `json:"org_id"`
		UserID    uint   `json:"user_id"`
		GameID    uint   `json:"game_id"`
		Status    string `json:"status"`
		StreamURL string `json:"stream_url"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}
)
