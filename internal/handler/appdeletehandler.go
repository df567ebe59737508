package handler

import (
	"net/http"

	"github.com/couchlauncher/couchserver/internal/logic"
	"github.com/couchlauncher/couchserver/internal/svc"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func AppDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AppDeleteRequest
		if err := httpx.Parse(r, &req); err != nil {
			parseError(r.Context(), w, err)
			return
		}
		l := logic.NewAppDeleteLogic(r.Context(), svcCtx)
		resp, err := l.AppDelete(&req)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
