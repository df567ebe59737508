package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/couchlauncher/couchserver/internal/logic"
	"github.com/couchlauncher/couchserver/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// respondError maps the logic error taxonomy onto HTTP statuses. Every error
// body is {"detail": "..."} so the launcher has one shape to parse.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, logic.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, logic.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, logic.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, logic.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, logic.ErrConflict):
		status = http.StatusConflict
	}
	httpx.WriteJsonCtx(ctx, w, status, types.ErrorResponse{Detail: err.Error()})
}

func parseError(ctx context.Context, w http.ResponseWriter, err error) {
	httpx.WriteJsonCtx(ctx, w, http.StatusBadRequest, types.ErrorResponse{Detail: err.Error()})
}
