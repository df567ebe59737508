package logic

import (
	"context"
	"fmt"

	"github.com/couchlauncher/couchserver/internal/svc"
)

// requireMembership is the gate in front of every organization-scoped
// operation: unknown org/user is 404, non-member is 403.
func requireMembership(ctx context.Context, svcCtx *svc.ServiceContext, orgID, userID uint) error {
	if orgID == 0 || userID == 0 {
		return fmt.Errorf("org_id and user_id are required: %w", ErrInvalidInput)
	}
	if _, err := svcCtx.Orgs.Get(ctx, orgID); err != nil {
		return fmt.Errorf("organization %d: %w", orgID, ErrNotFound)
	}
	if _, err := svcCtx.Users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	ok, err := svcCtx.Orgs.IsMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d in organization %d: %w", userID, orgID, ErrForbidden)
	}
	return nil
}
