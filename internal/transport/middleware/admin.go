package middleware

import (
	"context"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/ctxutil"
)

// RequireAdmin is the handler-level guard for registry maintenance routes.
// Anonymous callers get domain.ErrUnauthorized, authenticated non-admins
// domain.ErrForbidden.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
