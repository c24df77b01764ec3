package account

import (
	"context"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

type sessionKey struct{}

func ContextWithSession(ctx context.Context, session dto.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session attached by the auth middleware.
func SessionFromContext(ctx context.Context) (dto.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(dto.Session)
	return session, ok
}
