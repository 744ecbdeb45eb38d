package auth

import "context"

// Session is the in-memory record of the currently-authenticated user.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type ctxKey string

const contextSessionKey ctxKey = "session"

func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextSessionKey, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextSessionKey).(*Session)
	return s, ok
}
