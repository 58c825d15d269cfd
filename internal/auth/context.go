package auth

import "context"

type contextKey string

const credentialsKey contextKey = "fitstats-auth-credentials"

// Credentials of the authenticated caller. The raw token is kept so it can
// be forwarded explicitly to downstream services.
type Credentials struct {
	UserID string
	Token  string
}

func NewContext(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, creds)
}

func FromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey).(Credentials)
	return creds, ok
}
