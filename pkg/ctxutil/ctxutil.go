package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

type ctxKey string

const (
	userIDKey      ctxKey = "user_id"
	identityKey    ctxKey = "identity"
	accessTokenKey ctxKey = "access_token"
	requestIDKey   ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithIdentity stores the verified caller identity and its user ID.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	ctx = context.WithValue(ctx, identityKey, id)
	return WithUserID(ctx, id.ID)
}

// IdentityFromCtx extracts the caller identity.
// Returns false if absent or if the identity carries no user.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok || id.IsZero() {
		return domain.Identity{}, false
	}
	return id, true
}

// WithAccessToken stores the caller's raw bearer token so that outbound
// calls can act on the caller's behalf.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessTokenFromCtx returns the caller's raw bearer token or "".
func AccessTokenFromCtx(ctx context.Context) string {
	tok, _ := ctx.Value(accessTokenKey).(string)
	return tok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
