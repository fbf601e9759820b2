package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// Verifier validates HS256 access tokens issued by the auth provider and
// projects their claims into a domain.Identity.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewVerifier creates a token verifier. An empty issuer or audience disables
// the respective check.
func NewVerifier(secret, issuer, audience string) *Verifier {
	return &Verifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

// sessionClaims mirrors the access token payload of the auth provider.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email"`
	Role         string       `json:"role,omitempty"`
	UserMetadata userMetadata `json:"user_metadata"`
	AppMetadata  appMetadata  `json:"app_metadata"`
	AMR          []amrEntry   `json:"amr,omitempty"`
}

type userMetadata struct {
	EmailVerified bool `json:"email_verified"`
}

type appMetadata struct {
	Provider string `json:"provider"`
}

// amrEntry records one authentication method and when it happened.
type amrEntry struct {
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp"`
}

// VerifyToken parses and validates an access token.
func (v *Verifier) VerifyToken(_ context.Context, tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return domain.Identity{}, fmt.Errorf("invalid subject %q: %w", claims.Subject, domain.ErrUnauthorized)
	}

	return domain.Identity{
		ID:            userID,
		Email:         claims.Email,
		EmailVerified: claims.UserMetadata.EmailVerified,
		LastSignInAt:  claims.lastSignIn(),
		Provider:      claims.AppMetadata.Provider,
	}, nil
}

// lastSignIn prefers the latest authentication method timestamp and falls
// back to the token issue time.
func (c *sessionClaims) lastSignIn() time.Time {
	var latest int64
	for _, a := range c.AMR {
		if a.Timestamp > latest {
			latest = a.Timestamp
		}
	}
	if latest > 0 {
		return time.Unix(latest, 0).UTC()
	}
	if c.IssuedAt != nil {
		return c.IssuedAt.UTC()
	}
	return time.Time{}
}
