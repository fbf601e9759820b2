package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/pkg/ctxutil"
)

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth resolves the bearer token into a caller identity. Requests without a
// token pass through anonymous; the page controllers decide whether that is
// acceptable. A token that fails verification is answered with 401 and a
// login redirect hint.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, errorBody{
					Error:           "session expired, please sign in again",
					RedirectToLogin: true,
				})
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), identity)
			ctx = ctxutil.WithAccessToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
