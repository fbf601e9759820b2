package auth

import (
	"context"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/pkg/ctxutil"
)

// Gate answers whether the current request belongs to a signed-in user.
// It never redirects by itself; callers turn ErrAuthRequired into the
// login boundary.
type Gate struct {
	loginPath string
}

// NewGate creates a gate that points unauthenticated callers at loginPath.
func NewGate(loginPath string) *Gate {
	return &Gate{loginPath: loginPath}
}

// CurrentIdentity returns the verified identity of the caller or
// domain.ErrAuthRequired.
func (g *Gate) CurrentIdentity(ctx context.Context) (domain.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Identity{}, domain.ErrAuthRequired
	}
	return id, nil
}

// LoginPath is where unauthenticated callers are sent.
func (g *Gate) LoginPath() string { return g.loginPath }
