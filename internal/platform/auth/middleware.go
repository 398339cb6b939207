package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/shared/errors"
)

const identityKey = "auth.identity"

// Authenticate rejects requests without a valid bearer token and stores the identity on the context.
func Authenticate(tokens *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Abort(c, apierrors.ErrUnauthorized.WithDetail("authorization header is missing"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			apierrors.Abort(c, apierrors.ErrUnauthorized.WithDetail("authorization header must be 'Bearer <token>'"))
			return
		}
		identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			apierrors.Abort(c, apierrors.ErrUnauthorized.WithDetail(err.Error()))
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			apierrors.Abort(c, apierrors.ErrUnauthorized.WithDetail("request is not authenticated"))
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		apierrors.Abort(c, apierrors.ErrForbidden.WithDetail("role "+string(identity.Role)+" may not perform this action"))
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
