package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/opora-health/opora_backend/pkg/paseto"
	"github.com/opora-health/opora_backend/pkg/reqctx"
)

var _ reqctx.AuthClaims = (*pasetotoken.Claims)(nil)

// AuthRequired validates a Bearer PASETO access token and checks the session in Redis.
// On success the claims are placed on the request context for handlers to read
// through reqctx.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, err := verifyBearer(c, mgr, rdb)
		if err != nil {
			return err
		}
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

// AuthOptional accepts anonymous requests but validates a token when one is
// presented. Assessment sessions can be started without an account; a bad
// token is still rejected rather than silently downgraded to anonymous.
func AuthOptional(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		claims, err := verifyBearer(c, mgr, rdb)
		if err != nil {
			return err
		}
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

func verifyBearer(c fiber.Ctx, mgr *pasetotoken.Manager, rdb *redis.Client) (*pasetotoken.Claims, error) {
	h := c.Get("Authorization")
	if h == "" {
		return nil, fiber.ErrUnauthorized
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, fiber.ErrUnauthorized
	}

	claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}

	// Only access tokens are accepted on protected routes
	if claims.Type != pasetotoken.TokenTypeAccess {
		return nil, fiber.ErrUnauthorized
	}

	// Validate session in Redis
	if claims.SessionID != nil {
		key := "session:" + claims.SessionID.String()
		if err := rdb.Get(c.Context(), key).Err(); err != nil {
			return nil, fiber.ErrUnauthorized
		}
	}

	return claims, nil
}
