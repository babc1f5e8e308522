package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	actorIDKey   = "actor_id"
	actorRoleKey = "actor_role"

	RoleAdmin   = "ADMIN"
	RoleOfficer = "OFFICER"
	RoleMember  = "MEMBER"
)

// RequireActor gates a route on the Ax-Actor-Id / Ax-Actor-Role headers.
// Authentication happened upstream; this only checks that the caller
// identified itself with one of the allowed roles, and stashes the actor id
// for attribution (recordedById / approvedById).
func RequireActor(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
			if !reHex32.MatchString(actorID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
			}
			role := strings.ToUpper(strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role")))
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			c.Set(actorIDKey, actorID)
			c.Set(actorRoleKey, role)
			return next(c)
		}
	}
}

// ActorID returns the attribution id stashed by RequireActor.
func ActorID(c echo.Context) string {
	if v, ok := c.Get(actorIDKey).(string); ok {
		return v
	}
	return ""
}

// ActorRole returns the role stashed by RequireActor.
func ActorRole(c echo.Context) string {
	if v, ok := c.Get(actorRoleKey).(string); ok {
		return v
	}
	return ""
}
