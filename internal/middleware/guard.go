package middleware

import (
	"gleam_backend/internal/config"
	"gleam_backend/internal/model"
	"gleam_backend/internal/util"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// PortalRoot is the protected prefix every role-scoped page lives under.
	PortalRoot = "/portal"
	// LoginPath is where unauthenticated navigation lands.
	LoginPath = "/login"
)

type NavAction int

const (
	NavAllow NavAction = iota
	NavRedirect
)

// NavDecision is the outcome of the access guard for one navigation.
type NavDecision struct {
	Action NavAction
	Target string // redirect target, set when Action == NavRedirect
}

// ResolveNavigation decides what happens when someone with the given role
// (empty string means unauthenticated) navigates to path. It is pure: same
// inputs, same decision, no side effects.
//
// Rules, in order:
//  1. no identity -> redirect to login
//  2. the bare portal root normalizes to the role's home segment
//  3. a first segment other than the role's own is a violation and
//     silently redirects home; segment equality is the whole check
//  4. anything else inside the subtree is allowed
func ResolveNavigation(role model.UserRole, path string) NavDecision {
	if role == "" || !role.Valid() {
		return NavDecision{Action: NavRedirect, Target: LoginPath}
	}

	home := PortalRoot + "/" + string(role.Segment())

	rest := strings.TrimPrefix(path, PortalRoot)
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return NavDecision{Action: NavRedirect, Target: home}
	}

	first := rest
	if i := strings.Index(rest, "/"); i >= 0 {
		first = rest[:i]
	}

	if first != string(role.Segment()) {
		return NavDecision{Action: NavRedirect, Target: home}
	}

	return NavDecision{Action: NavAllow}
}

// PortalGuard enforces ResolveNavigation on every request under PortalRoot
// before any handler runs. A missing or malformed token is treated the same
// way: unauthenticated, redirect to login.
func PortalGuard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role model.UserRole

		tokenString := tokenFromRequest(c)
		if tokenString != "" {
			claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
			if err == nil {
				role = claims.Role
				c.Set("user", claims)
			}
		}

		decision := ResolveNavigation(role, c.Request.URL.Path)
		if decision.Action == NavRedirect {
			c.Redirect(http.StatusTemporaryRedirect, decision.Target)
			c.Abort()
			return
		}

		c.Next()
	}
}
