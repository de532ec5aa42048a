// Package gate implements the routing decision for protected pages: given
// the client's cached identity and the page being visited, it decides
// whether to render or where to redirect.
//
// The gate is a routing convenience, not a security boundary. Enforcement
// lives in the API middleware, which re-validates the bearer token against
// the session store and re-reads the authoritative role on every call.
package gate

import (
	"strings"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// Action is the outcome of a gate evaluation.
type Action string

const (
	ActionRender   Action = "render"
	ActionRedirect Action = "redirect"
)

// Input is everything the gate looks at. It is evaluated fresh on every
// page mount; nothing is cached across navigations.
type Input struct {
	// TokenPresent reports whether the client holds a bearer token.
	TokenPresent bool
	// Role is the acting user's role; RoleNone when unassigned.
	Role domain.Role
	// Path is the page being visited, e.g. "/women/dashboard".
	Path string
	// RequiresRole marks the page as role-scoped.
	RequiresRole bool
	// AllowedRoles optionally declares the page's allowed-role set. When
	// empty on a role-scoped page, the required role is inferred from the
	// first path segment.
	AllowedRoles []domain.Role
}

// Decision is the gate's verdict for a single page mount.
type Decision struct {
	Action   Action `json:"action"`
	Location string `json:"location,omitempty"`
}

func render() Decision {
	return Decision{Action: ActionRender}
}

func redirect(location string) Decision {
	return Decision{Action: ActionRedirect, Location: location}
}

// Evaluate runs the gate state machine:
//
//	no token                       → redirect /login
//	role-scoped page, no role      → redirect /role-select
//	role-scoped page, wrong role   → redirect to the actor's own dashboard
//	otherwise                      → render
func Evaluate(in Input) Decision {
	if !in.TokenPresent {
		return redirect("/login")
	}
	if !in.RequiresRole {
		return render()
	}
	if !in.Role.Assigned() {
		return redirect("/role-select")
	}
	if allowed(in) {
		return render()
	}
	// The redirect targets the acting user's own dashboard, never the
	// page's expected role's dashboard.
	return redirect(in.Role.DashboardPath())
}

func allowed(in Input) bool {
	if len(in.AllowedRoles) > 0 {
		for _, r := range in.AllowedRoles {
			if r == in.Role {
				return true
			}
		}
		return false
	}
	required, ok := domain.RoleForPathSegment(firstSegment(in.Path))
	if !ok {
		return false
	}
	return required == in.Role
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
