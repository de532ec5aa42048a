package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of actor roles. A user holds exactly one role at a
// time; RoleNone marks a freshly registered user who has not picked one yet.
type Role string

const (
	RoleNone       Role = ""
	RoleGirl       Role = "girl"
	RoleWoman      Role = "woman"
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleFieldAgent Role = "fieldagent"
)

// ParseRole validates raw input against the closed role set. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleGirl:
		return RoleGirl, nil
	case RoleWoman:
		return RoleWoman, nil
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleFieldAgent:
		return RoleFieldAgent, nil
	}
	return RoleNone, fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

// Assigned reports whether the user has picked a role yet.
func (r Role) Assigned() bool {
	return r != RoleNone
}

var dashboardPaths = map[Role]string{
	RoleGirl:       "/girls/dashboard",
	RoleWoman:      "/women/dashboard",
	RoleCustomer:   "/customer/dashboard",
	RoleAdmin:      "/admin/dashboard",
	RoleFieldAgent: "/fieldagent/dashboard",
}

// DashboardPath returns the landing page for the role. Users without a role
// land on the role picker.
func (r Role) DashboardPath() string {
	if p, ok := dashboardPaths[r]; ok {
		return p
	}
	return "/role-select"
}

// Path prefixes differ from role names where the UI pluralises them.
var pathSegmentRoles = map[string]Role{
	"girls":      RoleGirl,
	"women":      RoleWoman,
	"customer":   RoleCustomer,
	"admin":      RoleAdmin,
	"fieldagent": RoleFieldAgent,
}

// RoleForPathSegment maps the first segment of a page path to the role that
// owns that section of the app.
func RoleForPathSegment(segment string) (Role, bool) {
	r, ok := pathSegmentRoles[segment]
	return r, ok
}
