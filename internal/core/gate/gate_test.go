package gate

import (
	"testing"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

func TestEvaluate_RedirectMatrix(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Decision
	}{
		{
			name: "no token always redirects to login",
			in:   Input{TokenPresent: false, Role: domain.RoleAdmin, Path: "/admin/dashboard", RequiresRole: true},
			want: Decision{Action: ActionRedirect, Location: "/login"},
		},
		{
			name: "no token redirects to login even on public pages",
			in:   Input{TokenPresent: false, Path: "/profile"},
			want: Decision{Action: ActionRedirect, Location: "/login"},
		},
		{
			name: "token without role on role-scoped page goes to role select",
			in:   Input{TokenPresent: true, Role: domain.RoleNone, Path: "/women/dashboard", RequiresRole: true},
			want: Decision{Action: ActionRedirect, Location: "/role-select"},
		},
		{
			name: "wrong role redirects to the actor's own dashboard",
			in: Input{
				TokenPresent: true, Role: domain.RoleWoman,
				Path: "/admin/dashboard", RequiresRole: true,
				AllowedRoles: []domain.Role{domain.RoleAdmin},
			},
			want: Decision{Action: ActionRedirect, Location: "/women/dashboard"},
		},
		{
			name: "matching declared role renders",
			in: Input{
				TokenPresent: true, Role: domain.RoleAdmin,
				Path: "/admin/dashboard", RequiresRole: true,
				AllowedRoles: []domain.Role{domain.RoleAdmin},
			},
			want: Decision{Action: ActionRender},
		},
		{
			name: "role inferred from path segment renders for owner",
			in:   Input{TokenPresent: true, Role: domain.RoleGirl, Path: "/girls/tutorials", RequiresRole: true},
			want: Decision{Action: ActionRender},
		},
		{
			name: "role inferred from path segment denies everyone else",
			in:   Input{TokenPresent: true, Role: domain.RoleCustomer, Path: "/girls/tutorials", RequiresRole: true},
			want: Decision{Action: ActionRedirect, Location: "/customer/dashboard"},
		},
		{
			name: "unknown path segment on a role-scoped page denies any role",
			in:   Input{TokenPresent: true, Role: domain.RoleFieldAgent, Path: "/reports/weekly", RequiresRole: true},
			want: Decision{Action: ActionRedirect, Location: "/fieldagent/dashboard"},
		},
		{
			name: "public page renders without a role",
			in:   Input{TokenPresent: true, Role: domain.RoleNone, Path: "/profile"},
			want: Decision{Action: ActionRender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			if got != tt.want {
				t.Fatalf("Evaluate(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEvaluate_RoleAssignmentIsTerminal(t *testing.T) {
	// After a user picks "woman", a /women page renders and a /girls page
	// bounces back to the woman dashboard.
	woman := Input{TokenPresent: true, Role: domain.RoleWoman, Path: "/women/dashboard", RequiresRole: true}
	if got := Evaluate(woman); got.Action != ActionRender {
		t.Fatalf("expected render for own area, got %+v", got)
	}

	girls := Input{TokenPresent: true, Role: domain.RoleWoman, Path: "/girls/dashboard", RequiresRole: true}
	got := Evaluate(girls)
	if got.Action != ActionRedirect || got.Location != "/women/dashboard" {
		t.Fatalf("expected redirect to /women/dashboard, got %+v", got)
	}
}

func TestFirstSegment(t *testing.T) {
	cases := map[string]string{
		"/women/dashboard": "women",
		"/admin":           "admin",
		"girls/tutorials":  "girls",
		"/":                "",
		"":                 "",
	}
	for path, want := range cases {
		if got := firstSegment(path); got != want {
			t.Fatalf("firstSegment(%q) = %q, want %q", path, got, want)
		}
	}
}
