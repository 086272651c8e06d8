package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	showcase "github.com/vitshowcase/showcase-go"
)

func userWithRole(role showcase.Role) *showcase.User {
	return &showcase.User{ID: "u1", Name: "Asha Rao", Role: role}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		state        State
		requireAdmin bool
		want         Decision
	}{
		{
			name:  "loading wins over everything",
			state: State{Loading: true},
			want:  ShowLoading,
		},
		{
			name:         "loading wins even for admin routes",
			state:        State{Loading: true, IsAuthenticated: true, User: userWithRole(showcase.RoleAdmin)},
			requireAdmin: true,
			want:         ShowLoading,
		},
		{
			name:  "unauthenticated redirects to login",
			state: State{},
			want:  RedirectToLogin,
		},
		{
			name:         "unauthenticated redirects before admin check",
			state:        State{},
			requireAdmin: true,
			want:         RedirectToLogin,
		},
		{
			name:  "authenticated user renders plain routes",
			state: State{IsAuthenticated: true, User: userWithRole(showcase.RoleUser)},
			want:  Render,
		},
		{
			name:         "plain user denied on admin routes",
			state:        State{IsAuthenticated: true, User: userWithRole(showcase.RoleUser)},
			requireAdmin: true,
			want:         DenyAccess,
		},
		{
			name:         "moderator denied on admin routes",
			state:        State{IsAuthenticated: true, User: userWithRole(showcase.RoleModerator)},
			requireAdmin: true,
			want:         DenyAccess,
		},
		{
			name:         "admin renders admin routes",
			state:        State{IsAuthenticated: true, User: userWithRole(showcase.RoleAdmin)},
			requireAdmin: true,
			want:         Render,
		},
		{
			name:         "authenticated but missing user denied on admin routes",
			state:        State{IsAuthenticated: true},
			requireAdmin: true,
			want:         DenyAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.requireAdmin))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "loading", ShowLoading.String())
	assert.Equal(t, "redirect-to-login", RedirectToLogin.String())
	assert.Equal(t, "deny-access", DenyAccess.String())
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
