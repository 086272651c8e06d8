package session

import showcase "github.com/vitshowcase/showcase-go"

// Decision is the route guard's verdict for a render pass.
type Decision int

const (
	// ShowLoading renders a loading placeholder while the session is
	// still being restored.
	ShowLoading Decision = iota
	// RedirectToLogin sends an unauthenticated user to the login view.
	RedirectToLogin
	// DenyAccess renders the access-denied view for a user lacking the
	// required role.
	DenyAccess
	// Render shows the requested view.
	Render
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "loading"
	case RedirectToLogin:
		return "redirect-to-login"
	case DenyAccess:
		return "deny-access"
	case Render:
		return "render"
	}
	return "unknown"
}

// Decide picks what to render for the given session state. The decision
// is side-effect free and cheap; callers re-evaluate it on every pass
// rather than caching it.
func Decide(s State, requireAdmin bool) Decision {
	if s.Loading {
		return ShowLoading
	}
	if !s.IsAuthenticated {
		return RedirectToLogin
	}
	if requireAdmin && (s.User == nil || s.User.Role != showcase.RoleAdmin) {
		return DenyAccess
	}
	return Render
}
