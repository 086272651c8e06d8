package showcase

import "context"

// AuthService handles registration, login and profile retrieval.
//
// The service shapes requests only; it does not touch the token store.
// Persisting the returned token is the session manager's job.
type AuthService struct {
	client *Client
}

// Credentials identify an existing account.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Branch   string `json:"branch"`
	Year     int    `json:"year"`
}

// AuthResult is the token and profile returned by login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Register creates a new account and returns a fresh token.
func (s *AuthService) Register(ctx context.Context, req Registration) (*AuthResult, error) {
	var resp AuthResult
	if err := s.client.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates an existing account and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var resp AuthResult
	if err := s.client.post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the profile for the current bearer token.
func (s *AuthService) Profile(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := s.client.get(ctx, "/auth/profile", &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
