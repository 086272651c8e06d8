package showcase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL %q, got %q", DefaultBaseURL, client.baseURL)
	}

	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}

	if client.Auth == nil {
		t.Error("expected Auth service to be initialized")
	}
	if client.Projects == nil {
		t.Error("expected Projects service to be initialized")
	}
	if client.Admin == nil {
		t.Error("expected Admin service to be initialized")
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	customClient := &http.Client{Timeout: 60 * time.Second}
	customURL := "https://custom.api.io"
	store := NewMemoryTokenStore()

	client := NewClient(
		WithBaseURL(customURL),
		WithHTTPClient(customClient),
		WithTokenStore(store),
	)

	if client.baseURL != customURL {
		t.Errorf("expected baseURL %q, got %q", customURL, client.baseURL)
	}

	if client.httpClient != customClient {
		t.Error("expected custom HTTP client to be set")
	}

	if client.Tokens() != TokenStore(store) {
		t.Error("expected custom token store to be set")
	}
}

func TestNewClient_WithTimeout(t *testing.T) {
	client := NewClient(WithTimeout(5 * time.Second))

	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", client.httpClient.Timeout)
	}
}

func TestResolveBaseURL(t *testing.T) {
	if got := ResolveBaseURL("development"); got != DefaultBaseURL {
		t.Errorf("expected %q, got %q", DefaultBaseURL, got)
	}

	if got := ResolveBaseURL("production"); got != ProductionBaseURL {
		t.Errorf("expected %q, got %q", ProductionBaseURL, got)
	}

	t.Setenv(EnvBaseURL, "https://staging.api.io")
	if got := ResolveBaseURL("production"); got != "https://staging.api.io" {
		t.Errorf("expected env override, got %q", got)
	}
	if got := ResolveBaseURL("development"); got != DefaultBaseURL {
		t.Errorf("expected env override to be ignored in development, got %q", got)
	}
}

// newTestServer creates a test server and client for testing.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)
	client := NewClient(WithBaseURL(server.URL))
	t.Cleanup(server.Close)
	return server, client
}

func userPayload(id string, role Role) map[string]interface{} {
	return map[string]interface{}{
		"_id":    id,
		"name":   "Asha Rao",
		"email":  "asha@vit.edu",
		"branch": "Computer Science",
		"year":   3,
		"role":   string(role),
	}
}

func projectPayload(id, title string) map[string]interface{} {
	return map[string]interface{}{
		"_id":          id,
		"title":        title,
		"description":  "A demo project",
		"category":     "Web Development",
		"technologies": []string{"React", "Go"},
		"likes":        []string{},
		"comments":     []map[string]interface{}{},
		"featured":     false,
		"createdAt":    "2024-05-01T10:00:00Z",
	}
}

func TestAuthService_Login(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/auth/login" {
			t.Errorf("expected /auth/login, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("expected no Authorization header before login")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a request id header")
		}

		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if creds.Email != "asha@vit.edu" {
			t.Errorf("expected email asha@vit.edu, got %q", creds.Email)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-123",
			"user":  userPayload("u1", RoleUser),
		})
	})

	ctx := context.Background()
	res, err := client.Auth.Login(ctx, Credentials{Email: "asha@vit.edu", Password: "secret1"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Token != "tok-123" {
		t.Errorf("expected token tok-123, got %q", res.Token)
	}
	if res.User == nil || res.User.ID != "u1" {
		t.Errorf("expected user u1, got %+v", res.User)
	}
}

func TestAuthService_Login_Failure(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})

	ctx := context.Background()
	_, err := client.Auth.Login(ctx, Credentials{Email: "asha@vit.edu", Password: "wrong"})

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := AsError(err)
	if !ok {
		t.Fatal("expected API error")
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
	if !apiErr.IsValidation() {
		t.Error("expected IsValidation() to be true")
	}
}

func TestAuthService_Profile_SendsBearer(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/profile" {
			t.Errorf("expected /auth/profile, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("expected bearer header, got %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": userPayload("u1", RoleAdmin),
		})
	})

	client.Tokens().SetToken("tok-123")

	ctx := context.Background()
	user, err := client.Auth.Profile(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Errorf("expected admin role, got %s", user.Role)
	}
}

func TestProjectsService_List(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Errorf("expected /projects, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"projects": []map[string]interface{}{
				projectPayload("p1", "First"),
				projectPayload("p2", "Second"),
			},
		})
	})

	ctx := context.Background()
	projects, err := client.Projects.List(ctx, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "First" {
		t.Errorf("expected title First, got %q", projects[0].Title)
	}
}

func TestProjectsService_List_WithOptions(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("category"); got != "AI/ML" {
			t.Errorf("expected category query, got %q", got)
		}
		if got := r.URL.Query().Get("featured"); got != "true" {
			t.Errorf("expected featured query, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"projects": []interface{}{}})
	})

	ctx := context.Background()
	_, err := client.Projects.List(ctx, &ListOptions{Category: "AI/ML", Featured: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProjectsService_Create(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects" {
			t.Errorf("expected POST /projects, got %s %s", r.Method, r.URL.Path)
		}

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(req.Technologies) != 1 || req.Technologies[0] != "React" {
			t.Errorf("expected technologies [React], got %v", req.Technologies)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"project": projectPayload("p9", req.Title),
		})
	})

	ctx := context.Background()
	project, err := client.Projects.Create(ctx, CreateProjectRequest{
		Title:        "X",
		Description:  "Y",
		Category:     "Web Development",
		Technologies: []string{"React"},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.ID != "p9" {
		t.Errorf("expected project p9, got %q", project.ID)
	}
}

func TestProjectsService_Like(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/p1/like" {
			t.Errorf("expected /projects/p1/like, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"likes": []string{"u1", "u2"}})
	})

	ctx := context.Background()
	likes, err := client.Projects.Like(ctx, "p1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(likes) != 2 {
		t.Errorf("expected 2 likes, got %d", len(likes))
	}
}

func TestProjectsService_Comment(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/p1/comment" {
			t.Errorf("expected /projects/p1/comment, got %s", r.URL.Path)
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["text"] != "Nice work!" {
			t.Errorf("expected comment text, got %q", body["text"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"comments": []map[string]interface{}{
				{"user": "u2", "text": "Nice work!"},
			},
		})
	})

	ctx := context.Background()
	comments, err := client.Projects.Comment(ctx, "p1", "Nice work!")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "Nice work!" {
		t.Errorf("unexpected comments: %+v", comments)
	}
}

func TestProjectsService_Delete(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/projects/p1" {
			t.Errorf("expected DELETE /projects/p1, got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	if err := client.Projects.Delete(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdminService_Stats(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/stats" {
			t.Errorf("expected /admin/stats, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stats": map[string]int{
				"totalUsers":    4,
				"totalProjects": 7,
				"totalAdmins":   1,
				"totalLikes":    12,
				"totalComments": 5,
			},
			"projects": []map[string]interface{}{projectPayload("p1", "First")},
			"users":    []map[string]interface{}{userPayload("u1", RoleUser)},
		})
	})

	ctx := context.Background()
	data, err := client.Admin.Stats(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Stats.TotalProjects != 7 {
		t.Errorf("expected 7 projects, got %d", data.Stats.TotalProjects)
	}
	if len(data.Users) != 1 || len(data.Projects) != 1 {
		t.Errorf("expected embedded lists, got %d users, %d projects", len(data.Users), len(data.Projects))
	}
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/admin/users/u1/role" {
			t.Errorf("expected PUT /admin/users/u1/role, got %s %s", r.Method, r.URL.Path)
		}

		var body map[string]Role
		json.NewDecoder(r.Body).Decode(&body)
		if body["role"] != RoleModerator {
			t.Errorf("expected moderator payload, got %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": userPayload("u1", RoleModerator),
		})
	})

	ctx := context.Background()
	user, err := client.Admin.UpdateUserRole(ctx, "u1", RoleModerator)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleModerator {
		t.Errorf("expected moderator, got %s", user.Role)
	}
}

// clearCountingStore counts how many times a present token is removed.
type clearCountingStore struct {
	*MemoryTokenStore
	clears int
}

func (s *clearCountingStore) Clear() error {
	if _, ok := s.MemoryTokenStore.Token(); ok {
		s.clears++
	}
	return s.MemoryTokenStore.Clear()
}

func TestUnauthorized_ClearsTokenOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Token is not valid"})
	}))
	t.Cleanup(server.Close)

	store := &clearCountingStore{MemoryTokenStore: NewMemoryTokenStore()}
	store.SetToken("stale-token")

	client := NewClient(WithBaseURL(server.URL), WithTokenStore(store))

	ctx := context.Background()

	// Any facade triggers the same interceptor behavior.
	_, err := client.Projects.List(ctx, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}

	if _, ok := store.Token(); ok {
		t.Error("expected token to be cleared")
	}
	if store.clears != 1 {
		t.Errorf("expected exactly one effective clear, got %d", store.clears)
	}

	// A second 401 with no stored token must not count as another clear.
	_, err = client.Auth.Profile(ctx)
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if store.clears != 1 {
		t.Errorf("expected clear count to stay at 1, got %d", store.clears)
	}
}

func TestParseError_Fallbacks(t *testing.T) {
	err := parseError(http.StatusBadGateway, []byte("upstream exploded"))
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatal("expected API error")
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("expected raw body fallback, got %q", apiErr.Message)
	}

	err = parseError(http.StatusNotFound, []byte(`{"error":"Project not found"}`))
	apiErr, _ = AsError(err)
	if apiErr.Message != "Project not found" {
		t.Errorf("expected error field fallback, got %q", apiErr.Message)
	}
	if !apiErr.IsNotFound() {
		t.Error("expected IsNotFound() to be true")
	}
}

func TestErrorMessage(t *testing.T) {
	apiErr := &Error{StatusCode: 400, Message: "Title is required"}
	if got := ErrorMessage(apiErr, "fallback"); got != "Title is required" {
		t.Errorf("expected server message, got %q", got)
	}

	if got := ErrorMessage(fmt.Errorf("dial tcp: timeout"), "fallback"); got != "fallback" {
		t.Errorf("expected fallback for network error, got %q", got)
	}
}
