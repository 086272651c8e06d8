package showcase

import (
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the development API endpoint.
	DefaultBaseURL = "http://localhost:5000/api"
	// ProductionBaseURL is the deployed backend, used when no override is set.
	ProductionBaseURL = "https://vit-student-showcase-backend.vercel.app/api"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// EnvBaseURL overrides the production base URL when set.
	EnvBaseURL = "SHOWCASE_API_URL"
)

// ResolveBaseURL picks the API base URL for the given environment.
// In "production" the SHOWCASE_API_URL variable wins over the built-in
// fallback; anything else resolves to the local development server.
func ResolveBaseURL(env string) string {
	if env == "production" {
		if url := os.Getenv(EnvBaseURL); url != "" {
			return url
		}
		return ProductionBaseURL
	}
	return DefaultBaseURL
}

// Client is the showcase API client.
//
// Use NewClient to create a client. Authenticated calls read the bearer
// token from the configured TokenStore on every request:
//
//	client := showcase.NewClient(showcase.WithTokenStore(store))
type Client struct {
	baseURL    string
	userAgent  string
	tokens     TokenStore
	httpClient *http.Client

	// Services
	Auth     *AuthService
	Projects *ProjectsService
	Admin    *AdminService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithTokenStore sets the store the client reads bearer tokens from.
// The same store should be handed to the session manager so both see
// one authoritative copy of the credential.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new showcase API client.
//
// Without options the client targets the development server, uses a
// 10 second timeout and keeps its token in memory only.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		tokens:    NewMemoryTokenStore(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Projects = &ProjectsService{client: c}
	c.Admin = &AdminService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Tokens returns the token store the client reads from.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}
