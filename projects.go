package showcase

import (
	"context"
	"fmt"
	"net/url"
)

// ProjectsService handles project browsing and mutation.
type ProjectsService struct {
	client *Client
}

// CreateProjectRequest is the payload for the create and update calls.
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
}

// ListOptions filter the project list.
type ListOptions struct {
	// Category narrows the list to one category.
	Category string
	// Featured narrows the list to featured projects.
	Featured bool
}

func (o *ListOptions) query() string {
	if o == nil {
		return ""
	}
	q := url.Values{}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Featured {
		q.Set("featured", "true")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List returns all projects, newest first.
func (s *ProjectsService) List(ctx context.Context, opts *ListOptions) ([]Project, error) {
	var resp struct {
		Projects []Project `json:"projects"`
	}
	if err := s.client.get(ctx, "/projects"+opts.query(), &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// Get retrieves a single project by id.
func (s *ProjectsService) Get(ctx context.Context, id string) (*Project, error) {
	var resp struct {
		Project *Project `json:"project"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%s", id), &resp); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Create submits a new project authored by the current user.
func (s *ProjectsService) Create(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var resp struct {
		Project *Project `json:"project"`
	}
	if err := s.client.post(ctx, "/projects", req, &resp); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Update replaces an existing project's fields.
func (s *ProjectsService) Update(ctx context.Context, id string, req CreateProjectRequest) (*Project, error) {
	var resp struct {
		Project *Project `json:"project"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/projects/%s", id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Project, nil
}

// Delete removes a project owned by the current user.
func (s *ProjectsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/projects/%s", id))
}

// Like toggles the current user's like on a project and returns the
// updated like list.
func (s *ProjectsService) Like(ctx context.Context, id string) ([]string, error) {
	var resp struct {
		Likes []string `json:"likes"`
	}
	if err := s.client.post(ctx, fmt.Sprintf("/projects/%s/like", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Likes, nil
}

// Comment adds a comment to a project and returns the updated comment
// list.
func (s *ProjectsService) Comment(ctx context.Context, id, text string) ([]Comment, error) {
	body := map[string]string{"text": text}
	var resp struct {
		Comments []Comment `json:"comments"`
	}
	if err := s.client.post(ctx, fmt.Sprintf("/projects/%s/comment", id), body, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}
