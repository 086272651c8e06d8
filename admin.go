package showcase

import (
	"context"
	"fmt"
)

// AdminService handles the admin dashboard surface. Every call requires
// an admin bearer token; the backend enforces the role.
type AdminService struct {
	client *Client
}

// AdminData is the combined dashboard payload.
type AdminData struct {
	Stats    Stats     `json:"stats"`
	Projects []Project `json:"projects"`
	Users    []User    `json:"users"`
}

// Stats fetches platform counters plus the full project and user lists.
func (s *AdminService) Stats(ctx context.Context) (*AdminData, error) {
	var resp AdminData
	if err := s.client.get(ctx, "/admin/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProject removes any project, regardless of author.
func (s *AdminService) DeleteProject(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/admin/projects/%s", id))
}

// DeleteUser removes a user and all of their projects.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/admin/users/%s", id))
}

// UpdateUserRole changes a user's role.
func (s *AdminService) UpdateUserRole(ctx context.Context, id string, role Role) (*User, error) {
	body := map[string]Role{"role": role}
	var resp struct {
		User *User `json:"user"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/admin/users/%s/role", id), body, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// FeatureProject toggles a project's featured flag.
func (s *AdminService) FeatureProject(ctx context.Context, id string) (*Project, error) {
	var resp struct {
		Project *Project `json:"project"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/admin/projects/%s/feature", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Project, nil
}
