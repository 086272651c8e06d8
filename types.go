// Package showcase provides a Go client for the VIT student showcase
// platform API: authentication, project browsing and the admin surface.
//
// The package is transport only. Session lifecycle (restore, login,
// logout, role checks) lives in the session subpackage.
package showcase

import "time"

// Role represents a user's role on the platform.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered student. Users are created server-side
// on registration and are read-only to this client.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Branch    string    `json:"branch"`
	Year      int       `json:"year"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a single comment on a project.
type Comment struct {
	ID        string    `json:"_id,omitempty"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project represents a showcased student project.
//
// Likes holds user ids. The client never edits a project in place; every
// mutation goes through the API and the list is refetched or replaced.
type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	Author       *User     `json:"author,omitempty"`
	Likes        []string  `json:"likes"`
	Comments     []Comment `json:"comments"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Stats are the platform-wide counters shown on the admin dashboard.
type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalProjects int `json:"totalProjects"`
	TotalAdmins   int `json:"totalAdmins"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// Categories are the project categories accepted by the create form.
var Categories = []string{
	"Web Development",
	"Mobile App",
	"AI/ML",
	"Data Science",
	"Game Development",
	"IoT",
	"Blockchain",
	"Other",
}

// Branches are the engineering branches offered at registration.
var Branches = []string{
	"Computer Science",
	"Information Technology",
	"Electronics and Communication",
	"Mechanical Engineering",
	"Civil Engineering",
	"Electrical Engineering",
	"Chemical Engineering",
	"Biotechnology",
}

// ValidCategory reports whether c is an accepted project category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidBranch reports whether b is a known branch.
func ValidBranch(b string) bool {
	for _, known := range Branches {
		if b == known {
			return true
		}
	}
	return false
}
