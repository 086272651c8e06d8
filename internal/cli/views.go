package cli

import showcase "github.com/vitshowcase/showcase-go"

// projectList is the in-memory list the project views render from.
//
// Mutations follow the platform's refresh policy: a freshly created
// project is prepended without a refetch, everything else (like,
// comment, delete, feature) replaces the whole list from the server.
type projectList struct {
	items []showcase.Project
}

// Replace swaps in the server's current list.
func (l *projectList) Replace(items []showcase.Project) {
	l.items = items
}

// Prepend puts a newly created project at the head of the list.
func (l *projectList) Prepend(p showcase.Project) {
	l.items = append([]showcase.Project{p}, l.items...)
}

// Items returns the rendered list.
func (l *projectList) Items() []showcase.Project {
	return l.items
}

// Len returns the number of projects held.
func (l *projectList) Len() int {
	return len(l.items)
}

// TotalLikes sums likes across the list for the dashboard stats row.
func (l *projectList) TotalLikes() int {
	total := 0
	for _, p := range l.items {
		total += len(p.Likes)
	}
	return total
}

// TotalComments sums comments across the list.
func (l *projectList) TotalComments() int {
	total := 0
	for _, p := range l.items {
		total += len(p.Comments)
	}
	return total
}
