// Package router maps the app's screens to paths and decides, from the
// session state alone, whether a navigation may proceed.
package router

import "strings"

// Well-known paths.
const (
	PathRoot            = "/"
	PathDashboard       = "/dashboard"
	PathAccountSettings = "/account-settings"
	PathUsers           = "/users"
	PathTasks           = "/tasks"
	PathLogin           = "/login"
	PathRegister        = "/register"
)

// Route describes one screen.
type Route struct {
	Path         string
	Name         string
	Redirect     string
	RequiresAuth bool
	GuestOnly    bool
	NotFound     bool
}

var routes = []Route{
	{Path: PathRoot, Name: "root", Redirect: PathDashboard},
	{Path: PathDashboard, Name: "dashboard", RequiresAuth: true},
	{Path: PathAccountSettings, Name: "account-settings", RequiresAuth: true},
	{Path: PathUsers, Name: "users", RequiresAuth: true},
	{Path: PathTasks, Name: "tasks", RequiresAuth: true},
	{Path: PathLogin, Name: "login", GuestOnly: true},
	{Path: PathRegister, Name: "register", GuestOnly: true},
}

var notFound = Route{Name: "not-found", NotFound: true}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve finds the route for path. The query string, fragment and a
// trailing slash are ignored. Unknown paths resolve to the not-found route,
// whose Path is set to the cleaned input.
func Resolve(path string) Route {
	p := cleanPath(path)
	for _, r := range routes {
		if r.Path == p {
			return r
		}
	}
	r := notFound
	r.Path = p
	return r
}

func cleanPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
