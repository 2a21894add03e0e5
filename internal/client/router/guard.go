package router

import (
	"net/url"
	"strings"
)

// Decision is the outcome of Guard. When Allow is false, Redirect holds the
// path to navigate to instead.
type Decision struct {
	Allow    bool
	Redirect string
}

// maxHops bounds Navigate's redirect chain.
const maxHops = 4

// Guard decides whether a visitor may open to. Protected routes send guests
// to the login page, carrying the requested path in the redirect query.
// Guest-only routes send logged-in users to the dashboard. Static redirects
// such as "/" are reported as a redirect too.
func Guard(to string, authed bool) Decision {
	r := Resolve(to)
	switch {
	case r.RequiresAuth && !authed:
		return Decision{Redirect: LoginRedirect(to)}
	case r.GuestOnly && authed:
		return Decision{Redirect: PathDashboard}
	case r.Redirect != "":
		return Decision{Redirect: r.Redirect}
	}
	return Decision{Allow: true}
}

// Navigate follows Guard's redirects from to and returns the route finally
// shown.
func Navigate(to string, authed bool) Route {
	for range maxHops {
		d := Guard(to, authed)
		if d.Allow {
			break
		}
		to = d.Redirect
	}
	return Resolve(to)
}

// LoginRedirect builds the login path that returns to "to" after login.
func LoginRedirect(to string) string {
	q := strings.ReplaceAll(url.QueryEscape(to), "%2F", "/")
	return PathLogin + "?redirect=" + q
}

// AfterLogin returns the path a login page at loginPath should continue to:
// the redirect query when it names a known route, the dashboard otherwise.
func AfterLogin(loginPath string) string {
	u, err := url.Parse(loginPath)
	if err != nil {
		return PathDashboard
	}
	next := u.Query().Get("redirect")
	if next == "" || !strings.HasPrefix(next, "/") || Resolve(next).NotFound {
		return PathDashboard
	}
	return next
}
