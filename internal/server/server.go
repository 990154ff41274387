// package server contains the routing layer and proxy handlers fronting the
// podcast generation backend
package server

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behavior such as
// request logging or correlation IDs.
type Middleware func(http.Handler) http.Handler

// Route binds a path pattern to the single HTTP method it accepts. The
// router rejects every other method on the pattern with 405 and an Allow
// header, so handlers never see mismatched requests.
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// Handler is implemented by components that expose a fixed set of routes.
// Mounting a Handler registers each route with its own method restriction.
type Handler interface {
	Routes() []Route
}
