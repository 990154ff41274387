package server

import (
	"net/http"
	"strings"
)

// Router dispatches requests over an [http.ServeMux], enforcing the method
// declared for each route and threading every handler through the shared
// middleware chain. Since mismatched methods are answered inside the chain,
// logging middleware records 405s too.
type Router struct {
	mux   *http.ServeMux
	chain []Middleware
}

// NewRouter returns an empty Router ready for Use and Mount calls.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Use appends middleware to the chain. Middleware added first sits
// outermost, so it observes the request before anything added later.
func (rt *Router) Use(mw ...Middleware) {
	rt.chain = append(rt.chain, mw...)
}

// Mount registers every route a Handler exposes.
func (rt *Router) Mount(h Handler) {
	for _, route := range h.Routes() {
		rt.Handle(route.Method, route.Pattern, route.Handler)
	}
}

// Handle registers handler under pattern, restricted to the given method.
// Requests with any other method receive 405 and an Allow header naming the
// permitted one; the comparison ignores case and Allow is uppercased.
func (rt *Router) Handle(method, pattern string, handler http.Handler) {
	allowed := strings.ToUpper(method)

	guarded := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.EqualFold(req.Method, allowed) {
			w.Header().Set("Allow", allowed)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		handler.ServeHTTP(w, req)
	})

	rt.mux.Handle(pattern, rt.wrap(guarded))
}

// ServeHTTP makes the router itself an http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rt.mux.ServeHTTP(w, req)
}

// wrap applies the middleware chain so the earliest Use call is outermost.
func (rt *Router) wrap(h http.Handler) http.Handler {
	for i := len(rt.chain) - 1; i >= 0; i-- {
		h = rt.chain[i](h)
	}

	return h
}
