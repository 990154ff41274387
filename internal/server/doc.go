// Package server provides HTTP routing, middleware, and backend proxying for
// the podcast service.
//
// # Routing
//
// A [Route] pairs a path pattern with the one HTTP method it accepts.
// [Router] registers routes over an [http.ServeMux] and answers any other
// method on a registered pattern with 405 and an Allow header naming the
// permitted one. Because the method guard runs inside the middleware chain,
// logging middleware records rejected requests too.
//
// Components that expose routes implement [Handler] and are registered in
// one call with [Router.Mount].
//
// # Proxy Handler
//
// [ProxyHandler] fronts the generation backend for browser and CLI clients:
//   - POST /generate_podcast forwards the request body and relays the backend response
//   - GET /podcast_status/{id} relays job state for the given id
//
// Backend HTTP errors pass through with their original status and body.
// Transport failures answer 500 with a JSON error payload; for status polls
// the payload message is fixed so clients can key off it.
//
// # Middleware
//
// [Logging] records method, path, status, and duration per request through a
// status-capturing response writer. [RequestID] tags requests and responses
// with an X-Request-ID header for correlation.
//
// # Current Usage
//
// The serve command builds a [Router], applies both middleware, mounts a
// [ProxyHandler], and runs an [http.Server] with graceful shutdown.
package server
