// Package web will hold the browser front end: the creation wizard rendered
// server-side with HTMX partials instead of bubbletea views.
//
// Nothing here is implemented yet; this file records the plan.
//
// # Shape
//
// Each wizard step maps to one template and one handler, mounted on the same
// [server.Router] the proxy endpoints use:
//
//  1. Welcome: landing page, a start button hx-gets the wizard in
//  2. Sources: multipart upload form plus a URL textarea, one hx-post per file
//  3. Customize: analogies textarea; blurring it reveals the emphasis field
//  4. Style: radio cards for the four conversation styles
//  5. Plan: tier cards; submitting kicks off generation
//  6. Generating: progress streamed over SSE (Server-Sent Events)
//  7. Result: an audio element pointed at the finished episode
//
// # Routes
//
//	GET  /                    landing view
//	GET  /wizard/{step}       step partial, gate-checked before rendering
//	POST /wizard/sources      uploads (10MB cap, pdf/txt/doc/docx)
//	POST /wizard/generate     submit the request, reply with the job ID
//	GET  /jobs/{id}/stream    SSE progress feed
//	GET  /jobs/{id}/result    result view
//
// # State
//
// The TUI keeps the wizard in process memory; a browser cannot, so state
// splits across a session cookie (step index and field values), a job table
// (generation status between requests), and per-connection channels feeding
// open SSE streams.
//
// Generation reuses [services.Generator] and [tasks.EpisodeEngine] untouched:
// the generate handler runs the engine in a goroutine and forwards its
// progress channel to the SSE stream, closing with a done event carrying the
// result URL.
//
// # Work remaining
//
//   - templates (base layout with the step strip, one partial per step,
//     progress bar, result page) over html/template
//   - session middleware carrying wizard state, probably gorilla/sessions
//   - upload handler enforcing the size and extension rules
//   - step gates mirroring wizard.StepComplete
//   - SSE handler translating ProgressUpdate values to events
//
// Handlers will be covered with httptest against a mocked
// [services.Generator], asserting on HTMX response headers and on the SSE
// wire format.
package web
