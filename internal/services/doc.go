// Package services defines the [Generator] interface for podcast generation
// backends and implements it for the local generation server.
//
// # Generator Interface
//
// Backends accept a [models.GenerationRequest] and answer status polls by job
// id, enabling the engine and UI layers to work against any implementation.
//
// # Podcast Backend Implementation
//
// [PodcastService] communicates with the generation server over HTTP:
//   - POST /generate_podcast submits a request and returns the job id
//   - GET /podcast_status/{id} reports job state, audio url, and errors
//
// Generation is asynchronous: the backend answers the submit immediately and
// the caller polls until the job reaches a terminal state.
//
// # Raw Access
//
// [APIService] exposes Get/Post returning [APIResponse] with the undecoded
// body and detected JSON payload. The api command uses it for ad hoc
// endpoint inspection.
//
// # Error Handling
//
// Non-2xx responses are decoded for a detail message ({"detail": ...} or
// {"error": ...}) and reported as podcast API errors with the status code.
// Transport failures wrap the underlying error. The tasks engine maps these
// onto the shared sentinel catalog:
//   - [shared.ErrGenerationFailed] : backend reported a failed job
//   - [shared.ErrJobNotFound] : status poll for an unknown id
//   - [shared.ErrPollTimeout] : job never reached a terminal state
package services
