package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// statusErrorMessage is the fixed error payload for status lookups that
// never reached the backend. Clients key off this exact string.
const statusErrorMessage = "Failed to fetch podcast status"

// ProxyHandler forwards generation and status requests to the backend.
//
// Backend HTTP errors (4xx/5xx) pass through with their status and body;
// only transport failures map to a 500 with a JSON error payload.
type ProxyHandler struct {
	upstream string
	client   *http.Client
}

// NewProxyHandler creates a proxy handler targeting the given backend URL.
func NewProxyHandler(upstream string, client *http.Client) *ProxyHandler {
	if upstream == "" {
		upstream = "http://localhost:8000"
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &ProxyHandler{
		upstream: strings.TrimRight(upstream, "/"),
		client:   client,
	}
}

// Routes declares the two backend endpoints the proxy fronts. Method
// enforcement happens in the router, so generate and status only ever see
// POST and GET respectively.
func (h *ProxyHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodPost, Pattern: "/generate_podcast", Handler: http.HandlerFunc(h.generate)},
		{Method: http.MethodGet, Pattern: "/podcast_status/", Handler: http.HandlerFunc(h.status)},
	}
}

// generate forwards a generation request body to the backend and relays the
// response. Transport failures surface the underlying error message.
func (h *ProxyHandler) generate(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.upstream+"/generate_podcast", r.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	} else {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer resp.Body.Close()

	relay(w, resp)
}

// status forwards a status poll to the backend. Transport failures collapse
// into the fixed status error payload.
func (h *ProxyHandler) status(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/podcast_status/")

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.upstream+"/podcast_status/"+id, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, statusErrorMessage)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, statusErrorMessage)
		return
	}
	defer resp.Body.Close()

	relay(w, resp)
}

// relay copies the backend response status and body to the client,
// preserving the backend's Content-Type when it sent one.
func relay(w http.ResponseWriter, resp *http.Response) {
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}

	w.Header().Set("Content-Type", ct)
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

// writeError sends a JSON error payload with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	body, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
