// Raw HTTP access to the podcast backend, used by the api command for ad hoc
// endpoint inspection.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIService issues requests against the backend and captures each response
// verbatim, leaving interpretation to the caller.
type APIService struct {
	baseURL string
	client  *http.Client
}

// NewAPIService creates an API service for the podcast backend.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{baseURL: baseURL, client: client}
}

// APIResponse carries a backend reply without interpretation. Bodies that
// parse as JSON are decoded opportunistically so callers can pretty-print.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the response status is in the 2xx range.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get fetches path relative to the backend base URL.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	return a.do(ctx, http.MethodGet, path, nil)
}

// Post sends a JSON payload to path relative to the backend base URL.
func (a *APIService) Post(ctx context.Context, path string, payload []byte) (*APIResponse, error) {
	return a.do(ctx, http.MethodPost, path, payload)
}

// do performs the request and captures the response. A nil payload means no
// body and no Content-Type header.
func (a *APIService) do(ctx context.Context, method, path string, payload []byte) (*APIResponse, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	out := &APIResponse{StatusCode: resp.StatusCode, Headers: resp.Header, Body: raw}

	var decoded any
	if json.Unmarshal(raw, &decoded) == nil {
		out.IsJSON = true
		out.JSONData = decoded
	}

	return out, nil
}
