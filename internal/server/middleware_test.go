package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/podx/internal/shared"
)

func TestLogging(t *testing.T) {
	t.Run("Records Method Path And Status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := shared.NewLogger(&buf)

		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/podcast_status/job-1", nil))

		out := buf.String()
		if !strings.Contains(out, "GET") {
			t.Errorf("expected method in log output, got %s", out)
		}
		if !strings.Contains(out, "/podcast_status/job-1") {
			t.Errorf("expected path in log output, got %s", out)
		}
		if !strings.Contains(out, "404") {
			t.Errorf("expected status in log output, got %s", out)
		}
	})

	t.Run("Defaults To 200 When Handler Writes Nothing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := shared.NewLogger(&buf)

		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(buf.String(), "200") {
			t.Errorf("expected default status 200 in log output, got %s", buf.String())
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Generates When Missing", func(t *testing.T) {
		var seen string
		handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("X-Request-ID")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if seen == "" {
			t.Error("expected generated id on request")
		}
		if rec.Header().Get("X-Request-ID") != seen {
			t.Error("expected matching id on response")
		}
	})

	t.Run("Preserves Client Provided ID", func(t *testing.T) {
		handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-id-7")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "client-id-7" {
			t.Errorf("expected preserved id, got %q", got)
		}
	})
}
