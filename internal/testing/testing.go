// package testing provides test doubles and filesystem helpers shared
// across package tests
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/desertthunder/podx/internal/models"
)

// MockGenerator is a canned test double for [services.Generator]
type MockGenerator struct {
	SubmitJob *models.Job
	SubmitErr error
	StatusJob *models.Job
	StatusErr error

	Submitted []models.GenerationRequest
	StatusIDs []string
}

func (m *MockGenerator) Submit(ctx context.Context, req models.GenerationRequest) (*models.Job, error) {
	m.Submitted = append(m.Submitted, req)
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	if m.SubmitJob != nil {
		return m.SubmitJob, nil
	}
	return &models.Job{ID: "mock-job", Status: models.JobPending, CreatedAt: time.Now()}, nil
}

func (m *MockGenerator) Status(ctx context.Context, jobID string) (*models.Job, error) {
	m.StatusIDs = append(m.StatusIDs, jobID)
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	if m.StatusJob != nil {
		return m.StatusJob, nil
	}
	return &models.Job{ID: jobID, Status: models.JobReady}, nil
}

func (m *MockGenerator) Name() string { return "mock" }

// FWriter fails every Write, with Err when set.
type FWriter struct {
	Err error
}

func (f *FWriter) Write([]byte) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return 0, errors.New("write failed")
}

// LimitedWriter forwards a fixed number of writes to target, then fails.
type LimitedWriter struct {
	remaining int
	target    io.Writer
}

// NewLimitedWriter allows maxWrites-written further writes through to target.
func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{remaining: maxWrites - written, target: target}
}

func (l *LimitedWriter) Write(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, errors.New("write limit exceeded")
	}

	l.remaining--
	return l.target.Write(p)
}

// MockRoundTripper answers every request with a scripted response or error,
// counting round trips.
type MockRoundTripper struct {
	Response *http.Response
	Err      error
	Calls    int
}

func NewMockRoundTripper(resp *http.Response, err error) *MockRoundTripper {
	return &MockRoundTripper{Response: resp, Err: err}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	m.Calls++
	return m.Response, m.Err
}

// FCloser is a response body whose reads always fail.
type FCloser struct{}

func (FCloser) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func (FCloser) Close() error { return nil }

// MustGetwd returns the working directory or fails the test.
func MustGetwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return wd
}

// MustChdir changes into dir or fails the test.
func MustChdir(t *testing.T, dir string) {
	t.Helper()

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
}

// AssertFileExists fails the test when no file exists at path.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

// AssertDirExists fails the test when path is missing or not a directory.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory at %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

// MustReadFile returns the contents of path or fails the test.
func MustReadFile(t *testing.T, path string) string {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(raw)
}
