// Podcast backend [Generator] implementation
//
// Communicates with the generation server running on port 8000. The server
// wraps the synthesis pipeline that turns source documents and links into
// finished episodes; jobs are asynchronous and polled by id.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/shared"
)

const defaultBackendURL string = "http://localhost:8000"

// PodcastService implements the Generator interface against the generation
// server's HTTP API.
type PodcastService struct {
	baseURL    string
	httpClient *http.Client
}

// NewPodcastService creates a new podcast backend client.
func NewPodcastService(baseURL string, client *http.Client) *PodcastService {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &PodcastService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns the backend name.
func (p *PodcastService) Name() string {
	return "Podcast Backend"
}

func (p *PodcastService) doRequest(ctx context.Context, method, endpoint string, payload, result any) error {
	apiURL := p.baseURL + endpoint

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("podcast API error (status %d): %s", resp.StatusCode, errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("podcast API error (status %d): %s", resp.StatusCode, errResp.Error)
			}
		}
		return fmt.Errorf("podcast API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Submit sends a generation request to the backend.
//
// Calls POST /generate_podcast on the server.
func (p *PodcastService) Submit(ctx context.Context, req models.GenerationRequest) (*models.Job, error) {
	var created struct {
		JobID  string `json:"job_id"`
		Status string `json:"status"`
	}

	if err := p.doRequest(ctx, http.MethodPost, "/generate_podcast", req, &created); err != nil {
		return nil, err
	}

	if created.JobID == "" {
		return nil, fmt.Errorf("%w: backend returned no job id", shared.ErrGenerationFailed)
	}

	status := models.JobState(created.Status)
	if created.Status == "" {
		status = models.JobPending
	}

	return &models.Job{
		ID:        created.JobID,
		Status:    status,
		CreatedAt: time.Now(),
	}, nil
}

// Status retrieves the current state of a generation job.
//
// Calls GET /podcast_status/{id} on the server.
func (p *PodcastService) Status(ctx context.Context, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: empty job id", shared.ErrJobNotFound)
	}

	var job models.Job
	endpoint := fmt.Sprintf("/podcast_status/%s", url.PathEscape(jobID))
	if err := p.doRequest(ctx, http.MethodGet, endpoint, nil, &job); err != nil {
		return nil, err
	}

	if job.ID == "" {
		job.ID = jobID
	}

	return &job, nil
}
