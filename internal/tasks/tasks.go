// package tasks implements podcast episode generation operations.
//
// The core abstraction is Engine, which orchestrates generation runs: request validation, submission, status polling, and audio downloads.
// Operations emit progress updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/desertthunder/podx/internal/formatter"
	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/services"
	"github.com/desertthunder/podx/internal/shared"
)

// PollPolicy bounds the status polling loop for a generation job.
type PollPolicy struct {
	Interval    time.Duration // Delay between status polls
	Timeout     time.Duration // Ceiling on total waiting time
	MaxFailures int           // Consecutive poll failures tolerated before giving up
}

// DefaultPollPolicy returns the polling bounds used when none are configured.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Interval:    3 * time.Second,
		Timeout:     10 * time.Minute,
		MaxFailures: 5,
	}
}

// GenerateResult contains all data from a full generation run.
type GenerateResult struct {
	Job      *models.Job   // Terminal job reported by the backend
	Duration time.Duration // Wall time from submission to terminal state
	Polls    int           // Status polls performed
}

// Engine defines operations for producing podcast episodes.
type Engine interface {
	// Generate performs a full run by validating the request, submitting it to the backend, and polling until the job reaches a terminal state.
	Generate(ctx context.Context, progress chan<- ProgressUpdate, req models.GenerationRequest) (*GenerateResult, error)

	// Await polls an already submitted job until it reaches a terminal state.
	Await(ctx context.Context, progress chan<- ProgressUpdate, jobID string) (*models.Job, error)

	// Download fetches the finished episode audio into the given directory and returns the saved path.
	Download(ctx context.Context, progress chan<- ProgressUpdate, job *models.Job, dir string) (string, error)
}

// EpisodeEngine implements Engine against a generation backend.
// Contains dependencies on the backend client and polling policy.
type EpisodeEngine struct {
	generator services.Generator
	baseURL   string
	policy    PollPolicy
}

// NewEpisodeEngine creates a new EpisodeEngine with the provided backend.
//
// baseURL resolves relative audio urls reported by the backend. Zero policy
// fields fall back to DefaultPollPolicy values.
func NewEpisodeEngine(generator services.Generator, baseURL string, policy PollPolicy) *EpisodeEngine {
	def := DefaultPollPolicy()
	if policy.Interval <= 0 {
		policy.Interval = def.Interval
	}
	if policy.Timeout <= 0 {
		policy.Timeout = def.Timeout
	}
	if policy.MaxFailures <= 0 {
		policy.MaxFailures = def.MaxFailures
	}

	return &EpisodeEngine{
		generator: generator,
		baseURL:   baseURL,
		policy:    policy,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *EpisodeEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
		// consumer is behind, drop the update
	}
}

// Generate performs a full generation run: validate, submit, await.
func (e *EpisodeEngine) Generate(ctx context.Context, progress chan<- ProgressUpdate, req models.GenerationRequest) (*GenerateResult, error) {
	if e.generator == nil {
		return nil, fmt.Errorf("%w: generation backend not initialized", shared.ErrServiceUnavailable)
	}

	start := time.Now()

	e.sendProgress(progress, validateSourcesUpdate(len(req.Sources), len(req.URLs)))
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e.sendProgress(progress, submitRequestUpdate(e.generator.Name()))
	job, err := e.generator.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrGenerationFailed, err)
	}

	e.sendProgress(progress, jobAcceptedUpdate(job))

	final, polls, err := e.await(ctx, progress, job.ID)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Job:      final,
		Duration: time.Since(start),
		Polls:    polls,
	}, nil
}

// Await polls the backend until the job reaches a terminal state.
func (e *EpisodeEngine) Await(ctx context.Context, progress chan<- ProgressUpdate, jobID string) (*models.Job, error) {
	if e.generator == nil {
		return nil, fmt.Errorf("%w: generation backend not initialized", shared.ErrServiceUnavailable)
	}

	job, _, err := e.await(ctx, progress, jobID)
	return job, err
}

// await is the bounded polling loop. Polls are paced by a rate limiter, the
// total wait is capped by the policy timeout, and consecutive status
// failures beyond the policy bound abort the run.
func (e *EpisodeEngine) await(ctx context.Context, progress chan<- ProgressUpdate, jobID string) (*models.Job, int, error) {
	if jobID == "" {
		return nil, 0, fmt.Errorf("%w: empty job id", shared.ErrJobNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, e.policy.Timeout)
	defer cancel()

	limiter := rate.NewLimiter(rate.Every(e.policy.Interval), 1)

	polls := 0
	failures := 0

	for {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, polls, ctx.Err()
			}
			// Deadline hit, or the next poll would land past it.
			return nil, polls, fmt.Errorf("%w: job %s not finished after %s", shared.ErrPollTimeout, jobID, e.policy.Timeout)
		}

		polls++
		job, err := e.generator.Status(ctx, jobID)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, polls, fmt.Errorf("%w: job %s not finished after %s", shared.ErrPollTimeout, jobID, e.policy.Timeout)
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, polls, ctx.Err()
			}

			failures++
			e.sendProgress(progress, pollFailedUpdate(polls, failures, e.policy.MaxFailures, err))
			if failures >= e.policy.MaxFailures {
				return nil, polls, fmt.Errorf("%w: %d consecutive status failures: %v", shared.ErrGenerationFailed, failures, err)
			}
			continue
		}

		failures = 0
		e.sendProgress(progress, pollStatusUpdate(polls, job))

		switch job.Status {
		case models.JobReady:
			return job, polls, nil
		case models.JobFailed:
			msg := job.Error
			if msg == "" {
				msg = "backend reported failure"
			}
			return nil, polls, fmt.Errorf("%w: %s", shared.ErrGenerationFailed, msg)
		}
	}
}

// Download fetches the finished episode audio into dir.
func (e *EpisodeEngine) Download(ctx context.Context, progress chan<- ProgressUpdate, job *models.Job, dir string) (string, error) {
	if job == nil || job.AudioURL == "" {
		return "", fmt.Errorf("%w: job has no audio url", shared.ErrGenerationFailed)
	}

	audioURL := job.AudioURL
	if !strings.HasPrefix(audioURL, "http://") && !strings.HasPrefix(audioURL, "https://") {
		audioURL = strings.TrimRight(e.baseURL, "/") + "/" + strings.TrimLeft(audioURL, "/")
	}

	e.sendProgress(progress, downloadAudioUpdate(job.ID, audioURL))

	path := filepath.Join(dir, fmt.Sprintf("%s.mp3", job.ID))
	saved, err := formatter.SaveAudio(ctx, audioURL, path)
	if err != nil {
		return "", fmt.Errorf("failed to download audio: %w", err)
	}

	e.sendProgress(progress, downloadCompleteUpdate(job.ID, saved))
	return saved, nil
}
