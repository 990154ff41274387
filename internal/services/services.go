// package services defines interface Generator for interacting with the
// podcast generation backend over HTTP.
package services

import (
	"context"

	"github.com/desertthunder/podx/internal/models"
)

// Generator defines the interface for podcast generation backends that accept
// source material and produce finished audio episodes.
type Generator interface {
	// Submit sends a generation request to the backend.
	// Returns the created job with its id and initial status.
	Submit(ctx context.Context, req models.GenerationRequest) (*models.Job, error)

	// Status retrieves the current state of a generation job by id.
	Status(ctx context.Context, jobID string) (*models.Job, error)

	// Name returns the name of the backend (e.g., "Podcast Backend")
	Name() string
}
