// package models defines the data model for the podcast studio
package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/podx/internal/shared"
)

// MaxSourceFileSize is the upper bound for a single uploaded source document.
const MaxSourceFileSize int64 = 10 << 20 // 10 MB

// Accepted source document extensions, compared case-insensitively.
var sourceExtensions = []string{".pdf", ".txt", ".doc", ".docx"}

// Style enumerates the tone presets for a generated episode.
type Style string

const (
	StyleCasual       Style = "casual"
	StyleProfessional Style = "professional"
	StyleEducational  Style = "educational"
	StyleEntertaining Style = "entertaining"
)

// Styles returns the valid styles in display order.
func Styles() []Style {
	return []Style{StyleCasual, StyleProfessional, StyleEducational, StyleEntertaining}
}

// Valid reports whether the style is one of the accepted presets.
func (s Style) Valid() bool {
	switch s {
	case StyleCasual, StyleProfessional, StyleEducational, StyleEntertaining:
		return true
	default:
		return false
	}
}

// Plan enumerates the generation tiers.
type Plan string

const (
	PlanStingy Plan = "stingy" // basic tier
	PlanSigma  Plan = "sigma"  // premium tier
)

// Plans returns the valid plans in display order.
func Plans() []Plan {
	return []Plan{PlanStingy, PlanSigma}
}

// Valid reports whether the plan is one of the accepted tiers.
func (p Plan) Valid() bool {
	return p == PlanStingy || p == PlanSigma
}

// SourceFile is a local document selected as episode source material.
type SourceFile struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Size int64  `json:"size"`
}

// Validate checks the upload constraints: size cap and document extension.
func (f SourceFile) Validate() error {
	if f.Size > MaxSourceFileSize {
		return fmt.Errorf("%w: %s is %s (limit %s)",
			shared.ErrFileTooLarge, f.Name, shared.FormatBytes(f.Size), shared.FormatBytes(MaxSourceFileSize))
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	for _, allowed := range sourceExtensions {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("%w: %s (allowed: pdf, txt, doc, docx)", shared.ErrUnsupportedFileType, f.Name)
}

// GenerationRequest is the payload submitted to POST /generate_podcast.
type GenerationRequest struct {
	URLs      []string     `json:"urls,omitempty"`
	Sources   []SourceFile `json:"source_files,omitempty"`
	Analogies string       `json:"analogies"`
	Emphasis  string       `json:"emphasis,omitempty"`
	Style     Style        `json:"style"`
	Plan      Plan         `json:"plan"`
}

// Validate checks that the request carries at least one source, only valid
// uploads, and recognized style/plan values.
func (r GenerationRequest) Validate() error {
	if len(r.URLs) == 0 && len(r.Sources) == 0 {
		return fmt.Errorf("%w: provide at least one URL or source file", shared.ErrNoSources)
	}

	for _, f := range r.Sources {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	if !r.Style.Valid() {
		return fmt.Errorf("%w: %q", shared.ErrInvalidStyle, r.Style)
	}
	if !r.Plan.Valid() {
		return fmt.Errorf("%w: %q", shared.ErrInvalidPlan, r.Plan)
	}

	return nil
}

// JobState is the lifecycle state reported by the backend for a generation job.
type JobState string

const (
	JobPending    JobState = "pending"
	JobProcessing JobState = "processing"
	JobReady      JobState = "ready"
	JobFailed     JobState = "failed"
)

// Terminal reports whether the state is final (no further polling needed).
func (s JobState) Terminal() bool {
	return s == JobReady || s == JobFailed
}

// Job tracks a generation request accepted by the backend.
type Job struct {
	ID        string    `json:"job_id"`
	Status    JobState  `json:"status"`
	AudioURL  string    `json:"audio_url,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that the job carries an identifier.
func (j Job) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("%w: job id is empty", shared.ErrInvalidInput)
	}
	return nil
}

// Episode is a finished podcast ready for playback and export.
type Episode struct {
	Title       string    `json:"title"`
	JobID       string    `json:"job_id"`
	AudioURL    string    `json:"audio_url,omitempty"`
	AudioPath   string    `json:"audio_path,omitempty"`
	Duration    float64   `json:"duration_seconds,omitempty"`
	Style       Style     `json:"style,omitempty"`
	Plan        Plan      `json:"plan,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
