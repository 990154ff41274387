// package wizard implements the episode creation flow as a pure state machine.
//
// The flow walks seven fixed steps (welcome → sources → customize → style →
// plan → generating → result). Each step gates forward navigation behind a
// completion predicate; the generating step is driven by the system rather
// than user input. The TUI renders this machine and feeds it events, keeping
// every transition rule testable without a terminal.
package wizard

import (
	"fmt"
	"strings"

	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/shared"
)

// Step identifies a stage in the episode creation flow.
type Step int

const (
	StepWelcome Step = iota
	StepSources
	StepCustomize
	StepStyle
	StepPlan
	StepGenerating
	StepResult
)

// StepCount is the number of stages in the flow.
const StepCount = 7

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepSources:
		return "sources"
	case StepCustomize:
		return "customize"
	case StepStyle:
		return "style"
	case StepPlan:
		return "plan"
	case StepGenerating:
		return "generating"
	case StepResult:
		return "result"
	default:
		return ""
	}
}

// Wizard holds the state of a single episode creation flow.
type Wizard struct {
	step         Step
	uploads      []models.SourceFile
	urls         string
	analogies    string
	emphasis     string
	showEmphasis bool
	style        models.Style
	plan         models.Plan
	jobID        string
	audioURL     string
	genErr       error
}

// New returns a wizard at the welcome step with no collected input.
func New() *Wizard {
	return &Wizard{}
}

// Step returns the current stage.
func (w *Wizard) Step() Step { return w.step }

// Uploads returns the validated source files added so far.
func (w *Wizard) Uploads() []models.SourceFile { return w.uploads }

// URLs returns the raw URL input.
func (w *Wizard) URLs() string { return w.urls }

// Analogies returns the analogies field.
func (w *Wizard) Analogies() string { return w.analogies }

// Emphasis returns the emphasis field.
func (w *Wizard) Emphasis() string { return w.emphasis }

// ShowEmphasis reports whether the emphasis prompt has been revealed.
func (w *Wizard) ShowEmphasis() bool { return w.showEmphasis }

// Style returns the selected tone preset.
func (w *Wizard) Style() models.Style { return w.style }

// Plan returns the selected generation tier.
func (w *Wizard) Plan() models.Plan { return w.plan }

// JobID returns the backend job identifier once generation has been submitted.
func (w *Wizard) JobID() string { return w.jobID }

// AudioURL returns the generated episode's audio reference once ready.
func (w *Wizard) AudioURL() string { return w.audioURL }

// GenErr returns the most recent generation failure, if any.
func (w *Wizard) GenErr() error { return w.genErr }

// SetURLs replaces the raw URL input.
func (w *Wizard) SetURLs(s string) { w.urls = s }

// SetAnalogies replaces the analogies field.
func (w *Wizard) SetAnalogies(s string) { w.analogies = s }

// SetEmphasis replaces the emphasis field.
func (w *Wizard) SetEmphasis(s string) { w.emphasis = s }

// SetStyle selects a tone preset, rejecting values outside [models.Styles].
func (w *Wizard) SetStyle(s models.Style) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", shared.ErrInvalidStyle, s)
	}
	w.style = s
	return nil
}

// SetPlan selects a generation tier, rejecting values outside [models.Plans].
func (w *Wizard) SetPlan(p models.Plan) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", shared.ErrInvalidPlan, p)
	}
	w.plan = p
	return nil
}

// SetJobID records the backend job identifier as soon as submission returns,
// so the generating step can display it while polling.
func (w *Wizard) SetJobID(id string) { w.jobID = id }

// AddSource validates and appends an uploaded document. On a validation
// failure the upload list is unchanged and the error carries the shared
// sentinel for the rejected constraint.
func (w *Wizard) AddSource(f models.SourceFile) error {
	if err := f.Validate(); err != nil {
		return err
	}
	w.uploads = append(w.uploads, f)
	return nil
}

// RemoveSource drops the upload at index i. Out-of-range indices are a no-op.
func (w *Wizard) RemoveSource(i int) {
	if i < 0 || i >= len(w.uploads) {
		return
	}
	w.uploads = append(w.uploads[:i], w.uploads[i+1:]...)
}

// CommitAnalogies records that the analogies field lost focus. A non-blank
// value reveals the emphasis prompt; the reveal is a one-way latch and stays
// set even if analogies is later cleared.
func (w *Wizard) CommitAnalogies() {
	if strings.TrimSpace(w.analogies) != "" {
		w.showEmphasis = true
	}
}

// StepComplete reports whether the given step's completion predicate holds
// against current state.
func (w *Wizard) StepComplete(s Step) bool {
	switch s {
	case StepWelcome:
		return true
	case StepSources:
		return len(w.uploads) > 0 || strings.TrimSpace(w.urls) != ""
	case StepCustomize:
		if strings.TrimSpace(w.analogies) == "" {
			return false
		}
		return !w.showEmphasis || strings.TrimSpace(w.emphasis) != ""
	case StepStyle:
		return w.style != ""
	case StepPlan:
		return w.plan != ""
	default:
		// Generating advances via FinishGeneration; result is terminal.
		return false
	}
}

// Next advances one step when the current step is complete. Advancing off the
// plan step enters the generating stage and clears any recorded failure; the
// caller is expected to start generation. Returns false when blocked.
func (w *Wizard) Next() bool {
	if !w.StepComplete(w.step) {
		return false
	}

	if w.step == StepPlan {
		w.genErr = nil
		w.step = StepGenerating
		return true
	}

	w.step++
	return true
}

// Prev steps backwards. Navigation is unavailable on the welcome, generating,
// and result steps. Leaving the plan step backwards resets the plan selection.
func (w *Wizard) Prev() bool {
	switch w.step {
	case StepWelcome, StepGenerating, StepResult:
		return false
	case StepPlan:
		w.plan = ""
	}

	w.step--
	return true
}

// NavVisible reports whether the previous/next controls apply to the current
// step. The welcome step uses its own call to action, and the generating and
// result steps are system-driven.
func (w *Wizard) NavVisible() bool {
	switch w.step {
	case StepWelcome, StepGenerating, StepResult:
		return false
	default:
		return true
	}
}

// FinishGeneration records the completed job and advances to the result step.
// Ignored outside the generating stage.
func (w *Wizard) FinishGeneration(jobID, audioURL string) {
	if w.step != StepGenerating {
		return
	}
	w.jobID = jobID
	w.audioURL = audioURL
	w.genErr = nil
	w.step = StepResult
}

// FailGeneration records the failure and returns to the plan step so the
// user can adjust and retry. Ignored outside the generating stage.
func (w *Wizard) FailGeneration(err error) {
	if w.step != StepGenerating {
		return
	}
	w.genErr = err
	w.step = StepPlan
}

// Reset returns the wizard to a fresh welcome step, dropping all input.
func (w *Wizard) Reset() {
	*w = Wizard{}
}

// Request snapshots the collected inputs as a backend request. The raw URL
// input is split on whitespace with blank entries dropped.
func (w *Wizard) Request() models.GenerationRequest {
	return models.GenerationRequest{
		URLs:      strings.Fields(w.urls),
		Sources:   append([]models.SourceFile(nil), w.uploads...),
		Analogies: strings.TrimSpace(w.analogies),
		Emphasis:  strings.TrimSpace(w.emphasis),
		Style:     w.style,
		Plan:      w.plan,
	}
}
