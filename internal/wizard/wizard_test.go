package wizard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/shared"
)

// completeThrough fills in just enough state to satisfy every predicate up to
// and including the given step, then walks the wizard forward to it.
func completeThrough(t *testing.T, target Step) *Wizard {
	t.Helper()

	w := New()
	w.SetURLs("https://example.com/article")
	w.SetAnalogies("like a relay race")
	if err := w.SetStyle(models.StyleCasual); err != nil {
		t.Fatalf("failed to set style: %v", err)
	}
	if err := w.SetPlan(models.PlanStingy); err != nil {
		t.Fatalf("failed to set plan: %v", err)
	}

	for w.Step() < target {
		if !w.Next() {
			t.Fatalf("wizard stuck at %s on the way to %s", w.Step(), target)
		}
	}
	return w
}

func TestStepPredicates(t *testing.T) {
	t.Run("welcome is always complete", func(t *testing.T) {
		if !New().StepComplete(StepWelcome) {
			t.Error("welcome should be complete on a fresh wizard")
		}
	})

	t.Run("sources", func(t *testing.T) {
		tests := []struct {
			name  string
			setup func(w *Wizard)
			want  bool
		}{
			{
				name:  "empty input is incomplete",
				setup: func(w *Wizard) {},
				want:  false,
			},
			{
				name:  "whitespace-only urls is incomplete",
				setup: func(w *Wizard) { w.SetURLs("   \n\t") },
				want:  false,
			},
			{
				name:  "non-blank urls completes",
				setup: func(w *Wizard) { w.SetURLs("https://example.com") },
				want:  true,
			},
			{
				name: "an upload completes without urls",
				setup: func(w *Wizard) {
					if err := w.AddSource(models.SourceFile{Name: "paper.pdf", Size: 1024}); err != nil {
						t.Fatalf("unexpected AddSource error: %v", err)
					}
				},
				want: true,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := New()
				tt.setup(w)
				if got := w.StepComplete(StepSources); got != tt.want {
					t.Errorf("StepComplete(StepSources) = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("customize", func(t *testing.T) {
		t.Run("blank analogies is incomplete", func(t *testing.T) {
			w := New()
			if w.StepComplete(StepCustomize) {
				t.Error("expected incomplete with blank analogies")
			}
		})

		t.Run("analogies alone completes before the latch", func(t *testing.T) {
			w := New()
			w.SetAnalogies("like gears in a clock")
			if !w.StepComplete(StepCustomize) {
				t.Error("expected complete before emphasis is revealed")
			}
		})

		t.Run("latch makes emphasis required", func(t *testing.T) {
			w := New()
			w.SetAnalogies("like gears in a clock")
			w.CommitAnalogies()

			if w.StepComplete(StepCustomize) {
				t.Error("expected incomplete once emphasis is revealed but blank")
			}

			w.SetEmphasis("focus on the escapement")
			if !w.StepComplete(StepCustomize) {
				t.Error("expected complete with both fields filled")
			}
		})
	})

	t.Run("style requires a selection", func(t *testing.T) {
		w := New()
		if w.StepComplete(StepStyle) {
			t.Error("expected incomplete with no style")
		}
		if err := w.SetStyle(models.StyleEducational); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.StepComplete(StepStyle) {
			t.Error("expected complete after selecting a style")
		}
	})

	t.Run("plan requires a selection", func(t *testing.T) {
		w := New()
		if w.StepComplete(StepPlan) {
			t.Error("expected incomplete with no plan")
		}
		if err := w.SetPlan(models.PlanSigma); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.StepComplete(StepPlan) {
			t.Error("expected complete after selecting a plan")
		}
	})

	t.Run("generating and result never report complete", func(t *testing.T) {
		w := completeThrough(t, StepGenerating)
		if w.StepComplete(StepGenerating) {
			t.Error("generating should be system-driven, not user-complete")
		}

		w.FinishGeneration("job-1", "http://localhost:8000/audio/job-1.mp3")
		if w.StepComplete(StepResult) {
			t.Error("result is terminal and never complete")
		}
	})
}

func TestNavigation(t *testing.T) {
	t.Run("Next is a no-op on an incomplete step", func(t *testing.T) {
		w := New()
		w.Next() // welcome always completes

		if w.Step() != StepSources {
			t.Fatalf("expected sources, got %s", w.Step())
		}
		if w.Next() {
			t.Error("expected Next to refuse with no sources")
		}
		if w.Step() != StepSources {
			t.Errorf("expected to stay on sources, got %s", w.Step())
		}
	})

	t.Run("Next walks the happy path in order", func(t *testing.T) {
		w := completeThrough(t, StepGenerating)
		if w.Step() != StepGenerating {
			t.Errorf("expected generating, got %s", w.Step())
		}
	})

	t.Run("Next cannot leave generating or result", func(t *testing.T) {
		w := completeThrough(t, StepGenerating)
		if w.Next() {
			t.Error("Next should refuse on generating")
		}

		w.FinishGeneration("job-1", "audio.mp3")
		if w.Next() {
			t.Error("Next should refuse on result")
		}
	})

	t.Run("Prev is hidden on welcome", func(t *testing.T) {
		w := New()
		if w.Prev() {
			t.Error("Prev should refuse on welcome")
		}
		if w.Step() != StepWelcome {
			t.Errorf("expected welcome, got %s", w.Step())
		}
	})

	t.Run("Prev is hidden while generating and on result", func(t *testing.T) {
		w := completeThrough(t, StepGenerating)
		if w.Prev() {
			t.Error("Prev should refuse while generating")
		}

		w.FinishGeneration("job-1", "audio.mp3")
		if w.Prev() {
			t.Error("Prev should refuse on result")
		}
	})

	t.Run("Prev from plan resets the plan selection", func(t *testing.T) {
		w := completeThrough(t, StepPlan)
		if w.Plan() != models.PlanStingy {
			t.Fatalf("expected stingy plan, got %s", w.Plan())
		}

		if !w.Prev() {
			t.Fatal("expected Prev to succeed from plan")
		}
		if w.Step() != StepStyle {
			t.Errorf("expected style, got %s", w.Step())
		}
		if w.Plan() != "" {
			t.Errorf("expected plan reset, got %s", w.Plan())
		}
		if w.Style() != models.StyleCasual {
			t.Errorf("style should survive Prev, got %s", w.Style())
		}
	})

	t.Run("NavVisible only on the middle steps", func(t *testing.T) {
		visible := map[Step]bool{
			StepWelcome:    false,
			StepSources:    true,
			StepCustomize:  true,
			StepStyle:      true,
			StepPlan:       true,
			StepGenerating: false,
			StepResult:     false,
		}

		for step, want := range visible {
			var w *Wizard
			if step == StepResult {
				w = completeThrough(t, StepGenerating)
				w.FinishGeneration("job-1", "audio.mp3")
			} else {
				w = completeThrough(t, step)
			}
			if w.Step() != step {
				t.Fatalf("setup landed on %s, want %s", w.Step(), step)
			}
			if got := w.NavVisible(); got != want {
				t.Errorf("NavVisible at %s = %v, want %v", step, got, want)
			}
		}
	})
}

func TestGenerationTransitions(t *testing.T) {
	t.Run("advancing off plan clears a prior failure", func(t *testing.T) {
		w := completeThrough(t, StepGenerating)
		w.FailGeneration(fmt.Errorf("backend exploded"))

		if w.Step() != StepPlan {
			t.Fatalf("expected plan after failure, got %s", w.Step())
		}
		if w.GenErr() == nil {
			t.Fatal("expected failure to be recorded")
		}

		if !w.Next() {
			t.Fatal("expected retry to re-enter generating")
		}
		if w.Step() != StepGenerating {
			t.Errorf("expected generating, got %s", w.Step())
		}
		if w.GenErr() != nil {
			t.Errorf("expected failure cleared on retry, got %v", w.GenErr())
		}
	})

	t.Run("FinishGeneration lands on result with the audio reference", func(t *testing.T) {
		w := completeThrough(t, StepGenerating)
		w.SetJobID("job-42")
		w.FinishGeneration("job-42", "http://localhost:8000/audio/job-42.mp3")

		if w.Step() != StepResult {
			t.Errorf("expected result, got %s", w.Step())
		}
		if w.JobID() != "job-42" {
			t.Errorf("expected job id preserved, got %s", w.JobID())
		}
		if w.AudioURL() != "http://localhost:8000/audio/job-42.mp3" {
			t.Errorf("unexpected audio url %s", w.AudioURL())
		}
	})

	t.Run("transitions are ignored outside generating", func(t *testing.T) {
		w := completeThrough(t, StepPlan)

		w.FinishGeneration("job-1", "audio.mp3")
		if w.Step() != StepPlan {
			t.Errorf("FinishGeneration should be ignored on plan, got %s", w.Step())
		}

		w.FailGeneration(fmt.Errorf("nope"))
		if w.Step() != StepPlan || w.GenErr() != nil {
			t.Error("FailGeneration should be ignored on plan")
		}
	})
}

func TestEmphasisLatch(t *testing.T) {
	t.Run("blur with blank analogies does not latch", func(t *testing.T) {
		w := New()
		w.SetAnalogies("   ")
		w.CommitAnalogies()

		if w.ShowEmphasis() {
			t.Error("blank analogies should not reveal emphasis")
		}
	})

	t.Run("latch survives clearing analogies", func(t *testing.T) {
		w := New()
		w.SetAnalogies("like a river delta")
		w.CommitAnalogies()

		if !w.ShowEmphasis() {
			t.Fatal("expected latch set")
		}

		w.SetAnalogies("")
		w.CommitAnalogies()

		if !w.ShowEmphasis() {
			t.Error("latch should never unset")
		}
	})
}

func TestSourceManagement(t *testing.T) {
	t.Run("AddSource rejects oversized files", func(t *testing.T) {
		w := New()
		err := w.AddSource(models.SourceFile{Name: "huge.pdf", Size: models.MaxSourceFileSize + 1})

		if !errors.Is(err, shared.ErrFileTooLarge) {
			t.Errorf("expected ErrFileTooLarge, got %v", err)
		}
		if len(w.Uploads()) != 0 {
			t.Error("rejected upload should not be appended")
		}
	})

	t.Run("AddSource rejects unsupported extensions", func(t *testing.T) {
		w := New()
		err := w.AddSource(models.SourceFile{Name: "notes.exe", Size: 1024})

		if !errors.Is(err, shared.ErrUnsupportedFileType) {
			t.Errorf("expected ErrUnsupportedFileType, got %v", err)
		}
	})

	t.Run("RemoveSource drops by index and ignores out of range", func(t *testing.T) {
		w := New()
		for _, name := range []string{"a.pdf", "b.txt", "c.docx"} {
			if err := w.AddSource(models.SourceFile{Name: name, Size: 10}); err != nil {
				t.Fatalf("unexpected error adding %s: %v", name, err)
			}
		}

		w.RemoveSource(1)
		if len(w.Uploads()) != 2 {
			t.Fatalf("expected 2 uploads, got %d", len(w.Uploads()))
		}
		if w.Uploads()[0].Name != "a.pdf" || w.Uploads()[1].Name != "c.docx" {
			t.Errorf("unexpected uploads after removal: %+v", w.Uploads())
		}

		w.RemoveSource(-1)
		w.RemoveSource(99)
		if len(w.Uploads()) != 2 {
			t.Error("out of range removal should be a no-op")
		}
	})
}

func TestSelectionValidation(t *testing.T) {
	t.Run("SetStyle rejects unknown presets", func(t *testing.T) {
		w := New()
		if err := w.SetStyle("sarcastic"); !errors.Is(err, shared.ErrInvalidStyle) {
			t.Errorf("expected ErrInvalidStyle, got %v", err)
		}
		if w.Style() != "" {
			t.Error("invalid style should not stick")
		}
	})

	t.Run("SetPlan rejects unknown tiers", func(t *testing.T) {
		w := New()
		if err := w.SetPlan("platinum"); !errors.Is(err, shared.ErrInvalidPlan) {
			t.Errorf("expected ErrInvalidPlan, got %v", err)
		}
		if w.Plan() != "" {
			t.Error("invalid plan should not stick")
		}
	})
}

func TestRequest(t *testing.T) {
	t.Run("snapshots inputs and splits urls", func(t *testing.T) {
		w := New()
		w.SetURLs(" https://a.example/one \nhttps://b.example/two\t")
		w.SetAnalogies("  like tides  ")
		w.CommitAnalogies()
		w.SetEmphasis(" moon phases ")
		if err := w.SetStyle(models.StyleEntertaining); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.SetPlan(models.PlanSigma); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.AddSource(models.SourceFile{Name: "tides.pdf", Size: 2048}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := w.Request()

		if len(req.URLs) != 2 || req.URLs[0] != "https://a.example/one" || req.URLs[1] != "https://b.example/two" {
			t.Errorf("unexpected urls: %v", req.URLs)
		}
		if req.Analogies != "like tides" {
			t.Errorf("expected trimmed analogies, got %q", req.Analogies)
		}
		if req.Emphasis != "moon phases" {
			t.Errorf("expected trimmed emphasis, got %q", req.Emphasis)
		}
		if req.Style != models.StyleEntertaining || req.Plan != models.PlanSigma {
			t.Errorf("unexpected selections: %s/%s", req.Style, req.Plan)
		}
		if err := req.Validate(); err != nil {
			t.Errorf("snapshot should validate, got %v", err)
		}
	})

	t.Run("mutating the snapshot does not touch wizard uploads", func(t *testing.T) {
		w := New()
		if err := w.AddSource(models.SourceFile{Name: "a.pdf", Size: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := w.Request()
		req.Sources[0].Name = "mutated.pdf"

		if w.Uploads()[0].Name != "a.pdf" {
			t.Error("request snapshot should copy the uploads slice")
		}
	})
}

func TestReset(t *testing.T) {
	w := completeThrough(t, StepGenerating)
	w.FinishGeneration("job-1", "audio.mp3")
	w.Reset()

	if w.Step() != StepWelcome {
		t.Errorf("expected welcome after reset, got %s", w.Step())
	}
	if w.URLs() != "" || len(w.Uploads()) != 0 || w.Style() != "" || w.Plan() != "" {
		t.Error("expected all input dropped after reset")
	}
	if w.ShowEmphasis() {
		t.Error("reset starts a fresh flow with the latch unset")
	}
}
