package tasks

import (
	"fmt"

	"github.com/desertthunder/podx/internal/models"
)

// ProgressUpdate is one event on a generation run's progress channel. The CLI
// prints Message; richer front ends can inspect Phase and Data.
type ProgressUpdate struct {
	Phase   Phase
	Step    int // 1-based position within the run
	Total   int
	Message string
	Data    any // phase-dependent: *models.Job, URL, or file path
}

// Phase identifies which stage of a generation run an update belongs to.
type Phase int

const (
	ValidateSources Phase = iota
	SubmitRequest
	PollStatus
	DownloadAudio
)

func (p Phase) String() string {
	switch p {
	case ValidateSources:
		return "validate_sources"
	case SubmitRequest:
		return "submit_request"
	case PollStatus:
		return "poll_status"
	case DownloadAudio:
		return "download_audio"
	default:
		return ""
	}
}

// totalSteps is the number of phases a full generation run walks through.
const totalSteps = 4

func validateSourcesUpdate(files, urls int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ValidateSources,
		Step:    1,
		Total:   totalSteps,
		Message: fmt.Sprintf("Validating %d file(s) and %d url(s)...", files, urls),
	}
}

func submitRequestUpdate(backend string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SubmitRequest,
		Step:    2,
		Total:   totalSteps,
		Message: fmt.Sprintf("Submitting request to %s...", backend),
	}
}

func jobAcceptedUpdate(job *models.Job) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SubmitRequest,
		Step:    2,
		Total:   totalSteps,
		Message: fmt.Sprintf("Job accepted: %s", job.ID),
		Data:    job,
	}
}

func pollStatusUpdate(poll int, job *models.Job) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PollStatus,
		Step:    3,
		Total:   totalSteps,
		Message: fmt.Sprintf("[poll %d] job %s is %s...", poll, job.ID, job.Status),
		Data:    job,
	}
}

func pollFailedUpdate(poll, failures, max int, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PollStatus,
		Step:    3,
		Total:   totalSteps,
		Message: fmt.Sprintf("[poll %d] status check failed (%d/%d): %v", poll, failures, max, err),
	}
}

func downloadAudioUpdate(jobID, url string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DownloadAudio,
		Step:    4,
		Total:   totalSteps,
		Message: fmt.Sprintf("Downloading audio for %s...", jobID),
		Data:    url,
	}
}

func downloadCompleteUpdate(jobID, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DownloadAudio,
		Step:    4,
		Total:   totalSteps,
		Message: fmt.Sprintf("✓ Audio saved to %s", path),
		Data:    path,
	}
}
