package shared

import "fmt"

// Sentinel errors wrapped by command and service code so callers can branch
// with [errors.Is].
var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// configuration
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// backend communication
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// generation lifecycle
	ErrNoSources        = fmt.Errorf("no sources provided")
	ErrGenerationFailed = fmt.Errorf("podcast generation failed")
	ErrJobNotFound      = fmt.Errorf("job not found")
	ErrPollTimeout      = fmt.Errorf("status polling timed out")

	// upload validation
	ErrFileTooLarge        = fmt.Errorf("file too large")
	ErrUnsupportedFileType = fmt.Errorf("unsupported file type")

	// playback
	ErrInvalidRate = fmt.Errorf("invalid playback rate")
	ErrPlayback    = fmt.Errorf("playback failed")

	// user input
	ErrInvalidStyle    = fmt.Errorf("invalid style")
	ErrInvalidPlan     = fmt.Errorf("invalid plan")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
