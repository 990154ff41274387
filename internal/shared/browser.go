package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

var getRuntime = func() string { return runtime.GOOS }

// openers maps GOOS to the command that hands a URL to the default browser.
var openers = map[string][]string{
	"darwin":  {"open"},
	"linux":   {"xdg-open"},
	"windows": {"cmd", "/c", "start"},
}

// browserCommand builds the platform command that opens url.
func browserCommand(goos, url string) (*exec.Cmd, error) {
	argv, ok := openers[goos]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}

	args := append(append([]string{}, argv[1:]...), url)
	return exec.Command(argv[0], args...), nil
}

// OpenBrowser opens the default system browser at url. Used by the status
// command's --open flag to listen to a finished episode.
func OpenBrowser(url string) error {
	cmd, err := browserCommand(getRuntime(), url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
