package shared

import (
	"strings"
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	tc := []struct {
		name    string
		goos    string
		wantBin string
		wantErr bool
	}{
		{
			name:    "darwin uses open",
			goos:    "darwin",
			wantBin: "open",
		},
		{
			name:    "linux uses xdg-open",
			goos:    "linux",
			wantBin: "xdg-open",
		},
		{
			name:    "windows uses cmd start",
			goos:    "windows",
			wantBin: "cmd",
		},
		{
			name:    "unknown platform fails",
			goos:    "plan9",
			wantErr: true,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := browserCommand(tt.goos, "http://localhost:3000")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unsupported platform")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !strings.Contains(cmd.Path, tt.wantBin) && cmd.Args[0] != tt.wantBin {
				t.Errorf("expected %s command, got %v", tt.wantBin, cmd.Args)
			}
		})
	}
}

func TestOpenBrowser(t *testing.T) {
	t.Run("unsupported platform", func(t *testing.T) {
		orig := getRuntime
		getRuntime = func() string { return "plan9" }
		defer func() { getRuntime = orig }()

		if err := OpenBrowser("http://localhost:3000"); err == nil {
			t.Error("expected error on unsupported platform")
		}
	})
}
