package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/podx/internal/player"
	"github.com/desertthunder/podx/internal/tasks"
)

var (
	_ tea.Msg = progressMsg{}
	_ tea.Msg = generationDoneMsg{}
	_ tea.Msg = downloadDoneMsg{}
	_ tea.Msg = playerEventMsg{}
)

// progressMsg carries one engine progress update into the update loop.
type progressMsg tasks.ProgressUpdate

// generationDoneMsg reports the outcome of a generation run.
type generationDoneMsg struct {
	result *tasks.GenerateResult
	err    error
}

// downloadDoneMsg reports where the finished episode's audio landed.
type downloadDoneMsg struct {
	path string
	err  error
}

// playerEventMsg forwards a media backend event into the update loop.
type playerEventMsg player.Event
