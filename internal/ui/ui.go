package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/podx/internal/models"
	"github.com/desertthunder/podx/internal/player"
	"github.com/desertthunder/podx/internal/shared"
	"github.com/desertthunder/podx/internal/tasks"
	"github.com/desertthunder/podx/internal/wizard"
)

// pickerHeight bounds the style/plan lists and the file browser.
const pickerHeight = 14

// seekStep is the transport seek jump in seconds.
const seekStep = 10.0

// focusArea tracks which control owns the keyboard within a step.
type focusArea int

const (
	focusNav focusArea = iota
	focusPicker
	focusURLs
	focusAnalogies
	focusEmphasis
)

// Model represents the TUI application state.
//
// Step transitions all go through [wizard.Wizard] so the gating rules stay
// out of the view layer; the model owns the input widgets and the async
// generation, download, and playback plumbing.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	wiz    *wizard.Wizard
	engine tasks.Engine

	width  int
	height int
	focus  focusArea

	picker    filepicker.Model
	urlInput  textinput.Model
	analogies textarea.Model
	emphasis  textinput.Model
	styleList list.Model
	planList  list.Model
	spin      spinner.Model
	bar       progress.Model

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.GenerateResult

	baseURL   string
	outputDir string
	audioPath string

	pl    *player.Player
	media *player.BeepMedia

	inputErr    error
	downloadErr error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
//
// baseURL resolves relative audio urls for the browser handoff; outputDir is
// where finished episode audio lands.
func NewModel(ctx context.Context, engine tasks.Engine, baseURL, outputDir string) *Model {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".pdf", ".txt", ".doc", ".docx"}
	picker.AutoHeight = false
	picker.Height = 8
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com/article https://example.com/post"
	urlInput.Width = 60

	analogies := textarea.New()
	analogies.Placeholder = "Explain blockchain like splitting a dinner bill..."
	analogies.SetWidth(60)
	analogies.SetHeight(4)
	analogies.ShowLineNumbers = false

	emphasis := textinput.New()
	emphasis.Placeholder = "The part the hosts must not skip"
	emphasis.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.accent

	// Derived so quitting aborts any in-flight submit or poll.
	ctx, cancel := context.WithCancel(ctx)

	return &Model{
		ctx:       ctx,
		cancel:    cancel,
		wiz:       wizard.New(),
		engine:    engine,
		picker:    picker,
		urlInput:  urlInput,
		analogies: analogies,
		emphasis:  emphasis,
		styleList: newPickerList("Choose a conversation style", styleItems()),
		planList:  newPickerList("Choose a generation plan", planItems()),
		spin:      spin,
		bar:       progress.New(progress.WithDefaultGradient()),
		baseURL:   baseURL,
		outputDir: outputDir,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init readies the file browser; everything else waits for input.
func (m *Model) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styleList.SetSize(msg.Width-4, pickerHeight)
		m.planList.SetSize(msg.Width-4, pickerHeight)
		if h := msg.Height - 14; h > 4 {
			m.picker.Height = h
		}
		if w := msg.Width - 8; w > 10 && w < 60 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.teardown()
		}
		switch m.wiz.Step() {
		case wizard.StepWelcome:
			return m.handleWelcomeKeys(msg)
		case wizard.StepSources:
			return m.handleSourcesKeys(msg)
		case wizard.StepCustomize:
			return m.handleCustomizeKeys(msg)
		case wizard.StepStyle:
			return m.handleStyleKeys(msg)
		case wizard.StepPlan:
			return m.handlePlanKeys(msg)
		case wizard.StepGenerating:
			return m, nil
		case wizard.StepResult:
			return m.handleResultKeys(msg)
		}

	case progressMsg:
		m.progress = tasks.ProgressUpdate(msg)
		if job, ok := m.progress.Data.(*models.Job); ok && job != nil {
			m.wiz.SetJobID(job.ID)
		}
		return m, m.waitForProgress()

	case generationDoneMsg:
		m.progressChan = nil
		if msg.err != nil {
			m.wiz.FailGeneration(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.wiz.FinishGeneration(msg.result.Job.ID, msg.result.Job.AudioURL)
		return m, m.downloadAudio(msg.result.Job)

	case downloadDoneMsg:
		if msg.err != nil {
			m.downloadErr = msg.err
			return m, nil
		}
		media, err := player.OpenMP3(msg.path)
		if err != nil {
			m.downloadErr = err
			return m, nil
		}
		m.audioPath = msg.path
		m.media = media
		m.pl = player.New(media)
		return m, m.waitForPlayerEvent()

	case playerEventMsg:
		if m.pl == nil {
			return m, nil
		}
		m.pl.HandleEvent(player.Event(msg))
		return m, m.waitForPlayerEvent()

	case spinner.TickMsg:
		if m.spinning() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateControls(msg)
}

// View renders the UI based on the current wizard step.
func (m *Model) View() string {
	var body string
	switch m.wiz.Step() {
	case wizard.StepWelcome:
		body = m.renderWelcome()
	case wizard.StepSources:
		body = m.renderSources()
	case wizard.StepCustomize:
		body = m.renderCustomize()
	case wizard.StepStyle:
		body = m.renderStyle()
	case wizard.StepPlan:
		body = m.renderPlan()
	case wizard.StepGenerating:
		body = m.renderGenerating()
	case wizard.StepResult:
		body = m.renderResult()
	}

	footer := m.renderFooter()
	if footer == "" {
		return fmt.Sprintf("%s\n%s", m.renderStepStrip(), body)
	}
	return fmt.Sprintf("%s\n%s\n%s", m.renderStepStrip(), body, footer)
}

func (m *Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.teardown()
	case "enter":
		return m.goNext()
	}
	return m, nil
}

func (m *Model) handleSourcesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusPicker:
		switch msg.String() {
		case "tab":
			m.focus = focusURLs
			return m, m.urlInput.Focus()
		case "esc":
			m.focus = focusNav
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.addSource(path)
		}
		if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
			m.inputErr = fmt.Errorf("%w: %s", shared.ErrUnsupportedFileType, filepath.Base(path))
		}
		return m, cmd

	case focusURLs:
		switch msg.String() {
		case "tab":
			m.urlInput.Blur()
			m.focus = focusPicker
			return m, nil
		case "esc", "enter":
			m.urlInput.Blur()
			m.focus = focusNav
			return m, nil
		}
		var cmd tea.Cmd
		m.urlInput, cmd = m.urlInput.Update(msg)
		m.wiz.SetURLs(m.urlInput.Value())
		return m, cmd

	default:
		switch msg.String() {
		case "q":
			return m, m.teardown()
		case "left":
			return m.goPrev()
		case "right":
			return m.goNext()
		case "tab", "enter":
			m.focus = focusPicker
			return m, nil
		case "x":
			m.wiz.RemoveSource(len(m.wiz.Uploads()) - 1)
			return m, nil
		}
		return m, nil
	}
}

func (m *Model) handleCustomizeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusAnalogies:
		switch msg.String() {
		case "tab":
			m.analogies.Blur()
			m.wiz.CommitAnalogies()
			if m.wiz.ShowEmphasis() {
				m.focus = focusEmphasis
				return m, m.emphasis.Focus()
			}
			m.focus = focusNav
			return m, nil
		case "esc":
			m.analogies.Blur()
			m.wiz.CommitAnalogies()
			m.focus = focusNav
			return m, nil
		}
		var cmd tea.Cmd
		m.analogies, cmd = m.analogies.Update(msg)
		m.wiz.SetAnalogies(m.analogies.Value())
		return m, cmd

	case focusEmphasis:
		switch msg.String() {
		case "tab":
			m.emphasis.Blur()
			m.focus = focusAnalogies
			return m, m.analogies.Focus()
		case "esc", "enter":
			m.emphasis.Blur()
			m.focus = focusNav
			return m, nil
		}
		var cmd tea.Cmd
		m.emphasis, cmd = m.emphasis.Update(msg)
		m.wiz.SetEmphasis(m.emphasis.Value())
		return m, cmd

	default:
		switch msg.String() {
		case "q":
			return m, m.teardown()
		case "left":
			return m.goPrev()
		case "right":
			return m.goNext()
		case "tab", "enter":
			m.focus = focusAnalogies
			return m, m.analogies.Focus()
		}
		return m, nil
	}
}

func (m *Model) handleStyleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.teardown()
	case "left":
		return m.goPrev()
	case "right":
		return m.goNext()
	case "enter":
		if item, ok := m.styleList.SelectedItem().(styleItem); ok {
			if err := m.wiz.SetStyle(item.style); err != nil {
				m.inputErr = err
				return m, nil
			}
		}
		return m.goNext()
	}

	var cmd tea.Cmd
	m.styleList, cmd = m.styleList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlanKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.teardown()
	case "left":
		return m.goPrev()
	case "right":
		return m.goNext()
	case "enter":
		if item, ok := m.planList.SelectedItem().(planItem); ok {
			if err := m.wiz.SetPlan(item.plan); err != nil {
				m.inputErr = err
				return m, nil
			}
		}
		return m.goNext()
	}

	var cmd tea.Cmd
	m.planList, cmd = m.planList.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.teardown()
	case "n":
		m.resetFlow()
		return m, nil
	case " ":
		if m.pl != nil {
			m.pl.PlayPause()
		}
		return m, nil
	case "left":
		if m.pl != nil {
			m.pl.Seek(m.pl.CurrentTime() - seekStep)
		}
		return m, nil
	case "right":
		if m.pl != nil {
			m.pl.Seek(m.pl.CurrentTime() + seekStep)
		}
		return m, nil
	case "r":
		if m.pl != nil {
			m.pl.SetRate(m.pl.NextRate())
		}
		return m, nil
	case "o":
		if url := m.resolveAudioURL(); url != "" {
			shared.OpenBrowser(url)
		}
		return m, nil
	}
	return m, nil
}

// goNext advances through the wizard, kicking off generation when the plan
// step hands over to the generating step.
func (m *Model) goNext() (tea.Model, tea.Cmd) {
	if !m.wiz.Next() {
		return m, nil
	}
	m.inputErr = nil
	if m.wiz.Step() == wizard.StepGenerating {
		return m, m.startGeneration()
	}
	return m, m.focusStep()
}

func (m *Model) goPrev() (tea.Model, tea.Cmd) {
	if !m.wiz.Prev() {
		return m, nil
	}
	m.inputErr = nil
	return m, m.focusStep()
}

// focusStep moves keyboard focus to the step's primary control after a
// navigation jump.
func (m *Model) focusStep() tea.Cmd {
	m.urlInput.Blur()
	m.analogies.Blur()
	m.emphasis.Blur()

	switch m.wiz.Step() {
	case wizard.StepSources:
		m.focus = focusPicker
		return nil
	case wizard.StepCustomize:
		m.focus = focusAnalogies
		return m.analogies.Focus()
	default:
		m.focus = focusNav
		return nil
	}
}

// addSource stats and validates a picked file, surfacing rejections inline.
func (m *Model) addSource(path string) {
	info, err := os.Stat(path)
	if err != nil {
		m.inputErr = fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		return
	}
	f := models.SourceFile{Name: filepath.Base(path), Path: path, Size: info.Size()}
	if err := m.wiz.AddSource(f); err != nil {
		m.inputErr = err
		return
	}
	m.inputErr = nil
}

// spinning reports whether the spinner tick chain should stay alive.
func (m *Model) spinning() bool {
	if m.wiz.Step() == wizard.StepGenerating {
		return true
	}
	return m.wiz.Step() == wizard.StepResult && m.pl == nil && m.downloadErr == nil
}

// updateControls forwards non-key messages (blinks, directory reads) to the
// widgets belonging to the current step.
func (m *Model) updateControls(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.wiz.Step() {
	case wizard.StepSources:
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
		m.urlInput, cmd = m.urlInput.Update(msg)
		cmds = append(cmds, cmd)
	case wizard.StepCustomize:
		m.analogies, cmd = m.analogies.Update(msg)
		cmds = append(cmds, cmd)
		m.emphasis, cmd = m.emphasis.Update(msg)
		cmds = append(cmds, cmd)
	case wizard.StepStyle:
		m.styleList, cmd = m.styleList.Update(msg)
		cmds = append(cmds, cmd)
	case wizard.StepPlan:
		m.planList, cmd = m.planList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startGeneration launches the engine run and subscribes to its progress
// stream. Results come back as messages so the update loop stays the only
// writer of model state.
func (m *Model) startGeneration() tea.Cmd {
	ch := make(chan tasks.ProgressUpdate, 50)
	m.progressChan = ch
	m.progress = tasks.ProgressUpdate{}
	req := m.wiz.Request()

	run := func() tea.Msg {
		result, err := m.engine.Generate(m.ctx, ch, req)
		close(ch)
		return generationDoneMsg{result: result, err: err}
	}

	return tea.Batch(m.spin.Tick, run, m.waitForProgress())
}

func (m *Model) waitForProgress() tea.Cmd {
	ch := m.progressChan
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(update)
	}
}

func (m *Model) downloadAudio(job *models.Job) tea.Cmd {
	return func() tea.Msg {
		path, err := m.engine.Download(m.ctx, nil, job, m.outputDir)
		return downloadDoneMsg{path: path, err: err}
	}
}

func (m *Model) waitForPlayerEvent() tea.Cmd {
	media := m.media
	if media == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-media.Events()
		if !ok {
			return nil
		}
		return playerEventMsg(ev)
	}
}

func (m *Model) teardown() tea.Cmd {
	m.cancel()
	m.teardownPlayer()
	return tea.Quit
}

func (m *Model) teardownPlayer() {
	if m.pl != nil {
		m.pl.Close()
	}
	m.pl = nil
	m.media = nil
	m.audioPath = ""
}

// resetFlow tears down playback and returns to a fresh welcome step.
func (m *Model) resetFlow() {
	m.teardownPlayer()
	m.wiz.Reset()
	m.urlInput.SetValue("")
	m.analogies.SetValue("")
	m.emphasis.SetValue("")
	m.styleList.Select(0)
	m.planList.Select(0)
	m.progress = tasks.ProgressUpdate{}
	m.result = nil
	m.inputErr = nil
	m.downloadErr = nil
	m.focus = focusNav
}

// resolveAudioURL makes the backend's audio URL absolute for the browser
// handoff.
func (m *Model) resolveAudioURL() string {
	u := m.wiz.AudioURL()
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(m.baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}

// stepTitles lists the display names in flow order.
var stepTitles = [wizard.StepCount]string{
	"Welcome", "Sources", "Customize", "Style", "Plan", "Generating", "Result",
}

func (m *Model) renderStepStrip() string {
	parts := make([]string, 0, wizard.StepCount)
	for i, title := range stepTitles {
		s := wizard.Step(i)
		switch {
		case s == m.wiz.Step():
			parts = append(parts, styles.accent.Render(title))
		case s < m.wiz.Step():
			parts = append(parts, styles.ok.Render(title))
		default:
			parts = append(parts, styles.help.Render(title))
		}
	}
	return strings.Join(parts, " › ")
}

func (m *Model) renderFooter() string {
	var helpKeys []key.Binding

	switch m.wiz.Step() {
	case wizard.StepWelcome:
		helpKeys = []key.Binding{m.keys.enter, m.keys.quit}
	case wizard.StepGenerating:
		return ""
	case wizard.StepResult:
		helpKeys = []key.Binding{m.keys.space, m.keys.seek, m.keys.rate, m.keys.open, m.keys.restart, m.keys.quit}
	default:
		if m.focus == focusNav && m.wiz.NavVisible() {
			helpKeys = []key.Binding{m.keys.prev, m.keys.next, m.keys.tab, m.keys.quit}
			if m.wiz.Step() == wizard.StepSources && len(m.wiz.Uploads()) > 0 {
				helpKeys = append(helpKeys, m.keys.remove)
			}
		} else {
			helpKeys = []key.Binding{m.keys.tab, m.keys.esc}
		}
	}

	return m.help.ShortHelpView(helpKeys)
}

// focusLabel renders a section label, highlighted when its control owns the
// keyboard.
func focusLabel(active bool, label string) string {
	if active {
		return styles.accent.Render(label)
	}
	return styles.help.Render(label)
}

func (m *Model) renderInputErr() string {
	if m.inputErr == nil {
		return ""
	}
	return styles.err.Render(fmt.Sprintf("Error: %v", m.inputErr)) + "\n"
}

func (m *Model) renderWelcome() string {
	title := styles.title.Render("podx — turn your reading into a podcast")
	body := "Bring articles and documents; leave with an episode.\n\nPress enter to begin."
	return fmt.Sprintf("%s\n%s\n", title, body)
}

func (m *Model) renderSources() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Add source material"))
	b.WriteString("\n")

	uploads := m.wiz.Uploads()
	if len(uploads) == 0 {
		b.WriteString(styles.help.Render("No documents added yet."))
		b.WriteString("\n")
	} else {
		for i, f := range uploads {
			b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, f.Name, shared.FormatBytes(f.Size)))
		}
	}
	b.WriteString("\n")

	b.WriteString(focusLabel(m.focus == focusPicker, "Documents"))
	b.WriteString("\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")

	b.WriteString(focusLabel(m.focus == focusURLs, "Article URLs (space separated)"))
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n")

	b.WriteString(m.renderInputErr())
	return b.String()
}

func (m *Model) renderCustomize() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Customize the conversation"))
	b.WriteString("\n")

	b.WriteString(focusLabel(m.focus == focusAnalogies, "Analogies — how should the hosts explain things?"))
	b.WriteString("\n")
	b.WriteString(m.analogies.View())
	b.WriteString("\n")

	if m.wiz.ShowEmphasis() {
		b.WriteString("\n")
		b.WriteString(focusLabel(m.focus == focusEmphasis, "Emphasis — what must come across?"))
		b.WriteString("\n")
		b.WriteString(m.emphasis.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderInputErr())
	return b.String()
}

func (m *Model) renderStyle() string {
	var b strings.Builder
	b.WriteString(m.styleList.View())
	b.WriteString("\n")
	if s := m.wiz.Style(); s != "" {
		b.WriteString(styles.ok.Render(fmt.Sprintf("Style: %s", s)))
		b.WriteString("\n")
	}
	b.WriteString(m.renderInputErr())
	return b.String()
}

func (m *Model) renderPlan() string {
	var b strings.Builder
	if err := m.wiz.GenErr(); err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Generation failed: %v", err)))
		b.WriteString("\n")
		b.WriteString(styles.help.Render("Adjust the plan and press enter to retry."))
		b.WriteString("\n\n")
	}
	b.WriteString(m.planList.View())
	b.WriteString("\n")
	if p := m.wiz.Plan(); p != "" {
		b.WriteString(styles.ok.Render(fmt.Sprintf("Plan: %s", p)))
		b.WriteString("\n")
	}
	b.WriteString(m.renderInputErr())
	return b.String()
}

func (m *Model) renderGenerating() string {
	var pct float64
	if m.progress.Total > 0 {
		pct = float64(m.progress.Step) / float64(m.progress.Total)
	}

	message := m.progress.Message
	if message == "" {
		message = "Warming up..."
	}

	var b strings.Builder
	b.WriteString(styles.title.Render("Generating your episode"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n", m.spin.View(), message))
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n")
	if id := m.wiz.JobID(); id != "" {
		b.WriteString(styles.help.Render(fmt.Sprintf("job %s", id)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderResult() string {
	var b strings.Builder
	b.WriteString(styles.ok.Render("✓ Episode ready"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Job: %s\n", m.wiz.JobID()))
	if m.result != nil {
		b.WriteString(fmt.Sprintf("Generated in %s over %d poll(s)\n", m.result.Duration.Round(time.Second), m.result.Polls))
	}
	if m.audioPath != "" {
		b.WriteString(fmt.Sprintf("Saved: %s\n", m.audioPath))
	}
	b.WriteString("\n")

	switch {
	case m.pl != nil:
		icon := "▶"
		if !m.pl.Playing() {
			icon = "⏸"
		}
		b.WriteString(fmt.Sprintf("%s %s / %s @%gx\n", icon,
			player.FormatTime(m.pl.CurrentTime()),
			player.FormatTime(m.pl.Duration()),
			m.pl.Rate()))
		if d := m.pl.Duration(); d > 0 {
			b.WriteString(m.bar.ViewAs(m.pl.CurrentTime() / d))
			b.WriteString("\n")
		}
		if err := m.pl.Err(); err != nil {
			b.WriteString(styles.err.Render(fmt.Sprintf("Playback error: %v", err)))
			b.WriteString("\n")
		}
	case m.downloadErr != nil:
		b.WriteString(styles.warn.Render(fmt.Sprintf("Audio not fetched: %v", m.downloadErr)))
		b.WriteString("\n")
		b.WriteString(styles.help.Render("Press o to open the episode in your browser."))
		b.WriteString("\n")
	default:
		b.WriteString(fmt.Sprintf("%s Fetching audio...\n", m.spin.View()))
	}

	return b.String()
}
