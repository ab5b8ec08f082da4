// Package tui provides the BubbleTea-based live widget preview.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/msgwidget/internal/adapter/input"
	"github.com/jmylchreest/msgwidget/internal/adapter/output"
	"github.com/jmylchreest/msgwidget/internal/config"
	"github.com/jmylchreest/msgwidget/internal/layout"
	"github.com/jmylchreest/msgwidget/internal/model"
	"github.com/jmylchreest/msgwidget/internal/theme"
	"github.com/jmylchreest/msgwidget/internal/widget"
)

// Model is the watch view model.
type Model struct {
	cfg        *config.Config
	source     input.Source
	sourceName string
	builder    *widget.Builder
	logger     *slog.Logger
	now        func() time.Time

	refresh time.Duration
	timeout time.Duration

	// Components
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	// State
	family      model.Family
	message     *string
	view        model.View
	hasView     bool
	fetching    bool
	gen         int // bumped per fetch; stale fetches and ticks are dropped
	nextRefresh time.Time
	width       int
	height      int

	// Status message
	statusMsg string
	statusErr bool

	reloads <-chan *config.Config
}

// Options configures a Model.
type Options struct {
	Config     *config.Config
	Source     input.Source
	SourceName string // used to recreate the source after a config reload
	Family     model.Family
	Now        func() time.Time
	Logger     *slog.Logger
	Reloads    <-chan *config.Config
}

// New creates a watch model. The first fetch is issued by Init.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	family, _ := model.ParseFamily(string(opts.Family))

	m := Model{
		source:     opts.Source,
		sourceName: opts.SourceName,
		logger:     logger,
		now:        now,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		keys:       DefaultKeyMap(),
		family:     family,
		fetching:   true,
		gen:        1,
		reloads:    opts.Reloads,
	}
	m.applyConfig(cfg)
	return m
}

type fetchedMsg struct {
	gen     int
	message *string
}

type refreshTickMsg struct {
	gen int
}

type clockMsg time.Time

type configReloadedMsg struct {
	cfg *config.Config
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchCmd(m.gen),
		m.waitForReload(),
		clockTick(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case fetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.fetching = false
		m.message = msg.message
		m.nextRefresh = m.now().Add(m.refresh)
		m.rebuild()

		gen := m.gen
		return m, tea.Tick(m.refresh, func(time.Time) tea.Msg {
			return refreshTickMsg{gen: gen}
		})

	case refreshTickMsg:
		if msg.gen != m.gen || m.fetching {
			return m, nil
		}
		return m.startFetch()

	case clockMsg:
		return m, clockTick()

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		m.reloadSource()
		var cmd tea.Cmd
		m, cmd = m.startFetch()
		return m, tea.Batch(cmd, m.waitForReload(), statusCmd("Config reloaded", false))

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, statusCmd("Copy failed: "+msg.err.Error(), true)
		}
		return m, statusCmd("Copied to clipboard", false)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.fetching {
			return m, nil
		}
		return m.startFetch()

	case key.Matches(msg, m.keys.Family):
		m.family = nextFamily(m.family)
		if m.hasView {
			m.rebuild()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if !m.view.HasMessage() {
			return m, statusCmd("No message to copy", true)
		}
		return m, m.copyToClipboard(m.view.Primary().Content)
	}

	return m, nil
}

// startFetch begins a new fetch generation, invalidating any pending
// refresh tick.
func (m Model) startFetch() (Model, tea.Cmd) {
	m.gen++
	m.fetching = true
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(m.gen))
}

func (m Model) fetchCmd(gen int) tea.Cmd {
	src, logger, timeout := m.source, m.logger, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fetchedMsg{gen: gen, message: input.FetchLatestMessage(ctx, src, logger)}
	}
}

func (m Model) waitForReload() tea.Cmd {
	ch := m.reloads
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m Model) copyToClipboard(message string) tea.Cmd {
	argv := clipboardArgs(m.cfg.Clipboard.Command, exec.LookPath)
	return func() tea.Msg {
		return copyResultMsg{err: writeClipboard(context.Background(), argv, message)}
	}
}

// rebuild lays out the current message for the current family.
func (m *Model) rebuild() {
	v, err := m.builder.Build(m.message, m.family)
	if err != nil {
		m.logger.Debug("failed to assign view id", "error", err)
	}
	v.RefreshAfter = m.nextRefresh
	m.view = v
	m.hasView = true
}

// applyConfig takes builder and timing settings from cfg.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg

	scheme, err := theme.ParseScheme(cfg.Theme.ColorScheme)
	if err != nil {
		m.logger.Warn("invalid color scheme, using system", "error", err)
	}
	m.builder = &widget.Builder{
		Now:         m.now,
		Scheme:      scheme,
		Placeholder: cfg.Widget.Placeholder,
	}

	m.refresh = cfg.Widget.Refresh.Duration()
	if m.refresh <= 0 {
		m.refresh = config.DefaultRefresh
	}
	m.timeout = cfg.Backend.Timeout.Duration()
	if m.timeout <= 0 {
		m.timeout = config.DefaultTimeout
	}
}

// reloadSource recreates the source so new backend settings take effect.
func (m *Model) reloadSource() {
	if m.sourceName == "" {
		return
	}
	src, err := input.NewSource(m.sourceName, m.cfg)
	if err != nil {
		m.logger.Warn("failed to recreate source", "error", err)
		return
	}
	m.source = src
}

// View renders the watch view.
func (m Model) View() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	title := lipgloss.NewStyle().Bold(true).Render("msgwidget")

	header := fmt.Sprintf("%s  %s", title, dim.Render(string(m.family)))
	if m.fetching {
		header += "  " + m.spinner.View()
	}

	if !m.hasView {
		return header + "\n\n" + dim.Render("Fetching latest message...") + "\n"
	}

	body := output.Render(lipgloss.DefaultRenderer(), m.view, layout.FrameFor(m.family))

	status := dim.Render("refresh " + humanize.RelTime(m.nextRefresh, m.now(), "ago", "from now"))
	if m.statusMsg != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		if m.statusErr {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		}
		status += "  " + style.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		status,
		m.help.View(m.keys),
	)
}

// nextFamily cycles through the size families.
func nextFamily(f model.Family) model.Family {
	for i, family := range model.Families {
		if family == f {
			return model.Families[(i+1)%len(model.Families)]
		}
	}
	return model.Families[0]
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// RunOptions configures the watch TUI.
type RunOptions struct {
	Config     *config.Config
	SourceName string
	Family     model.Family
	ConfigPath string // Config file to watch for changes (empty = no watching)
	Logger     *slog.Logger
}

// Run starts the watch TUI and blocks until it exits.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	src, err := input.NewSource(opts.SourceName, opts.Config)
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}

	var reloads chan *config.Config
	if opts.ConfigPath != "" {
		reloads = make(chan *config.Config, 1)
		if watcher := startConfigWatcher(opts.ConfigPath, logger, func(cfg *config.Config) {
			select {
			case reloads <- cfg:
			default:
			}
		}); watcher != nil {
			defer func() { _ = watcher.Stop() }()
		}
	}

	m := New(Options{
		Config:     opts.Config,
		Source:     src,
		SourceName: src.Name(),
		Family:     opts.Family,
		Logger:     logger,
		Reloads:    reloads,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

func startConfigWatcher(path string, logger *slog.Logger, onChange func(*config.Config)) *config.Watcher {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("config file not present, not watching", "path", path)
		return nil
	}

	watcher, err := config.NewWatcher(path, logger)
	if err != nil {
		logger.Warn("failed to create config watcher", "error", err)
		return nil
	}
	watcher.SetChangeCallback(onChange)
	if err := watcher.Start(); err != nil {
		logger.Warn("failed to start config watcher", "error", err)
		_ = watcher.Stop()
		return nil
	}
	return watcher
}
