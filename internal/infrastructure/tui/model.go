// Package tui is the interactive bubbletea front end of the dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/safety-dash/internal/application/dashboard"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/infrastructure/view"
	"github.com/doeshing/safety-dash/internal/ports"
)

// Focus tracks which sidebar field receives keys.
type Focus int

const (
	FocusCredential Focus = iota
	FocusModel
	FocusCategory
	FocusPrompt
	FocusSection
	focusCount
)

const (
	sidebarWidth  = 34
	defaultWidth  = 120
	defaultHeight = 30
)

// Options wires the model to the application layer.
type Options struct {
	Context       context.Context
	Service       *dashboard.Service
	State         *dashboard.State
	Catalog       ports.PromptCatalog
	Models        []domain.ModelDescriptor
	Dataset       domain.Dataset
	Section       domain.Section
	MarkdownStyle string
}

// testResultMsg delivers a finished prompt test back to the event loop.
type testResultMsg struct {
	generation int
	report     domain.TestReport
	err        error
}

// Model is the dashboard TUI state. Background work only ever sees a
// dashboard.Selection snapshot; all mutation happens in Update.
type Model struct {
	ctx     context.Context
	service *dashboard.Service
	state   *dashboard.State
	catalog ports.PromptCatalog
	models  []domain.ModelDescriptor
	dataset domain.Dataset
	style   string

	renderer *view.Renderer
	section  domain.Section
	focus    Focus

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	width  int
	height int

	configured bool
	pending    bool
	generation int
	report     *domain.TestReport
	errText    string
}

// New builds the model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "OpenAI API Key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 512
	ti.Width = sidebarWidth - 6
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      ctx,
		service:  opts.Service,
		state:    opts.State,
		catalog:  opts.Catalog,
		models:   opts.Models,
		dataset:  opts.Dataset,
		style:    opts.MarkdownStyle,
		section:  opts.Section,
		focus:    FocusCredential,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(defaultWidth-sidebarWidth, defaultHeight-2),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.renderer = view.New(m.style, m.mainWidth())
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer = view.New(m.style, m.mainWidth())
		m.viewport.Width = m.mainWidth()
		m.viewport.Height = max(m.height-2, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case testResultMsg:
		m.pending = false
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.errText = msg.err.Error()
		} else {
			report := msg.report
			m.report = &report
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == FocusCredential {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.Test):
		return m.startTest()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	if m.focus == FocusCredential {
		if key.Matches(msg, m.keys.Submit) {
			m.commitCredential()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	}
	return m, nil
}

func (m *Model) setFocus(f Focus) {
	if m.focus == FocusCredential && f != FocusCredential {
		m.commitCredential()
	}
	m.focus = f
	if f == FocusCredential {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) commitCredential() {
	m.state.SetCredential(m.input.Value())
	m.configured = m.state.CanTest()
	m.refresh()
}

// cycle moves the focused picker by delta, wrapping around.
func (m *Model) cycle(delta int) {
	switch m.focus {
	case FocusModel:
		if len(m.models) == 0 {
			return
		}
		idx := wrap(indexOfModel(m.models, m.state.Model())+delta, len(m.models))
		m.state.SetModel(m.models[idx])
		m.discardReport()
	case FocusCategory:
		categories := m.catalog.Categories()
		if len(categories) == 0 {
			return
		}
		idx := wrap(indexOfCategory(categories, m.state.Category())+delta, len(categories))
		category := categories[idx]
		label := ""
		if prompts := m.catalog.PromptsFor(category); len(prompts) > 0 {
			label = prompts[0].Label
		}
		m.state.SetPromptSelection(category, label)
		m.discardReport()
	case FocusPrompt:
		prompts := m.catalog.PromptsFor(m.state.Category())
		if len(prompts) == 0 {
			return
		}
		idx := wrap(indexOfPrompt(prompts, m.state.Label())+delta, len(prompts))
		m.state.SetPromptSelection(m.state.Category(), prompts[idx].Label)
		m.discardReport()
	case FocusSection:
		sections := domain.Sections()
		m.section = sections[wrap(int(m.section)+delta, len(sections))]
		m.viewport.GotoTop()
	}
	m.refresh()
}

// discardReport drops the displayed result; an in-flight result for the old
// selection is ignored when it arrives.
func (m *Model) discardReport() {
	m.report = nil
	m.errText = ""
	m.generation++
}

func (m Model) startTest() (tea.Model, tea.Cmd) {
	if m.focus == FocusCredential {
		m.commitCredential()
	}
	m.section = domain.SectionPromptTesting
	if m.pending || !m.state.CanTest() || m.service == nil {
		m.refresh()
		return m, nil
	}

	m.pending = true
	m.report = nil
	m.errText = ""
	m.refresh()

	return m, tea.Batch(runTest(m.ctx, m.service, m.state.Selection(), m.generation), m.spinner.Tick)
}

func runTest(ctx context.Context, svc *dashboard.Service, sel dashboard.Selection, generation int) tea.Cmd {
	return func() tea.Msg {
		report, err := svc.TestPrompt(ctx, sel)
		return testResultMsg{generation: generation, report: report, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	main := m.viewport.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

// refresh re-renders the main pane into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderer.Render(m.frame()))
}

func (m Model) frame() view.Input {
	testing := view.Testing{
		CanTest: m.state.CanTest(),
		Pending: m.pending,
		Report:  m.report,
		Error:   m.errText,
	}
	if m.service != nil {
		if entry, err := m.service.Prompt(m.state.Selection()); err == nil {
			testing.Prompt = entry
		}
	}
	return view.Input{Section: m.section, Dataset: m.dataset, Testing: testing}
}

func (m Model) mainWidth() int {
	return max(m.width-sidebarWidth-2, 20)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func indexOfModel(models []domain.ModelDescriptor, target domain.ModelDescriptor) int {
	for i, model := range models {
		if model == target {
			return i
		}
	}
	return 0
}

func indexOfCategory(categories []domain.Category, target domain.Category) int {
	for i, c := range categories {
		if c == target {
			return i
		}
	}
	return 0
}

func indexOfPrompt(prompts []domain.PromptEntry, label string) int {
	for i, p := range prompts {
		if p.Label == label {
			return i
		}
	}
	return 0
}
