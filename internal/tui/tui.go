// Package tui provides a Bubble Tea terminal user interface for festival-bands.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/festival-bands/internal/config"
	"github.com/handiism/festival-bands/internal/controller"
	"github.com/handiism/festival-bands/internal/festival"
	"github.com/handiism/festival-bands/internal/http"
	"github.com/handiism/festival-bands/internal/model"
	"github.com/handiism/festival-bands/internal/render"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// focus identifies the control receiving key input.
type focus int

const (
	focusSearch focus = iota
	focusDate
	focusCategory
	focusVenue
	focusCount
)

// chromeHeight is the number of lines taken by everything except the list.
const chromeHeight = 9

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Clear  key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Right, k.Clear, k.Scroll, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Left, k.Right}, {k.Clear, k.Scroll, k.Quit}}
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "change option")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear filters")),
	Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓/pgup/pgdn", "scroll")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	settings *config.Settings

	source controller.Source
	ctl    *controller.Controller
	list   *render.Text

	search   textinput.Model
	selects  [3]selectControl
	focus    focus
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model

	lastEvent string
	total     int
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model that loads its bands from source.
func NewModel(settings *config.Settings, source controller.Source) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "Search bands..."
	ti.Prompt = "Search: "
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(settings.AccentColor))

	list := render.NewText(settings.AccentColor)
	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateLoading,
		settings: settings,
		source:   source,
		ctl:      controller.New(list),
		list:     list,
		search:   ti,
		selects: [3]selectControl{
			newSelectControl("Date"),
			newSelectControl("Category"),
			newSelectControl("Venue"),
		},
		viewport: viewport.New(80, 20),
		spinner:  sp,
		help:     help.New(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model and starts loading the dataset.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.load())
}

// Message types
type (
	// ProgressMsg is sent when the loader reports progress.
	ProgressMsg struct {
		Event festival.ProgressEvent
	}

	// LoadedMsg is sent when the dataset load completes.
	LoadedMsg struct {
		Catalog *model.Catalog
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.help.Width = msg.Width
		return m, nil

	case LoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			m.ctl.Fail(msg.Err)
		} else {
			m.state = StateReady
			m.total = len(msg.Catalog.Bands)
			m.selects[0].SetOptions(msg.Catalog.Options.Dates)
			m.selects[1].SetOptions(msg.Catalog.Options.Categories)
			m.selects[2].SetOptions(msg.Catalog.Options.Venues)
			m.ctl.Ready(msg.Catalog)
		}
		m.syncList()
		return m, nil

	case ProgressMsg:
		if msg.Event.Level != festival.LevelVerbose {
			m.lastEvent = msg.Event.Message
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.cancel()
			return m, tea.Quit

		case key.Matches(msg, keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)

		case key.Matches(msg, keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

		case key.Matches(msg, keys.Clear):
			m.clear()
			return m, nil

		case key.Matches(msg, keys.Scroll):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case m.focus != focusSearch && key.Matches(msg, keys.Left):
			m.cycleSelect(-1)
			return m, nil

		case m.focus != focusSearch && key.Matches(msg, keys.Right):
			m.cycleSelect(1)
			return m, nil
		}
	}

	if m.focus == focusSearch {
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
		if m.search.Value() != before {
			m.ctl.SetSearch(m.search.Value())
			m.syncList()
		}
	}

	return m, tea.Batch(cmds...)
}

// setFocus moves key input to f.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

// cycleSelect moves the focused select by step and re-filters.
func (m *Model) cycleSelect(step int) {
	idx := int(m.focus - focusDate)
	sel := &m.selects[idx]
	sel.Cycle(step)

	switch m.focus {
	case focusDate:
		m.ctl.SetDate(sel.Value())
	case focusCategory:
		m.ctl.SetCategory(sel.Value())
	case focusVenue:
		m.ctl.SetVenue(sel.Value())
	}
	m.syncList()
}

// clear resets every control and shows the full list.
func (m *Model) clear() {
	m.search.SetValue("")
	for i := range m.selects {
		m.selects[i].Reset()
	}
	m.ctl.Clear()
	m.syncList()
}

// syncList copies the rendered list into the viewport.
func (m *Model) syncList() {
	m.viewport.SetContent(m.list.String())
	m.viewport.GotoTop()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎻 " + m.settings.Title))
	b.WriteString("\n")

	b.WriteString(m.viewSearch())
	b.WriteString("\n")
	b.WriteString(m.viewSelects())
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading bands..."))
		b.WriteString("\n")
	case StateError:
		b.WriteString(errorStyle.Render("❌ Could not load the band list"))
		b.WriteString("\n")
	case StateReady:
		b.WriteString(successStyle.Render(m.statusLine()))
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	// Footer
	b.WriteString(dimStyle.Render(m.help.View(keys)))

	return b.String()
}

func (m Model) viewSearch() string {
	if m.focus == focusSearch {
		return focusedStyle.Render("›") + " " + m.search.View()
	}
	return "  " + m.search.View()
}

func (m Model) viewSelects() string {
	parts := make([]string, len(m.selects))
	for i, sel := range m.selects {
		parts[i] = sel.View(m.focus == focusDate+focus(i))
	}
	return strings.Join(parts, "   ")
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("Showing %d of %d bands", len(m.ctl.Visible()), m.total)
	if m.lastEvent != "" {
		status += " · " + m.lastEvent
	}
	return status
}

// load fetches the dataset in the background.
func (m Model) load() tea.Cmd {
	source := m.source
	ctx := m.ctx
	return func() tea.Msg {
		catalog, err := source.Load(ctx)
		return LoadedMsg{Catalog: catalog, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	client := http.NewClient(
		http.WithTimeout(time.Duration(settings.RequestTimeout*float64(time.Second))),
		http.WithUserAgent(settings.UserAgent),
	)

	var p *tea.Program
	loader := festival.NewLoader(settings.Dataset, client, func(event festival.ProgressEvent) {
		if p != nil {
			p.Send(ProgressMsg{Event: event})
		}
	})

	p = tea.NewProgram(NewModel(settings, loader), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
