// ABOUTME: Bubble Tea model for the paged news card grid
// ABOUTME: Follows controller state through a subscription and maps keys to page changes

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newsgrid/core/card"
	"newsgrid/core/news"
)

// Columns is the number of cards per grid row
const Columns = 3

// Controller is the part of news.Controller the model drives
type Controller interface {
	Start(ctx context.Context)
	Next() news.State
	Previous() (news.State, bool)
	Refresh() news.State
	State() news.State
	Subscribe() (<-chan news.State, func())
}

// Options configures a Model
type Options struct {
	// Context bounds the controller's fetch cycles
	Context context.Context

	// Location renders publish dates; nil means local time
	Location *time.Location
}

type stateMsg news.State

type closedMsg struct{}

type openedMsg struct {
	url string
	err error
}

// Model is the Bubble Tea model of the news grid
type Model struct {
	ctrl        Controller
	ctx         context.Context
	loc         *time.Location
	updates     <-chan news.State
	unsubscribe func()

	state    news.State
	cards    []card.Card
	selected int
	notice   string

	// rowOffsets is the first viewport line of each rendered grid row
	rowOffsets []int

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates a model over ctrl and subscribes to its state
func New(ctrl Controller, opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	updates, unsubscribe := ctrl.Subscribe()

	return &Model{
		ctrl:        ctrl,
		ctx:         ctx,
		loc:         opts.Location,
		updates:     updates,
		unsubscribe: unsubscribe,
		state:       ctrl.State(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		viewport:    viewport.New(0, 0),
	}
}

// Init starts the first fetch cycle
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start(m.ctx)
	return tea.Batch(
		m.spinner.Tick,
		waitForState(m.updates),
	)
}

// waitForState delivers the next controller state as a message
func waitForState(updates <-chan news.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return stateMsg(s)
	}
}

func openCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: openBrowser(url)}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case stateMsg:
		m.applyState(news.State(msg))
		return m, waitForState(m.updates)

	case closedMsg:
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.notice = "Could not open article: " + msg.err.Error()
		} else {
			m.notice = "Opened " + msg.url
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state.Loading {
			m.refreshContent()
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.notice = ""
		m.applyState(m.ctrl.Next())
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		m.notice = ""
		if s, changed := m.ctrl.Previous(); changed {
			m.applyState(s)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.notice = ""
		m.applyState(m.ctrl.Refresh())
		return m, nil

	case key.Matches(msg, m.keys.NextCard):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCard):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if c, ok := m.SelectedCard(); ok {
			return m, openCmd(c.Link.Href)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// applyState adopts a controller snapshot. Cards are rebuilt wholesale and
// selection resets whenever a new cycle replaces the list.
func (m *Model) applyState(s news.State) {
	if s.Generation != m.state.Generation {
		m.selected = 0
		m.viewport.GotoTop()
	}
	m.state = s
	m.cards = card.FromArticles(s.Articles, m.loc)
	if m.selected >= len(m.cards) {
		m.selected = 0
	}
	m.refreshContent()
}

func (m *Model) moveSelection(delta int) {
	if m.state.Loading || len(m.cards) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.cards)) % len(m.cards)
	m.refreshContent()
	m.scrollToSelected()
}

func (m *Model) scrollToSelected() {
	row := m.selected / Columns
	if row >= len(m.rowOffsets) {
		return
	}
	top := m.rowOffsets[row]
	bottom := m.viewport.TotalLineCount()
	if row+1 < len(m.rowOffsets) {
		bottom = m.rowOffsets[row+1]
	}
	if top < m.viewport.YOffset || bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top)
	}
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)
	m.ready = true
	m.refreshContent()
}

// State returns the last controller state the model rendered
func (m *Model) State() news.State {
	return m.state
}

// SelectedCard returns the highlighted card when the grid is showing
func (m *Model) SelectedCard() (card.Card, bool) {
	if m.state.Loading || m.selected >= len(m.cards) {
		return card.Card{}, false
	}
	return m.cards[m.selected], true
}
