// Package tui provides a Bubble Tea terminal user interface for gamevault.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/gamevault/internal/artwork"
	"github.com/handiism/gamevault/internal/contact"
	"github.com/handiism/gamevault/internal/download"
	"github.com/handiism/gamevault/internal/logging"
	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/state"
)

// Options configures a Model.
type Options struct {
	App *state.App

	// Loader renders thumbnails of the current page. Nil disables previews.
	Loader *artwork.Loader

	// Sender delivers contact messages. Defaults to a 2s SimulatedSender.
	Sender contact.Sender

	// ResetDelay is how long the contact confirmation stays visible.
	ResetDelay time.Duration

	// Downloads runs simulated downloads. Defaults to a manager with
	// default options.
	Downloads *download.Manager

	Logger *slog.Logger
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	app        *state.App
	loader     *artwork.Loader
	sender     contact.Sender
	resetDelay time.Duration
	downloads  *download.Manager
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	rating  progress.Model
	dlBar   progress.Model

	// Games view
	search      textinput.Model
	searching   bool
	cursor      int
	genreCursor int
	previews    map[string]artwork.Preview

	// Home view
	homeCursor int

	// Auth overlays
	loginInputs    []textinput.Model
	registerInputs []textinput.Model
	remember       bool
	acceptTerms    bool
	authFocus      int

	// Contact view
	contactInputs  []textinput.Model
	contactMessage textarea.Model
	contactFocus   int

	flash  string
	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	if opts.Sender == nil {
		opts.Sender = contact.SimulatedSender{Delay: 2 * time.Second}
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = 3 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Downloads == nil {
		opts.Downloads = download.NewManager(download.Options{}, nil)
	}

	search := textinput.New()
	search.Placeholder = "Buscar juegos..."
	search.CharLimit = 100
	search.Width = 40
	search.Prompt = "🔍 "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	rating := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	rating.Width = 20

	dlBar := progress.New(progress.WithDefaultGradient())
	dlBar.Width = 40

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		app:        opts.App,
		loader:     opts.Loader,
		sender:     opts.Sender,
		resetDelay: opts.ResetDelay,
		downloads:  opts.Downloads,
		logger:     opts.Logger.With("component", "tui"),
		ctx:        ctx,
		cancel:     cancel,

		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		rating:  rating,
		dlBar:   dlBar,

		search:   search,
		previews: make(map[string]artwork.Preview),

		loginInputs:    newLoginInputs(),
		registerInputs: newRegisterInputs(),

		contactInputs:  newContactInputs(),
		contactMessage: newContactMessage(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadPreviews())
}

// Message types
type (
	// PreviewsMsg carries rendered thumbnails for the current page.
	PreviewsMsg struct {
		Previews []artwork.Preview
	}

	// ContactSentMsg is sent when the contact sender returns.
	ContactSentMsg struct {
		Err error
	}

	// ContactResetMsg clears the contact confirmation.
	ContactResetMsg struct{}

	// DownloadTickMsg refreshes download progress while transfers run.
	DownloadTickMsg struct{}

	// DownloadDoneMsg is sent when a batch of downloads finishes.
	DownloadDoneMsg struct {
		Err error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.contactMessage.SetWidth(min(max(msg.Width-10, 30), 80))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancel()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.app.Contact().Status() != contact.StatusSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PreviewsMsg:
		for _, p := range msg.Previews {
			m.previews[p.ItemID] = p
		}
		return m, nil

	case ContactSentMsg:
		return m.contactSent(msg)

	case DownloadTickMsg:
		if !m.downloads.GetProgress().Active() {
			return m, nil
		}
		return m, downloadTick()

	case DownloadDoneMsg:
		return m.downloadDone(msg)

	case ContactResetMsg:
		m.app.Contact().Reset()
		m.resetContactInputs()
		if m.app.View() != state.ViewContact {
			return m, nil
		}
		return m, m.focusContact()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	if m.app.LoginOpen() || m.app.RegisterOpen() {
		return m.updateAuth(msg)
	}
	if m.app.DetailOpen() {
		return m.updateDetail(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Home):
		return m.setView(state.ViewHome)
	case key.Matches(msg, m.keys.Games):
		return m.setView(state.ViewGames)
	case key.Matches(msg, m.keys.Contact):
		return m.setView(state.ViewContact)
	case key.Matches(msg, m.keys.Account):
		return m.toggleAccount()
	}

	switch m.app.View() {
	case state.ViewGames:
		return m.updateGames(msg)
	case state.ViewContact:
		return m.updateContact(msg)
	default:
		return m.updateHome(msg)
	}
}

func (m Model) setView(v state.View) (tea.Model, tea.Cmd) {
	if m.app.View() == v {
		return m, nil
	}
	m.logger.Debug("view changed", "from", m.app.View().String(), "to", v.String())
	m.app.SetView(v)
	m.searching = false
	m.search.Blur()

	switch v {
	case state.ViewGames:
		return m, m.loadPreviews()
	case state.ViewContact:
		return m, m.focusContact()
	default:
		m.blurContact()
		return m, nil
	}
}

func (m Model) toggleAccount() (tea.Model, tea.Cmd) {
	if m.app.LoggedIn() {
		m.app.Logout()
		m.flash = "Sesión cerrada"
		return m, nil
	}
	return m.openLogin()
}

// loadPreviews renders the current page thumbnails in the background.
func (m Model) loadPreviews() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	items := m.app.Catalog().View().Items
	var missing []model.Item
	for _, item := range items {
		if _, ok := m.previews[item.ID]; !ok {
			missing = append(missing, item)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		return PreviewsMsg{Previews: loader.Load(ctx, missing)}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch {
	case m.app.LoginOpen():
		b.WriteString(m.viewLogin())
	case m.app.RegisterOpen():
		b.WriteString(m.viewRegister())
	case m.app.DetailOpen():
		b.WriteString(m.viewDetail())
	default:
		switch m.app.View() {
		case state.ViewGames:
			b.WriteString(m.viewGames())
		case state.ViewContact:
			b.WriteString(m.viewContact())
		default:
			b.WriteString(m.viewHome())
		}
	}

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(m.flash))
	}

	// Footer
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.helpBindings()))

	return b.String()
}

func (m Model) viewHeader() string {
	var tabs []string
	for _, v := range state.Views {
		label := v.String()
		if v == m.app.View() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	account := dimStyle.Render("Invitado · ctrl+l para iniciar sesión")
	if session, ok := m.app.Session(); ok {
		account = successStyle.Render("● " + session.Username)
	}

	parts := []string{
		titleStyle.Render("🎮 GameVault"),
		"   ",
		strings.Join(tabs, "  "),
		"   ",
		account,
	}
	if p := m.downloads.GetProgress(); p.Active() {
		parts = append(parts, "   ", infoStyle.Render(
			fmt.Sprintf("↓ %d/%d · %.0f%%", p.Done, p.Files, p.Fraction()*100)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) helpBindings() []key.Binding {
	switch {
	case m.app.LoginOpen(), m.app.RegisterOpen():
		return m.keys.authHelp()
	case m.app.DetailOpen():
		return m.keys.detailHelp()
	}
	switch m.app.View() {
	case state.ViewGames:
		if m.searching {
			return m.keys.searchHelp()
		}
		return m.keys.gamesHelp()
	case state.ViewContact:
		return m.keys.contactHelp()
	default:
		return m.keys.homeHelp()
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
