package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vanzue/bbmark/internal/model"
	"github.com/vanzue/bbmark/internal/session"
)

// App is the bubbletea model for the bookmark search surface. Every
// keystroke that reaches the query input re-filters the session; the
// result list is replaced wholesale on each change.
type App struct {
	session *session.Session
	input   textinput.Model
	keys    KeyMap
	styles  Styles

	cursor int
	opened *model.Entry // set when the user picked an entry to open

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session *session.Session
	Keys    *KeyMap // optional, uses default if nil
	Styles  *Styles // optional, uses default if nil
}

// NewApp creates a new App over a loaded session.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	input := textinput.New()
	input.Placeholder = "Search bookmarks..."
	input.Prompt = "> "
	input.Focus()

	return App{
		session: params.Session,
		input:   input,
		keys:    keys,
		styles:  styles,
		width:   80,
		height:  24,
	}
}

// WithDimensions returns a copy of the app with fixed dimensions.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Opened returns the entry the user chose to open, or nil.
func (a App) Opened() *model.Entry {
	return a.opened
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Open):
			if e := a.selected(); e != nil {
				a.opened = e
				return a, tea.Quit
			}
			return a, nil

		case key.Matches(msg, a.keys.Down):
			if a.cursor < a.session.Count()-1 {
				a.cursor++
			}
			return a, nil

		case key.Matches(msg, a.keys.Up):
			if a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case key.Matches(msg, a.keys.YankURL):
			if e := a.selected(); e != nil {
				_ = clipboard.WriteAll(e.URL)
			}
			return a, nil
		}
	}

	// Everything else feeds the query input.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != a.session.Query() {
		a.session.SetQuery(a.input.Value())
		a.cursor = 0
	}
	return a, cmd
}

// selected returns the entry under the cursor, or nil.
func (a App) selected() *model.Entry {
	results := a.session.Results()
	if len(results) == 0 || a.cursor >= len(results) {
		return nil
	}
	return &results[a.cursor].Entry
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
