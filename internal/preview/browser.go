package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syntinct/internal/config"
	"syntinct/internal/debug"
	"syntinct/internal/neovim"
	"syntinct/internal/theme"
)

const (
	headerHeight = 2
	footerHeight = 2
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleStatus = lipgloss.NewStyle().Faint(true)
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Browser is the bubbletea model behind `syntinct browse`.
type Browser struct {
	name     string
	table    *neovim.Theme
	viewport viewport.Model
	keys     KeyMap
	width    int
	height   int
	ready    bool
	status   string
	err      error

	save func(string) error
}

// BrowserOption customizes a Browser.
type BrowserOption func(*Browser)

// WithSaver replaces the function used to persist the chosen theme.
func WithSaver(fn func(string) error) BrowserOption {
	return func(b *Browser) { b.save = fn }
}

// NewBrowser creates a browser positioned on the named theme.
func NewBrowser(name string, opts ...BrowserOption) (*Browser, error) {
	b := &Browser{
		keys: DefaultKeyMap(),
		save: config.SaveTheme,
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.load(name); err != nil {
		return nil, err
	}
	return b, nil
}

// Name returns the theme currently shown.
func (b *Browser) Name() string { return b.name }

// Status returns the last status message.
func (b *Browser) Status() string { return b.status }

func (b *Browser) load(name string) error {
	base, err := theme.Lookup(name)
	if err != nil {
		return err
	}
	b.name = name
	b.table = neovim.New(base)
	b.err = nil
	log := debug.Component("browse")
	log.Debug().Str("theme", name).Int("groups", b.table.Len()).Msg("loaded theme")
	b.refresh()
	return nil
}

func (b *Browser) refresh() {
	if !b.ready {
		return
	}
	b.viewport.SetContent(Render(b.table, b.width))
	b.viewport.GotoTop()
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !b.ready {
			b.viewport = viewport.New(msg.Width, vpHeight)
			b.viewport.KeyMap.Up = b.keys.Up
			b.viewport.KeyMap.Down = b.keys.Down
			b.viewport.KeyMap.PageUp = b.keys.PageUp
			b.viewport.KeyMap.PageDown = b.keys.PageDown
			b.ready = true
		} else {
			b.viewport.Width = msg.Width
			b.viewport.Height = vpHeight
		}
		b.refresh()
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.NextTheme):
			b.step(theme.Next(b.name))
			return b, nil
		case key.Matches(msg, b.keys.PrevTheme):
			b.step(theme.Previous(b.name))
			return b, nil
		case key.Matches(msg, b.keys.Save):
			if err := b.save(b.name); err != nil {
				b.err = err
				b.status = ""
			} else {
				b.err = nil
				b.status = fmt.Sprintf("Saved %s as default theme.", b.name)
			}
			return b, nil
		case key.Matches(msg, b.keys.Home):
			b.viewport.GotoTop()
			return b, nil
		case key.Matches(msg, b.keys.End):
			b.viewport.GotoBottom()
			return b, nil
		}
	}

	if !b.ready {
		return b, nil
	}
	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

func (b *Browser) step(next string) {
	if err := b.load(next); err != nil {
		b.err = err
		return
	}
	b.status = ""
}

// View implements tea.Model.
func (b *Browser) View() string {
	if !b.ready {
		return "Loading…"
	}
	names := theme.Available()
	pos := 0
	for i, n := range names {
		if n == b.name {
			pos = i + 1
			break
		}
	}
	header := styleHeader.Render(fmt.Sprintf("%s  (%d/%d, %d groups)", b.name, pos, len(names), b.table.Len()))

	var footer string
	switch {
	case b.err != nil:
		footer = styleError.Render(b.err.Error())
	case b.status != "":
		footer = styleStatus.Render(b.status)
	default:
		footer = styleStatus.Render(b.helpLine())
	}

	return strings.Join([]string{header, "", b.viewport.View(), "", footer}, "\n")
}

func (b *Browser) helpLine() string {
	parts := make([]string, 0, len(b.keys.ShortHelp()))
	for _, k := range b.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Browse runs the interactive browser until the user quits.
func Browse(name string, opts ...BrowserOption) error {
	b, err := NewBrowser(name, opts...)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
