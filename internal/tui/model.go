package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/michaelscutari/fsinfo/internal/entry"
	"github.com/michaelscutari/fsinfo/internal/rollup"
	"github.com/michaelscutari/fsinfo/internal/tree"
	"github.com/michaelscutari/fsinfo/internal/volume"

	tea "github.com/charmbracelet/bubbletea"
)

const windowTitle = "File Analysis"

// Options carries what the window displays.
type Options struct {
	Root   string
	Charts []rollup.Grouping
	Tree   *tree.Tree
	Totals entry.Totals
	Volume *volume.Usage
}

// Model holds the TUI state.
type Model struct {
	opts     Options
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	showTree bool
	ready    bool
	width    int
	height   int
}

// NewModel creates a new chart window model.
func NewModel(opts Options) *Model {
	return &Model{
		opts: opts,
		help: help.New(),
		keys: defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// Run shows the window and blocks until the user closes it.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
