// Package tui implements the interactive national ID inspector.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zarlcorp/zeid/internal/nationalid"
)

type viewID int

const (
	viewMenu viewID = iota
	viewInspect
	viewGenerate
	viewGovernorates
)

// Model is the root TUI model.
type Model struct {
	version string
	gen     *nationalid.Generator

	active   viewID
	menu     menuModel
	inspect  inspectModel
	generate generateModel
	govs     govModel

	// terminal dimensions
	width  int
	height int
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// regenerateMsg requests a fresh generated ID.
type regenerateMsg struct{}

// New creates the root TUI model.
func New(version string, gen *nationalid.Generator) Model {
	return Model{
		version: version,
		gen:     gen,
		active:  viewMenu,
		menu:    newMenuModel(version),
		inspect: newInspectModel(),
		govs:    newGovModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case regenerateMsg:
		rec, id := m.gen.Record(time.Now())
		m.generate = newGenerateModel(id, rec)
		m.active = viewGenerate
		return m, m.generate.Init()
	}

	return m.updateActive(msg)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	m.active = view

	switch view {
	case viewInspect:
		m.inspect = newInspectModel()
		return m, m.inspect.Init()
	case viewGenerate:
		rec, id := m.gen.Record(time.Now())
		m.generate = newGenerateModel(id, rec)
		return m, m.generate.Init()
	case viewGovernorates:
		m.govs = newGovModel()
		return m, m.govs.Init()
	}

	return m, nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewInspect:
		m.inspect, cmd = m.inspect.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewGovernorates:
		m.govs, cmd = m.govs.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	switch m.active {
	case viewInspect:
		return m.inspect.View()
	case viewGenerate:
		return m.generate.View()
	case viewGovernorates:
		return m.govs.View()
	default:
		return m.menu.View()
	}
}
