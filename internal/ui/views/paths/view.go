// Package paths lists the user's learning paths and lets them switch the
// active one.
package paths

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	curriculumdto "pathora/internal/modules/curriculum/dto"
	"pathora/internal/ui/theme"
)

// SelectMsg asks the app model to make the given path active.
type SelectMsg struct{ ID int }

type pathItem struct {
	path   curriculumdto.PathOutput
	active bool
}

func (i pathItem) Title() string {
	if i.active {
		return "▸ " + i.path.Title
	}
	return "  " + i.path.Title
}

func (i pathItem) Description() string {
	return fmt.Sprintf("%s · %d modules · %d skills", i.path.Difficulty, i.path.ModuleCount, i.path.SkillCount)
}

func (i pathItem) FilterValue() string { return i.path.Title }

// Model is the path picker tab.
type Model struct {
	list   list.Model
	width  int
	height int
}

func New() Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Learning Paths"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("path", "paths")
	return Model{list: l}
}

// SetPaths replaces the listing and marks the active path.
func (m *Model) SetPaths(paths []curriculumdto.PathOutput, activeID int) {
	items := make([]list.Item, 0, len(paths))
	for _, p := range paths {
		items = append(items, pathItem{path: p, active: p.ID == activeID})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx < len(items) {
		m.list.Select(idx)
	}
}

// Filtering reports whether list filtering owns the keyboard.
func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width-2, m.height-4)
		return m, nil

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		if msg.String() == "enter" {
			if item, ok := m.list.SelectedItem().(pathItem); ok {
				id := item.path.ID
				return m, func() tea.Msg { return SelectMsg{ID: id} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return theme.PaneActive.Width(m.width - 2).Height(m.height - 2).Render(m.list.View())
}
