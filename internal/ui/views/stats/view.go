package stats

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	progressdto "pathora/internal/modules/progress/dto"
	"pathora/internal/ui/theme"
)

const (
	trajectoryBarWidth = 24
	progressBarWidth   = 40
)

// Model renders the long-horizon progress picture: per-path completion and
// the month-by-month trajectory. Data is pushed in by the app model.
type Model struct {
	overview progressdto.OverviewOutput
	path     progressdto.PathProgressOutput
	pathName string
	loaded   bool
	width    int
	height   int
}

func New() Model { return Model{} }

func (m *Model) SetData(pathName string, ov progressdto.OverviewOutput, pp progressdto.PathProgressOutput) {
	m.pathName = pathName
	m.overview = ov
	m.path = pp
	m.loaded = true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("Loading progress…")
	}
	sections := []string{
		m.renderPathProgress(),
		m.renderTrajectory(),
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderPathProgress() string {
	filled := m.path.Percent * progressBarWidth / 100
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := theme.Good.Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", progressBarWidth-filled))

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Path — "+m.pathName) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d%%\n", bar, m.path.Percent))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d of %d lessons completed",
		m.path.CompletedLessons, m.path.TotalLessons)))
	return theme.Pane.Render(sb.String())
}

func (m Model) renderTrajectory() string {
	traj := m.overview.Trajectory
	if len(traj) == 0 {
		return theme.Pane.Render(theme.Muted.Render("Not enough history for a trajectory yet."))
	}

	peak := 0
	for _, p := range traj {
		if p.Skills > peak {
			peak = p.Skills
		}
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Skills per Month") + "\n\n")
	for _, p := range traj {
		bar := 0
		if peak > 0 {
			bar = p.Skills * trajectoryBarWidth / peak
		}
		sb.WriteString(fmt.Sprintf("%-10s %s %s\n",
			p.Month,
			theme.Hot.Render(strings.Repeat("▇", bar)),
			theme.Muted.Render(fmt.Sprintf("%d", p.Skills)),
		))
	}
	return theme.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}
