package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "pathora/internal/modules/progress/dto"
	"pathora/internal/ui/theme"
)

const maxBarWidth = 20

// Model renders the progress overview. It holds no port: the app model owns
// the initial load and pushes fresh data in with SetData.
type Model struct {
	overview   progressdto.OverviewOutput
	userName   string
	pathName   string
	completion int
	loaded     bool
	width      int
	height     int
}

func New() Model { return Model{} }

// SetData replaces the rendered overview wholesale. completion is the
// percentage of the active path's skills already done.
func (m *Model) SetData(userName, pathName string, completion int, ov progressdto.OverviewOutput) {
	m.userName = userName
	m.pathName = pathName
	m.completion = completion
	m.overview = ov
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
		return theme.Muted.Render("Loading your dashboard…")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStats(),
		"",
		m.renderActivity(),
	)
	right := m.renderMilestones()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right),
	)
}

func (m Model) renderHeader() string {
	greeting := fmt.Sprintf("Welcome back, %s", m.userName)
	path := m.pathName
	if path == "" {
		path = m.overview.CurrentPath
	}
	if path == "" {
		path = "no path selected"
	}
	return theme.Title.Render(greeting) + "\n" +
		theme.Muted.Render("Current path: ") + theme.Hot.Render(path)
}

func (m Model) renderStats() string {
	ov := m.overview
	rows := []string{
		statLine("Path completion", fmt.Sprintf("%d%%", m.completion), theme.Good),
		statLine("Completed skills", fmt.Sprintf("%d", ov.CompletedSkills), theme.Good),
		statLine("In progress", fmt.Sprintf("%d", ov.InProgressSkills), theme.Hot),
		statLine("Weekly streak", fmt.Sprintf("%d days", ov.WeeklyStreak), theme.Warn),
		statLine("Hours this week", fmt.Sprintf("%.1f / %.1f (%d%%)", ov.WeeklyHours.Spent, ov.WeeklyHours.Goal, ov.WeeklyHours.Percent), theme.Title),
		statLine("Total hours", fmt.Sprintf("%.1f", ov.TotalHoursSpent), theme.Muted),
	}
	return theme.Pane.Render(theme.Title.Render("This Week") + "\n\n" + strings.Join(rows, "\n"))
}

func (m Model) renderActivity() string {
	ov := m.overview
	if len(ov.WeeklyActivity) == 0 {
		return theme.Pane.Render(theme.Muted.Render("No activity recorded yet."))
	}

	peak := 0.0
	for _, d := range ov.WeeklyActivity {
		if d.Hours > peak {
			peak = d.Hours
		}
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Activity") + "\n\n")
	for _, d := range ov.WeeklyActivity {
		bar := 0
		if peak > 0 {
			bar = int(d.Hours / peak * maxBarWidth)
		}
		sb.WriteString(fmt.Sprintf("%-4s %s %s\n",
			d.Day,
			theme.Good.Render(strings.Repeat("█", bar)),
			theme.Muted.Render(fmt.Sprintf("%.1fh", d.Hours)),
		))
	}
	return theme.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderMilestones() string {
	ov := m.overview
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Milestones") + "\n\n")
	if len(ov.Milestones) == 0 {
		sb.WriteString(theme.Muted.Render("None yet — keep going."))
	}
	for _, ms := range ov.Milestones {
		mark := theme.Muted.Render("○")
		if ms.Achieved {
			mark = theme.Good.Render("●")
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, ms.Title))
		if ms.Date != "" {
			sb.WriteString("  " + theme.Muted.Render(ms.Date) + "\n")
		}
	}
	return theme.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func statLine(label, value string, style lipgloss.Style) string {
	return fmt.Sprintf("%-18s %s", label, style.Render(value))
}
