package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	workspacedto "pathora/internal/modules/workspace/dto"
	"pathora/internal/ui/theme"
)

// Port is the slice of the workspace module this view drives directly.
// Mutations (checkout, sync, status, runner execution) go through the command
// palette and come back as a Reload.
type Port interface {
	Projects(ctx context.Context) ([]workspacedto.ProjectOutput, error)
	Runners(ctx context.Context) ([]workspacedto.RunnerOutput, error)
}

// ProjectsLoadedMsg delivers the project list (or the failure) to the view.
type ProjectsLoadedMsg struct {
	Projects []workspacedto.ProjectOutput
	Runners  []workspacedto.RunnerOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type projectItem struct{ project workspacedto.ProjectOutput }

func (i projectItem) Title() string {
	badge := "□"
	switch i.project.Status {
	case "in-progress":
		badge = "◧"
	case "completed":
		badge = "■"
	}
	return fmt.Sprintf("%s %s", badge, i.project.Title)
}

func (i projectItem) Description() string {
	return fmt.Sprintf("%s · %d files · %s", i.project.Status, i.project.FileCount,
		strings.Join(i.project.Technologies, ", "))
}

func (i projectItem) FilterValue() string { return i.project.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port Port

	list    list.Model
	spin    spinner.Model
	loading bool
	errMsg  string

	runners []workspacedto.RunnerOutput
	// checkouts remembers where each project was materialized this session.
	checkouts map[int]string
	lastRun   string

	width  int
	height int
}

func New(port Port) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Projects"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("project", "projects")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{port: port, list: l, spin: sp, checkouts: map[int]string{}}
}

// Reload refetches projects and runner metadata.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

// Selected returns the project under the cursor.
func (m Model) Selected() (workspacedto.ProjectOutput, bool) {
	item, ok := m.list.SelectedItem().(projectItem)
	if !ok {
		return workspacedto.ProjectOutput{}, false
	}
	return item.project, true
}

func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

// NoteCheckout records where a project landed on disk.
func (m *Model) NoteCheckout(projectID int, dir string) { m.checkouts[projectID] = dir }

// NoteRunResult shows the latest runner output in the detail pane.
func (m *Model) NoteRunResult(res workspacedto.RunResultOutput) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "exit %d", res.ExitCode)
	if res.Stdout != "" {
		sb.WriteString("\n" + res.Stdout)
	}
	if res.Stderr != "" {
		sb.WriteString("\n" + theme.Bad.Render(res.Stderr))
	}
	m.lastRun = sb.String()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listWidth()-2, m.height-4)
		return m, nil

	case ProjectsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.runners = msg.Runners
		items := make([]list.Item, 0, len(msg.Projects))
		for _, p := range msg.Projects {
			items = append(items, projectItem{project: p})
		}
		m.list.SetItems(items)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return m.spin.View() + " loading projects…"
	}
	if m.errMsg != "" {
		return theme.Bad.Render("Could not load projects: " + m.errMsg)
	}

	listPane := theme.PaneActive.Width(m.listWidth()).Height(m.height - 2).Render(m.list.View())
	detailPane := theme.Pane.Width(m.width - m.listWidth() - 2).Height(m.height - 2).Render(m.renderDetail())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) listWidth() int { return m.width * 4 / 10 }

func (m Model) renderDetail() string {
	p, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("No projects yet. Create one with project:checkout after the backend assigns it.")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.Title) + "\n\n")
	sb.WriteString(p.Description + "\n\n")
	sb.WriteString(theme.Muted.Render("Status      ") + p.Status + "\n")
	sb.WriteString(theme.Muted.Render("Difficulty  ") + p.Difficulty + "\n")
	sb.WriteString(theme.Muted.Render("Started     ") + p.StartDate.Format("2006-01-02") + "\n")
	sb.WriteString(theme.Muted.Render("Est. hours  ") + p.EstimatedHours + "\n")
	sb.WriteString(theme.Muted.Render("Stack       ") + strings.Join(p.Technologies, ", ") + "\n")

	if dir, ok := m.checkouts[p.ID]; ok {
		sb.WriteString("\n" + theme.Good.Render("Checked out: ") + dir + "\n")
	} else {
		sb.WriteString("\n" + theme.Muted.Render("Not checked out — run project:checkout "+fmt.Sprint(p.ID)) + "\n")
	}

	if len(m.runners) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Runners") + "\n")
		for _, r := range m.runners {
			sb.WriteString(fmt.Sprintf("  %s %s — %s\n", r.Name, r.Version, r.Description))
		}
	}
	if m.lastRun != "" {
		sb.WriteString("\n" + theme.Title.Render("Last run") + "\n" + m.lastRun + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		projects, err := m.port.Projects(ctx)
		if err != nil {
			return ProjectsLoadedMsg{Err: err}
		}
		// Runner probing is best-effort; a broken runner config should not
		// hide the project list.
		runners, _ := m.port.Runners(ctx)
		return ProjectsLoadedMsg{Projects: projects, Runners: runners}
	}
}
