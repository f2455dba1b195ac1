// Package profile shows the signed-in user's account and learning settings.
package profile

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "pathora/internal/modules/account/dto"
	"pathora/internal/ui/theme"
)

// Port is the slice of the account module this view needs.
type Port interface {
	Profile(ctx context.Context) (accountdto.ProfileOutput, error)
}

// LoadedMsg carries the fetched profile back to the view.
type LoadedMsg struct {
	Profile accountdto.ProfileOutput
	Err     error
}

type Model struct {
	port Port

	session accountdto.SessionOutput
	profile accountdto.ProfileOutput
	loaded  bool
	errMsg  string

	width  int
	height int
}

func New(port Port) Model {
	return Model{port: port}
}

// SetSession pushes the current session so the header renders before the
// profile fetch lands.
func (m *Model) SetSession(session accountdto.SessionOutput) {
	m.session = session
}

// Load fetches the full profile.
func (m Model) Load() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.port.Profile(context.Background())
		return LoadedMsg{Profile: profile, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.profile = msg.Profile
		m.loaded = true
		m.errMsg = ""
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.session.FullName) + "\n")
	sb.WriteString(theme.Muted.Render(m.session.Email) + "\n\n")

	if m.errMsg != "" {
		sb.WriteString(theme.Bad.Render("Could not load profile: "+m.errMsg) + "\n")
	}
	if m.loaded {
		sb.WriteString(line("Phone", m.profile.Phone))
		sb.WriteString(line("Role", m.session.Role))
		sb.WriteString(line("Bio", m.profile.Bio))
		sb.WriteString("\n" + theme.Title.Render("Learning settings") + "\n")
		sb.WriteString(line("Career goal", m.profile.CareerGoal))
		sb.WriteString(line("Experience", m.profile.ExperienceLevel))
		sb.WriteString(line("Weekly hours", m.profile.WeeklyHours))
		if !m.profile.JoinedDate.IsZero() {
			sb.WriteString(line("Joined", m.profile.JoinedDate.Format("2 Jan 2006")))
		}
	} else if m.errMsg == "" {
		sb.WriteString(theme.Muted.Render("Loading profile…") + "\n")
	}

	pane := theme.Pane.Width(m.width - 2).Height(m.height - 2)
	return pane.Render(lipgloss.NewStyle().Padding(0, 1).Render(sb.String()))
}

func line(label, value string) string {
	if value == "" {
		value = "—"
	}
	return theme.Muted.Render(label+": ") + value + "\n"
}
