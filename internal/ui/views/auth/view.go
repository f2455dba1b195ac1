package auth

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"pathora/internal/ui/theme"
)

// SubmitMsg bubbles the completed form up to the app model, which runs the
// actual login or register call.
type SubmitMsg struct {
	Register   bool
	Identifier string
	Password   string
	FullName   string
	Email      string
	Phone      string
}

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// Model renders the sign-in / sign-up form. Switching mode rebuilds the huh
// form, since huh forms are single-shot.
type Model struct {
	mode   mode
	form   *huh.Form
	errMsg string
	width  int
	height int
}

func New() Model {
	m := Model{mode: modeLogin}
	m.form = buildForm(m.mode)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// SetError surfaces a failed attempt and re-arms the form.
func (m *Model) SetError(msg string) tea.Cmd {
	m.errMsg = msg
	m.form = buildForm(m.mode)
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+r" {
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			m.errMsg = ""
			m.form = buildForm(m.mode)
			return m, m.form.Init()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		submit := SubmitMsg{
			Register:   m.mode == modeRegister,
			Identifier: strings.TrimSpace(m.form.GetString("identifier")),
			Password:   m.form.GetString("password"),
			FullName:   strings.TrimSpace(m.form.GetString("full_name")),
			Email:      strings.TrimSpace(m.form.GetString("email")),
			Phone:      strings.TrimSpace(m.form.GetString("phone")),
		}
		return m, tea.Batch(cmd, func() tea.Msg { return submit })
	}
	return m, cmd
}

func (m Model) View() string {
	title := "Sign in to Pathora"
	hint := "ctrl+r: create an account instead"
	if m.mode == modeRegister {
		title = "Create your Pathora account"
		hint = "ctrl+r: back to sign in"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	if m.errMsg != "" {
		sb.WriteString(theme.Bad.Render(m.errMsg) + "\n\n")
	}
	sb.WriteString(m.form.View())
	sb.WriteString("\n" + theme.Muted.Render(hint))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func buildForm(mode mode) *huh.Form {
	if mode == modeRegister {
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Key("full_name").Title("Full name"),
			huh.NewInput().Key("email").Title("Email"),
			huh.NewInput().Key("phone").Title("Phone"),
			huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword),
		)).WithShowHelp(false)
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Key("identifier").Title("Email or phone"),
		huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword),
	)).WithShowHelp(false)
}
