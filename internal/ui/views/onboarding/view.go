package onboarding

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	accountdto "pathora/internal/modules/account/dto"
	"pathora/internal/ui/theme"
)

// CompletedMsg carries the finished questionnaire to the app model.
type CompletedMsg struct{ Answers accountdto.OnboardingInput }

// Model walks a new user through the questions that seed their first
// learning path.
type Model struct {
	form   *huh.Form
	width  int
	height int
}

func New() Model {
	return Model{form: buildForm()}
}

func buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("career_goal").
				Title("What role are you working toward?").
				Placeholder("e.g. backend engineer"),
			huh.NewSelect[string]().
				Key("experience").
				Title("How experienced are you?").
				Options(
					huh.NewOption("Just starting out", "beginner"),
					huh.NewOption("Some experience", "intermediate"),
					huh.NewOption("Seasoned", "advanced"),
				),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("topic").
				Title("What do you want to learn first?").
				Placeholder("e.g. Go, SQL, system design"),
			huh.NewInput().
				Key("weekly_hours").
				Title("Hours per week you can commit").
				Placeholder("5"),
			huh.NewInput().
				Key("weeks").
				Title("Weeks you want the path to span").
				Placeholder("8"),
		),
	).WithShowHelp(false)
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		done := CompletedMsg{Answers: accountdto.OnboardingInput{
			CareerGoal:      strings.TrimSpace(m.form.GetString("career_goal")),
			ExperienceLevel: m.form.GetString("experience"),
			Topic:           strings.TrimSpace(m.form.GetString("topic")),
			WeeklyHours:     atoiOr(m.form.GetString("weekly_hours"), 5),
			DurationWeeks:   atoiOr(m.form.GetString("weeks"), 8),
		}}
		return m, tea.Batch(cmd, func() tea.Msg { return done })
	}
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Let's set up your learning path") + "\n")
	sb.WriteString(theme.Muted.Render("A few questions, then Pathora builds your first path.") + "\n\n")
	sb.WriteString(m.form.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
