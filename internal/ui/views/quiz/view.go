package quiz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistantdto "pathora/internal/modules/assistant/dto"
	"pathora/internal/ui/theme"
)

// DoneMsg is emitted when the user leaves the quiz.
type DoneMsg struct{}

// Model walks through a generated quiz one question at a time, then shows
// the score with per-question explanations.
type Model struct {
	quiz    assistantdto.QuizOutput
	current int
	cursor  int
	answers map[int]int
	done    bool
	width   int
	height  int
}

func New() Model { return Model{answers: map[int]int{}} }

// SetQuiz starts a fresh session over the given quiz.
func (m *Model) SetQuiz(q assistantdto.QuizOutput) {
	m.quiz = q
	m.current = 0
	m.cursor = 0
	m.answers = map[int]int{}
	m.done = false
}

// Active reports whether a quiz is in progress and owns the keyboard.
func (m Model) Active() bool { return len(m.quiz.Questions) > 0 }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.quiz = assistantdto.QuizOutput{}
		return m, func() tea.Msg { return DoneMsg{} }
	}
	if m.done {
		return m, nil
	}

	q := m.quiz.Questions[m.current]
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter":
		m.answers[m.current] = m.cursor
		if m.current == len(m.quiz.Questions)-1 {
			m.done = true
		} else {
			m.current++
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.Active() {
		return ""
	}
	var body string
	if m.done {
		body = m.renderScore()
	} else {
		body = m.renderQuestion()
	}
	pane := theme.PaneActive.Width(min(m.width-4, 80)).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) renderQuestion() string {
	q := m.quiz.Questions[m.current]
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.quiz.Title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("Question %d of %d", m.current+1, len(m.quiz.Questions))) + "\n\n")
	sb.WriteString(q.Prompt + "\n\n")
	for i, opt := range q.Options {
		marker := "  "
		line := opt
		if i == m.cursor {
			marker = theme.Hot.Render("❯ ")
			line = theme.Hot.Render(opt)
		}
		sb.WriteString(marker + line + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: answer · esc: abandon"))
	return sb.String()
}

func (m Model) renderScore() string {
	correct := 0
	for i, q := range m.quiz.Questions {
		if m.answers[i] == q.CorrectIndex {
			correct++
		}
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Results — "+m.quiz.Title) + "\n\n")
	score := fmt.Sprintf("%d / %d correct", correct, len(m.quiz.Questions))
	if correct == len(m.quiz.Questions) {
		sb.WriteString(theme.Good.Render(score+" — perfect!") + "\n\n")
	} else {
		sb.WriteString(theme.Warn.Render(score) + "\n\n")
	}

	for i, q := range m.quiz.Questions {
		if m.answers[i] == q.CorrectIndex {
			sb.WriteString(theme.Good.Render("✓ ") + q.Prompt + "\n")
			continue
		}
		sb.WriteString(theme.Bad.Render("✗ ") + q.Prompt + "\n")
		sb.WriteString("  " + theme.Muted.Render("answer: "+q.Options[q.CorrectIndex]) + "\n")
		if q.Explanation != "" {
			sb.WriteString("  " + theme.Muted.Render(q.Explanation) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("esc: close"))
	return sb.String()
}
