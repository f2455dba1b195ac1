package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistantdto "pathora/internal/modules/assistant/dto"
	"pathora/internal/ui/theme"
)

// Port is the slice of the assistant this view drives.
type Port interface {
	Chat(ctx context.Context, message string, history []assistantdto.ChatTurnOutput) (string, error)
}

// ReplyMsg delivers the mentor's answer (or the failure) to the view.
type ReplyMsg struct {
	Reply string
	Err   error
}

var (
	userStyle   = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true)
	mentorStyle = lipgloss.NewStyle().Foreground(theme.Green).Bold(true)
)

// Model is the AI-mentor conversation: a transcript viewport over a single
// input line. History rides along with every request so the backend keeps
// conversational context.
type Model struct {
	port Port

	transcript viewport.Model
	input      textinput.Model
	spin       spinner.Model
	waiting    bool

	history []assistantdto.ChatTurnOutput

	width  int
	height int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "ask your mentor anything…"
	ti.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{port: port, transcript: viewport.New(0, 0), input: ti, spin: sp}
}

// Focus hands the keyboard to the input line.
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

// Blur releases the keyboard (used when the palette opens).
func (m *Model) Blur() { m.input.Blur() }

// Typing reports whether the input line owns the keyboard.
func (m Model) Typing() bool { return m.input.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transcript.Width = m.width - 4
		m.transcript.Height = m.height - 6
		m.input.Width = m.width - 8
		m.render()
		return m, nil

	case ReplyMsg:
		m.waiting = false
		if msg.Err != nil {
			m.history = append(m.history, assistantdto.ChatTurnOutput{
				Text: "Sorry, I couldn't reach the mentor: " + msg.Err.Error(),
			})
		} else {
			m.history = append(m.history, assistantdto.ChatTurnOutput{Text: msg.Reply})
		}
		m.render()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "enter" && !m.waiting {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			// Snapshot the history before appending: the request carries the
			// turns that preceded this message.
			prior := make([]assistantdto.ChatTurnOutput, len(m.history))
			copy(prior, m.history)

			m.history = append(m.history, assistantdto.ChatTurnOutput{Text: text, FromUser: true})
			m.input.SetValue("")
			m.waiting = true
			m.render()
			return m, tea.Batch(m.spin.Tick, m.askCmd(text, prior))
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.transcript, cmd = m.transcript.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	status := theme.Muted.Render("enter: send")
	if m.waiting {
		status = m.spin.View() + " thinking…"
	}
	return theme.Pane.Width(m.width - 2).Render(
		theme.Title.Render("Mentor") + "\n\n" +
			m.transcript.View() + "\n\n" +
			"> " + m.input.View() + "\n" +
			status,
	)
}

func (m *Model) render() {
	if len(m.history) == 0 {
		m.transcript.SetContent(theme.Muted.Render("Ask about your path, a skill, or anything you're stuck on."))
		return
	}
	var sb strings.Builder
	for _, turn := range m.history {
		if turn.FromUser {
			sb.WriteString(userStyle.Render("You") + "\n")
		} else {
			sb.WriteString(mentorStyle.Render("Mentor") + "\n")
		}
		sb.WriteString(turn.Text + "\n\n")
	}
	m.transcript.SetContent(strings.TrimRight(sb.String(), "\n"))
	m.transcript.GotoBottom()
}

func (m Model) askCmd(text string, history []assistantdto.ChatTurnOutput) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.port.Chat(context.Background(), text, history)
		return ReplyMsg{Reply: reply, Err: err}
	}
}
