package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	curriculumdto "pathora/internal/modules/curriculum/dto"
	"pathora/internal/ui/theme"
)

// ContentPort is the slice of the assistant the skills view needs to fill in
// a lesson body on demand.
type ContentPort interface {
	GenerateLessonContent(ctx context.Context, lessonID int) (string, error)
}

// ContentLoadedMsg carries a generated lesson body back to the view.
type ContentLoadedMsg struct {
	SkillID  int
	Markdown string
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type skillItem struct{ skill curriculumdto.SkillOutput }

func (i skillItem) Title() string {
	prefix := "○"
	switch {
	case i.skill.Locked:
		prefix = "🔒"
	case i.skill.Status == "completed":
		prefix = "●"
	case i.skill.Status == "in-progress":
		prefix = "◐"
	}
	return fmt.Sprintf("%s %s", prefix, i.skill.Title)
}

func (i skillItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.skill.Category, i.skill.Difficulty, i.skill.EstimatedTime)
}

func (i skillItem) FilterValue() string { return i.skill.Title + " " + i.skill.Category }

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows the active path's skills on the left and the selected skill's
// detail (plus generated lesson content) on the right.
type Model struct {
	port ContentPort

	list    list.Model
	detail  viewport.Model
	spin    spinner.Model
	loading bool

	skills   []curriculumdto.SkillOutput
	pathName string
	// content caches generated lesson bodies per skill for this session.
	content map[int]string

	width  int
	height int
}

func New(port ContentPort) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Skills"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("skill", "skills")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{
		port:    port,
		list:    l,
		detail:  viewport.New(0, 0),
		spin:    sp,
		content: map[int]string{},
	}
}

// SetSkills replaces the listed skills, preserving the cursor when possible.
func (m *Model) SetSkills(pathName string, skills []curriculumdto.SkillOutput) {
	m.pathName = pathName
	m.skills = skills
	m.list.Title = "Skills — " + pathName
	items := make([]list.Item, 0, len(skills))
	for _, s := range skills {
		items = append(items, skillItem{skill: s})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx < len(items) {
		m.list.Select(idx)
	}
	m.refreshDetail()
}

// Selected returns the skill under the cursor.
func (m Model) Selected() (curriculumdto.SkillOutput, bool) {
	item, ok := m.list.SelectedItem().(skillItem)
	if !ok {
		return curriculumdto.SkillOutput{}, false
	}
	return item.skill, true
}

// Filtering reports whether list filtering owns the keyboard.
func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

// LoadContent kicks off lesson-content generation for the selected skill.
func (m *Model) LoadContent() tea.Cmd {
	skill, ok := m.Selected()
	if !ok || skill.Locked {
		return nil
	}
	if cached, ok := m.content[skill.ID]; ok {
		m.setDetail(m.renderSkill(skill, cached))
		return nil
	}
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadContentCmd(skill.ID))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case ContentLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.setDetail(theme.Bad.Render("Could not generate content: " + msg.Err.Error()))
			return m, nil
		}
		m.content[msg.SkillID] = msg.Markdown
		if skill, ok := m.Selected(); ok && skill.ID == msg.SkillID {
			m.setDetail(m.renderSkill(skill, msg.Markdown))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			return m, m.LoadContent()
		case "J", "pgdown":
			m.detail.HalfViewDown()
			return m, nil
		case "K", "pgup":
			m.detail.HalfViewUp()
			return m, nil
		}
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.refreshDetail()
	}
	return m, cmd
}

func (m Model) View() string {
	listPane := theme.PaneActive.Width(m.listWidth()).Height(m.paneHeight()).Render(m.list.View())

	detail := m.detail.View()
	if m.loading {
		detail = m.spin.View() + " generating lesson content…"
	}
	if skill, ok := m.Selected(); ok {
		badge := theme.SkillStatus(skill.Status, skill.Locked).Render(strings.ToUpper(skill.Status))
		detail = badge + "\n" + detail
	}
	detailPane := theme.Pane.Width(m.detailWidth()).Height(m.paneHeight()).Render(detail)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// ─── internals ───────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.list.SetSize(m.listWidth()-2, m.paneHeight()-2)
	m.detail.Width = m.detailWidth() - 2
	m.detail.Height = m.paneHeight() - 2
	m.refreshDetail()
}

func (m Model) listWidth() int   { return m.width * 4 / 10 }
func (m Model) detailWidth() int { return m.width - m.listWidth() - 2 }
func (m Model) paneHeight() int  { return m.height - 2 }

func (m *Model) refreshDetail() {
	skill, ok := m.Selected()
	if !ok {
		m.setDetail(theme.Muted.Render("No skills in this path yet."))
		return
	}
	m.setDetail(m.renderSkill(skill, m.content[skill.ID]))
}

func (m *Model) setDetail(body string) {
	m.detail.SetContent(body)
	m.detail.GotoTop()
}

func (m Model) renderSkill(s curriculumdto.SkillOutput, lessonBody string) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", s.Title)
	if s.Locked {
		md.WriteString("> 🔒 Locked — finish the prerequisites first.\n\n")
	}
	fmt.Fprintf(&md, "**Status:** %s · **Difficulty:** %s · **Estimated:** %s\n\n", s.Status, s.Difficulty, s.EstimatedTime)
	if s.WhyItMatters != "" {
		fmt.Fprintf(&md, "## Why it matters\n\n%s\n\n", s.WhyItMatters)
	}
	if len(s.WhatYouLearn) > 0 {
		md.WriteString("## What you'll learn\n\n")
		for _, w := range s.WhatYouLearn {
			fmt.Fprintf(&md, "- %s\n", w)
		}
		md.WriteString("\n")
	}
	if len(s.AIResources) > 0 {
		md.WriteString("## Resources\n\n")
		for _, r := range s.AIResources {
			fmt.Fprintf(&md, "- [%s](%s) (%s)\n", r.Title, r.URL, r.Kind)
		}
		md.WriteString("\n")
	}
	if lessonBody != "" {
		md.WriteString("---\n\n" + lessonBody + "\n")
	} else if !s.Locked {
		md.WriteString("_Press enter to generate the full lesson._\n")
	}

	rendered, err := glamour.Render(md.String(), "dark")
	if err != nil {
		return md.String()
	}
	return rendered
}

func (m Model) loadContentCmd(skillID int) tea.Cmd {
	return func() tea.Msg {
		body, err := m.port.GenerateLessonContent(context.Background(), skillID)
		return ContentLoadedMsg{SkillID: skillID, Markdown: body, Err: err}
	}
}
