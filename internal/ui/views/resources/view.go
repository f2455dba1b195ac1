package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	resourcesdto "pathora/internal/modules/resources/dto"
	"pathora/internal/ui/theme"
)

// Port is the slice of the resources module this view drives.
type Port interface {
	Resources(ctx context.Context, kind, query string) ([]resourcesdto.ResourceOutput, error)
	Open(ctx context.Context, resourceID int) error
	ReadPDFPage(ctx context.Context, resourceID, page int) (resourcesdto.PageOutput, error)
}

type ResourcesLoadedMsg struct {
	Resources []resourcesdto.ResourceOutput
	Err       error
}

type PageLoadedMsg struct {
	ResourceID int
	Page       resourcesdto.PageOutput
	Err        error
}

type OpenedMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type resourceItem struct{ res resourcesdto.ResourceOutput }

func (i resourceItem) Title() string {
	icon := "🔗"
	switch i.res.Kind {
	case "video":
		icon = "▶"
	case "pdf":
		icon = "📄"
	case "article":
		icon = "✎"
	}
	return fmt.Sprintf("%s %s", icon, i.res.Title)
}

func (i resourceItem) Description() string { return i.res.Kind + " · " + i.res.Description }
func (i resourceItem) FilterValue() string { return i.res.Title + " " + i.res.Description }

// ─── model ───────────────────────────────────────────────────────────────────

// Model browses the resource library. PDFs page through inline, everything
// else opens in the system browser.
type Model struct {
	port Port

	list    list.Model
	reader  viewport.Model
	spin    spinner.Model
	loading bool
	errMsg  string

	// reading is non-zero while the inline PDF reader is open.
	reading  int
	page     int
	total    int
	pageText string

	width  int
	height int
}

func New(port Port) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Resources"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("resource", "resources")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	return Model{port: port, list: l, reader: viewport.New(0, 0), spin: sp}
}

// Reload refetches the catalog.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m Model) Selected() (resourcesdto.ResourceOutput, bool) {
	item, ok := m.list.SelectedItem().(resourceItem)
	if !ok {
		return resourcesdto.ResourceOutput{}, false
	}
	return item.res, true
}

func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

// Reading reports whether the inline PDF reader owns the keyboard.
func (m Model) Reading() bool { return m.reading != 0 }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listWidth()-2, m.height-4)
		m.reader.Width = m.width - 4
		m.reader.Height = m.height - 6
		return m, nil

	case ResourcesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Resources))
		for _, r := range msg.Resources {
			items = append(items, resourceItem{res: r})
		}
		m.list.SetItems(items)
		return m, nil

	case PageLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			m.reading = 0
			return m, nil
		}
		m.reading = msg.ResourceID
		m.page = msg.Page.Number
		m.total = msg.Page.TotalPages
		m.pageText = msg.Page.Text
		m.reader.SetContent(m.pageText)
		m.reader.GotoTop()
		return m, nil

	case OpenedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
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
		if m.reading != 0 {
			return m.updateReader(msg)
		}
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			res, ok := m.Selected()
			if !ok {
				return m, nil
			}
			m.errMsg = ""
			if res.Kind == "pdf" || strings.HasSuffix(strings.ToLower(res.URL), ".pdf") {
				m.loading = true
				return m, tea.Batch(m.spin.Tick, m.pageCmd(res.ID, 1))
			}
			return m, m.openCmd(res.ID)
		case "o":
			if res, ok := m.Selected(); ok {
				m.errMsg = ""
				return m, m.openCmd(res.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateReader(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.reading = 0
		return m, nil
	case "n", "right":
		if m.page < m.total {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.pageCmd(m.reading, m.page+1))
		}
	case "p", "left":
		if m.page > 1 {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.pageCmd(m.reading, m.page-1))
		}
	}
	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return m.spin.View() + " working…"
	}
	if m.reading != 0 {
		header := theme.Title.Render(fmt.Sprintf("PDF — page %d/%d", m.page, m.total)) +
			theme.Muted.Render("  n/p: page · esc: back")
		return theme.Pane.Width(m.width - 2).Render(header + "\n\n" + m.reader.View())
	}

	listPane := theme.PaneActive.Width(m.listWidth()).Height(m.height - 2).Render(m.list.View())
	detailPane := theme.Pane.Width(m.width - m.listWidth() - 2).Height(m.height - 2).Render(m.renderDetail())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) listWidth() int { return m.width * 4 / 10 }

func (m Model) renderDetail() string {
	if m.errMsg != "" {
		return theme.Bad.Render(m.errMsg)
	}
	res, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("The library is empty.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(res.Title) + "\n\n")
	sb.WriteString(res.Description + "\n\n")
	sb.WriteString(theme.Muted.Render("Kind  ") + res.Kind + "\n")
	sb.WriteString(theme.Muted.Render("URL   ") + res.URL + "\n\n")
	if res.Kind == "pdf" {
		sb.WriteString(theme.Muted.Render("enter: read inline · o: open in browser"))
	} else {
		sb.WriteString(theme.Muted.Render("enter: open in browser"))
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.port.Resources(context.Background(), "", "")
		return ResourcesLoadedMsg{Resources: res, Err: err}
	}
}

func (m Model) pageCmd(resourceID, page int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.ReadPDFPage(context.Background(), resourceID, page)
		return PageLoadedMsg{ResourceID: resourceID, Page: out, Err: err}
	}
}

func (m Model) openCmd(resourceID int) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{Err: m.port.Open(context.Background(), resourceID)}
	}
}
