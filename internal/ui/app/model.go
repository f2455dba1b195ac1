package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	accountdto "pathora/internal/modules/account/dto"
	accountportin "pathora/internal/modules/account/port/in"
	assistantdto "pathora/internal/modules/assistant/dto"
	assistantportin "pathora/internal/modules/assistant/port/in"
	curriculumdto "pathora/internal/modules/curriculum/dto"
	curriculumportin "pathora/internal/modules/curriculum/port/in"
	progressdto "pathora/internal/modules/progress/dto"
	progressportin "pathora/internal/modules/progress/port/in"
	resourcesportin "pathora/internal/modules/resources/port/in"
	workspacedto "pathora/internal/modules/workspace/dto"
	workspaceportin "pathora/internal/modules/workspace/port/in"
	apperrors "pathora/internal/platform/errors"
	"pathora/internal/ui/components"
	"pathora/internal/ui/theme"
	"pathora/internal/ui/views/auth"
	"pathora/internal/ui/views/chat"
	"pathora/internal/ui/views/dashboard"
	"pathora/internal/ui/views/onboarding"
	"pathora/internal/ui/views/paths"
	"pathora/internal/ui/views/profile"
	"pathora/internal/ui/views/projects"
	"pathora/internal/ui/views/quiz"
	"pathora/internal/ui/views/resources"
	"pathora/internal/ui/views/skills"
	"pathora/internal/ui/views/stats"
)

// Ports bundles every module boundary the TUI drives.
type Ports struct {
	Account    accountportin.Usecase
	Curriculum curriculumportin.Usecase
	Progress   progressportin.Usecase
	Assistant  assistantportin.Usecase
	Workspace  workspaceportin.Usecase
	Resources  resourcesportin.Usecase
}

// ─── states and tabs ─────────────────────────────────────────────────────────

type appState int

const (
	// stateWelcome shows the banner until any key; it is never re-entered.
	stateWelcome appState = iota
	stateBoot
	stateAuth
	stateOnboarding
	stateActive
)

type tabID int

const (
	tabDashboard tabID = iota
	tabPaths
	tabSkills
	tabProgress
	tabProjects
	tabResources
	tabProfile
	tabChat
	tabCount
)

func (t tabID) String() string {
	switch t {
	case tabDashboard:
		return "Dashboard"
	case tabPaths:
		return "Paths"
	case tabSkills:
		return "Skills"
	case tabProgress:
		return "Progress"
	case tabProjects:
		return "Projects"
	case tabResources:
		return "Resources"
	case tabProfile:
		return "Profile"
	case tabChat:
		return "Mentor"
	default:
		return "?"
	}
}

// ─── async messages ──────────────────────────────────────────────────────────

type sessionLoadedMsg struct {
	session accountdto.SessionOutput
	err     error
}

type authDoneMsg struct {
	session accountdto.SessionOutput
	err     error
}

type onboardingDoneMsg struct{ err error }

type initialDataMsg struct {
	data curriculumdto.InitialData
	err  error
}

type pathProgressMsg struct {
	progress progressdto.PathProgressOutput
	err      error
}

type skillCompletedMsg struct {
	overview progressdto.OverviewOutput
	err      error
}

type skillStartedMsg struct {
	title string
	err   error
}

type skillSearchMsg struct {
	query  string
	skills []curriculumdto.SkillOutput
	err    error
}

type pathGeneratedMsg struct {
	out assistantdto.GeneratedPathOutput
	err error
}

type quizReadyMsg struct {
	quiz assistantdto.QuizOutput
	err  error
}

type checkoutDoneMsg struct {
	projectID int
	dir       string
	err       error
}

type watchStartedMsg struct {
	projectID int
	edits     <-chan struct{}
}

type editsDetectedMsg struct {
	projectID int
	edits     <-chan struct{}
}

type runDoneMsg struct {
	result workspacedto.RunResultOutput
	err    error
}

type workspaceActionMsg struct {
	action string
	err    error
}

type resourceOpenedMsg struct{ err error }

type loggedOutMsg struct{ err error }

// ─── key map ─────────────────────────────────────────────────────────────────

type keyMap struct {
	Quit    key.Binding
	Palette key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Logout  key.Binding
	Reload  key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Palette: key.NewBinding(key.WithKeys(":", "ctrl+p"), key.WithHelp(":", "palette")),
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
	Reload:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "reload")),
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root program: it routes between auth, onboarding, and the
// tabbed main screen, and owns the cross-view data flow.
type Model struct {
	ports Ports
	log   *zap.Logger

	state appState
	tab   tabID

	session      accountdto.SessionOutput
	data         curriculumdto.InitialData
	pathProgress progressdto.PathProgressOutput

	// pendingSession holds the boot session load if it finishes while the
	// welcome banner is still up.
	pendingSession *sessionLoadedMsg

	authView       auth.Model
	onboardingView onboarding.Model
	dashboardView  dashboard.Model
	pathsView      paths.Model
	skillsView     skills.Model
	statsView      stats.Model
	projectsView   projects.Model
	resourcesView  resources.Model
	profileView    profile.Model
	chatView       chat.Model
	quizView       quiz.Model

	palette components.Palette

	status    string
	statusBad bool

	width  int
	height int
}

func New(ports Ports, log *zap.Logger) Model {
	return Model{
		ports:          ports,
		log:            log,
		state:          stateWelcome,
		authView:       auth.New(),
		onboardingView: onboarding.New(),
		dashboardView:  dashboard.New(),
		pathsView:      paths.New(),
		skillsView:     skills.New(ports.Assistant),
		statsView:      stats.New(),
		projectsView:   projects.New(ports.Workspace),
		resourcesView:  resources.New(ports.Resources),
		profileView:    profile.New(ports.Account),
		chatView:       chat.New(ports.Assistant),
		quizView:       quiz.New(),
		palette:        components.NewPalette(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadSessionCmd()
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(msg.Width-4, 72))
		return m.propagateSize(msg)

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

	case sessionLoadedMsg:
		if m.state == stateWelcome {
			stash := msg
			m.pendingSession = &stash
			return m, nil
		}
		return m.routeSession(msg.session, msg.err)

	case authDoneMsg:
		if msg.err != nil {
			return m, m.authView.SetError(loginFailureText(msg.err))
		}
		return m.routeSession(msg.session, nil)

	case onboardingDoneMsg:
		if msg.err != nil {
			m.setStatus("Onboarding failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.session.Onboarded = true
		m.state = stateActive
		m.tab = tabDashboard
		m.setStatus("Welcome aboard! Building your first path…", false)
		return m, m.loadInitialCmd(curriculumdto.LoadOptions{ForceLatest: true})

	case initialDataMsg:
		return m.applyInitialData(msg)

	case pathProgressMsg:
		if msg.err == nil {
			m.pathProgress = msg.progress
			m.statsView.SetData(m.data.Selected.Title, m.data.Overview, m.pathProgress)
		}
		return m, nil

	case skillCompletedMsg:
		if msg.err != nil {
			m.setStatus("Completion failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.data.Overview = msg.overview
		m.setStatus("Skill completed 🎉", false)
		// Reload so lock states and statuses pick up the server's view.
		return m, m.loadInitialCmd(curriculumdto.LoadOptions{RequestedPathID: m.data.Selected.ID})

	case skillStartedMsg:
		if msg.err != nil {
			m.setStatus("Could not start skill: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus("Started "+msg.title, false)
		return m, nil

	case skillSearchMsg:
		if msg.err != nil {
			m.setStatus("Search failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.skillsView.SetSkills("search: "+msg.query, msg.skills)
		m.tab = tabSkills
		m.setStatus(fmt.Sprintf("%d skills match %q — path:reload to go back", len(msg.skills), msg.query), false)
		return m, nil

	case pathGeneratedMsg:
		if msg.err != nil {
			m.setStatus("Path generation failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus("New path ready: "+msg.out.Title, false)
		return m, m.loadInitialCmd(curriculumdto.LoadOptions{ForceLatest: true})

	case quizReadyMsg:
		if msg.err != nil {
			m.setStatus("Quiz generation failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.quizView.SetQuiz(msg.quiz)
		return m, nil

	case quiz.DoneMsg:
		return m, nil

	case paths.SelectMsg:
		m.setStatus("Switching path…", false)
		return m, m.loadInitialCmd(curriculumdto.LoadOptions{RequestedPathID: msg.ID})

	case checkoutDoneMsg:
		if msg.err != nil {
			m.setStatus("Checkout failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.projectsView.NoteCheckout(msg.projectID, msg.dir)
		m.setStatus("Checked out to "+msg.dir, false)
		return m, m.watchCmd(msg.projectID)

	case watchStartedMsg:
		return m, waitEditsCmd(msg.projectID, msg.edits)

	case editsDetectedMsg:
		m.setStatus(fmt.Sprintf("Local edits detected — project:sync %d to push them", msg.projectID), false)
		return m, waitEditsCmd(msg.projectID, msg.edits)

	case runDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrRunnerTimeout) {
				m.setStatus("Runner timed out", true)
			} else {
				m.setStatus("Runner failed: "+msg.err.Error(), true)
			}
			return m, nil
		}
		m.projectsView.NoteRunResult(msg.result)
		m.setStatus(fmt.Sprintf("Runner finished (exit %d)", msg.result.ExitCode), msg.result.ExitCode != 0)
		return m, nil

	case workspaceActionMsg:
		if msg.err != nil {
			m.setStatus(msg.action+" failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus(msg.action+" done", false)
		return m, m.projectsView.Reload()

	case resourceOpenedMsg:
		if msg.err != nil {
			m.setStatus("Could not open resource: "+msg.err.Error(), true)
		}
		return m, nil

	case loggedOutMsg:
		m.session = accountdto.SessionOutput{}
		m.data = curriculumdto.InitialData{}
		m.state = stateAuth
		m.authView = auth.New()
		m.setStatus("", false)
		return m, m.authView.Init()
	}

	switch m.state {
	case stateWelcome:
		if _, ok := msg.(tea.KeyMsg); ok {
			if pending := m.pendingSession; pending != nil {
				m.pendingSession = nil
				return m.routeSession(pending.session, pending.err)
			}
			m.state = stateBoot
		}
		return m, nil
	case stateBoot:
		return m, nil
	case stateAuth:
		return m.updateAuth(msg)
	case stateOnboarding:
		return m.updateOnboarding(msg)
	default:
		return m.updateActive(msg)
	}
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if submit, ok := msg.(auth.SubmitMsg); ok {
		return m, m.authenticateCmd(submit)
	}
	var cmd tea.Cmd
	m.authView, cmd = m.authView.Update(msg)
	return m, cmd
}

func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(onboarding.CompletedMsg); ok {
		return m, m.finishOnboardingCmd(done.Answers)
	}
	var cmd tea.Cmd
	m.onboardingView, cmd = m.onboardingView.Update(msg)
	return m, cmd
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays first: an active quiz, then the palette, own the keyboard.
	if m.quizView.Active() {
		var cmd tea.Cmd
		m.quizView, cmd = m.quizView.Update(msg)
		return m, cmd
	}
	if m.palette.Visible() {
		if submit, ok := msg.(components.PaletteSubmitMsg); ok {
			return m.executePalette(submit.Input)
		}
		if _, ok := msg.(components.PaletteCancelMsg); ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		// Tab switching and ctrl shortcuts always win; plain ":" defers to
		// whichever text input currently owns the keyboard.
		case key.Matches(keyMsg, keys.NextTab):
			return m.switchTab((m.tab + 1) % tabCount)
		case key.Matches(keyMsg, keys.PrevTab):
			return m.switchTab((m.tab + tabCount - 1) % tabCount)
		case key.Matches(keyMsg, keys.Logout):
			return m, m.logoutCmd()
		case key.Matches(keyMsg, keys.Reload):
			return m, m.loadInitialCmd(curriculumdto.LoadOptions{RequestedPathID: m.data.Selected.ID})
		case key.Matches(keyMsg, keys.Palette) && !m.typingText():
			m.chatView.Blur()
			return m, m.palette.Open()
		}
	}

	return m.forwardToViews(msg)
}

// typingText reports whether a text input inside the current tab owns the
// keyboard.
func (m Model) typingText() bool {
	switch m.tab {
	case tabChat:
		return m.chatView.Typing()
	case tabPaths:
		return m.pathsView.Filtering()
	case tabSkills:
		return m.skillsView.Filtering()
	case tabProjects:
		return m.projectsView.Filtering()
	case tabResources:
		return m.resourcesView.Filtering()
	default:
		return false
	}
}

func (m Model) switchTab(to tabID) (tea.Model, tea.Cmd) {
	m.tab = to
	switch to {
	case tabChat:
		return m, m.chatView.Focus()
	case tabProjects:
		m.chatView.Blur()
		return m, m.projectsView.Reload()
	case tabResources:
		m.chatView.Blur()
		return m, m.resourcesView.Reload()
	case tabProfile:
		m.chatView.Blur()
		return m, m.profileView.Load()
	default:
		m.chatView.Blur()
		return m, nil
	}
}

// forwardToViews routes a message to the view that owns it. View-specific
// async messages are always delivered, keyboard traffic only to the active
// tab.
func (m Model) forwardToViews(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case skills.ContentLoadedMsg:
		m.skillsView, cmd = m.skillsView.Update(msg)
		return m, cmd
	case profile.LoadedMsg:
		m.profileView, cmd = m.profileView.Update(msg)
		return m, cmd
	case projects.ProjectsLoadedMsg:
		m.projectsView, cmd = m.projectsView.Update(msg)
		return m, cmd
	case resources.ResourcesLoadedMsg, resources.PageLoadedMsg, resources.OpenedMsg:
		m.resourcesView, cmd = m.resourcesView.Update(msg)
		return m, cmd
	case chat.ReplyMsg:
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	}

	switch m.tab {
	case tabDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case tabPaths:
		m.pathsView, cmd = m.pathsView.Update(msg)
	case tabSkills:
		m.skillsView, cmd = m.skillsView.Update(msg)
	case tabProgress:
		m.statsView, cmd = m.statsView.Update(msg)
	case tabProjects:
		m.projectsView, cmd = m.projectsView.Update(msg)
	case tabResources:
		m.resourcesView, cmd = m.resourcesView.Update(msg)
	case tabProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	case tabChat:
		m.chatView, cmd = m.chatView.Update(msg)
	}
	return m, cmd
}

func (m Model) propagateSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	content := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
	m.authView, _ = m.authView.Update(msg)
	m.onboardingView, _ = m.onboardingView.Update(msg)
	m.dashboardView, _ = m.dashboardView.Update(content)
	m.pathsView, _ = m.pathsView.Update(content)
	m.skillsView, _ = m.skillsView.Update(content)
	m.statsView, _ = m.statsView.Update(content)
	m.projectsView, _ = m.projectsView.Update(content)
	m.resourcesView, _ = m.resourcesView.Update(content)
	m.profileView, _ = m.profileView.Update(content)
	m.chatView, _ = m.chatView.Update(content)
	m.quizView, _ = m.quizView.Update(msg)
	return m, nil
}

// ─── routing ─────────────────────────────────────────────────────────────────

func (m Model) routeSession(session accountdto.SessionOutput, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotAuthenticated) {
			m.log.Warn("session load failed", zap.Error(err))
		}
		m.state = stateAuth
		return m, m.authView.Init()
	}
	m.session = session
	m.profileView.SetSession(session)
	if !session.Onboarded {
		m.state = stateOnboarding
		return m, m.onboardingView.Init()
	}
	m.state = stateActive
	m.tab = tabDashboard
	return m, m.loadInitialCmd(curriculumdto.LoadOptions{})
}

func (m Model) applyInitialData(msg initialDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, apperrors.ErrNoLearningPaths) {
			m.setStatus("No learning paths yet — use path:generate to create one", true)
			return m, nil
		}
		if apperrors.Unauthorized(msg.err) {
			return m, m.logoutCmd()
		}
		m.setStatus("Load failed: "+msg.err.Error(), true)
		return m, nil
	}
	m.data = msg.data
	m.dashboardView.SetData(m.session.FullName, m.data.Selected.Title, m.data.Completion, m.data.Overview)
	m.pathsView.SetPaths(m.data.Paths, m.data.Selected.ID)
	m.skillsView.SetSkills(m.data.Selected.Title, m.data.Skills)
	m.statsView.SetData(m.data.Selected.Title, m.data.Overview, m.pathProgress)
	m.setStatus("", false)
	return m, m.pathProgressCmd(m.data.Selected.ID)
}

// ─── palette execution ───────────────────────────────────────────────────────

// executePalette dispatches a palette command. The grammar lives in
// components.paletteHints; keep both in sync.
func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}
	fields := strings.Fields(input)
	verb, args := fields[0], fields[1:]

	switch verb {
	case "path:select":
		id, err := argInt(args, 0)
		if err != nil {
			m.setStatus("usage: path:select <id>", true)
			return m, nil
		}
		return m, m.loadInitialCmd(curriculumdto.LoadOptions{RequestedPathID: id})

	case "path:generate":
		if len(args) == 0 {
			m.setStatus("usage: path:generate <topic> [difficulty] [weeks] [hours]", true)
			return m, nil
		}
		in := assistantdto.GeneratePathInput{Topic: args[0], Difficulty: "beginner", Weeks: 8, HoursPerWeek: 5}
		if len(args) > 1 {
			in.Difficulty = args[1]
		}
		if n, err := argInt(args, 2); err == nil {
			in.Weeks = n
		}
		if n, err := argInt(args, 3); err == nil {
			in.HoursPerWeek = n
		}
		m.setStatus("Generating path for "+in.Topic+"…", false)
		return m, m.generatePathCmd(in)

	case "path:reload":
		return m, m.loadInitialCmd(curriculumdto.LoadOptions{RequestedPathID: m.data.Selected.ID})

	case "skill:start":
		return m.startSelectedSkill()

	case "skill:complete":
		minutes, err := argInt(args, 0)
		if err != nil {
			minutes = 30
		}
		return m.completeSelectedSkill(minutes)

	case "skill:content":
		m.tab = tabSkills
		return m, m.skillsView.LoadContent()

	case "skill:search":
		if len(args) == 0 {
			m.setStatus("usage: skill:search <query>", true)
			return m, nil
		}
		return m, m.searchSkillsCmd(strings.Join(args, " "))

	case "quiz:start":
		if len(args) == 0 {
			m.setStatus("usage: quiz:start <topic> [difficulty] [count]", true)
			return m, nil
		}
		in := assistantdto.GenerateQuizInput{Topic: args[0], Difficulty: "beginner", QuestionCount: 5}
		if len(args) > 1 {
			in.Difficulty = args[1]
		}
		if n, err := argInt(args, 2); err == nil {
			in.QuestionCount = n
		}
		m.setStatus("Generating quiz…", false)
		return m, m.quizCmd(in)

	case "project:checkout":
		id, err := argInt(args, 0)
		if err != nil {
			m.setStatus("usage: project:checkout <id>", true)
			return m, nil
		}
		m.tab = tabProjects
		return m, m.checkoutCmd(id)

	case "project:sync":
		id, err := argInt(args, 0)
		if err != nil {
			m.setStatus("usage: project:sync <id>", true)
			return m, nil
		}
		return m, m.workspaceActionCmd("sync", func(ctx context.Context) error {
			return m.ports.Workspace.Sync(ctx, id)
		})

	case "project:close":
		id, err := argInt(args, 0)
		if err != nil {
			m.setStatus("usage: project:close <id>", true)
			return m, nil
		}
		return m, m.workspaceActionCmd("close", func(ctx context.Context) error {
			return m.ports.Workspace.CloseCheckout(ctx, id)
		})

	case "project:status":
		id, err := argInt(args, 0)
		if err != nil || len(args) < 2 {
			m.setStatus("usage: project:status <id> <planning|in-progress|completed>", true)
			return m, nil
		}
		status := args[1]
		return m, m.workspaceActionCmd("status change", func(ctx context.Context) error {
			return m.ports.Workspace.SetStatus(ctx, id, status)
		})

	case "runner:exec":
		if len(args) < 2 {
			m.setStatus("usage: runner:exec <runner> <command> [json]", true)
			return m, nil
		}
		in := workspacedto.RunCommandInput{Runner: args[0], CommandID: args[1]}
		if len(args) > 2 {
			in.InputJSON = strings.Join(args[2:], " ")
		}
		if p, ok := m.projectsView.Selected(); ok {
			in.ProjectID = p.ID
		}
		m.setStatus("Running "+in.Runner+" "+in.CommandID+"…", false)
		return m, m.runCmd(in)

	case "resource:open":
		id, err := argInt(args, 0)
		if err != nil {
			m.setStatus("usage: resource:open <id>", true)
			return m, nil
		}
		return m, m.openResourceCmd(id)

	case "logout":
		return m, m.logoutCmd()

	default:
		m.setStatus("Unknown command: "+verb, true)
		return m, nil
	}
}

func (m Model) startSelectedSkill() (tea.Model, tea.Cmd) {
	skill, ok := m.skillsView.Selected()
	if !ok {
		m.setStatus("No skill selected", true)
		return m, nil
	}
	if skill.Locked {
		m.setStatus("Skill is locked — finish its prerequisites first", true)
		return m, nil
	}
	if skill.Status == "completed" {
		m.setStatus("Already completed", true)
		return m, nil
	}
	// Optimistic flip; the local index is updated behind it. The backend only
	// learns about completions.
	for i := range m.data.Skills {
		if m.data.Skills[i].ID == skill.ID {
			m.data.Skills[i].Status = "in-progress"
		}
	}
	m.skillsView.SetSkills(m.data.Selected.Title, m.data.Skills)
	m.setStatus("Starting "+skill.Title+"…", false)
	return m, m.startSkillCmd(skill)
}

func (m Model) completeSelectedSkill(minutes int) (tea.Model, tea.Cmd) {
	skill, ok := m.skillsView.Selected()
	if !ok {
		m.setStatus("No skill selected", true)
		return m, nil
	}
	if skill.Locked {
		m.setStatus("Skill is locked — finish its prerequisites first", true)
		return m, nil
	}
	m.setStatus("Recording completion…", false)
	return m, m.completeCmd(skill, minutes)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.state {
	case stateWelcome:
		return m.renderWelcome()
	case stateBoot:
		return theme.Muted.Render("Starting Pathora…")
	case stateAuth:
		return m.authView.View()
	case stateOnboarding:
		return m.onboardingView.View()
	}

	if m.quizView.Active() {
		return m.quizView.View()
	}

	var body string
	switch m.tab {
	case tabDashboard:
		body = m.dashboardView.View()
	case tabPaths:
		body = m.pathsView.View()
	case tabSkills:
		body = m.skillsView.View()
	case tabProgress:
		body = m.statsView.View()
	case tabProjects:
		body = m.projectsView.View()
	case tabResources:
		body = m.resourcesView.View()
	case tabProfile:
		body = m.profileView.View()
	case tabChat:
		body = m.chatView.View()
	}

	sections := []string{m.renderTabBar(), body, m.renderStatusBar()}
	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.palette.Visible() {
		screen = lipgloss.JoinVertical(lipgloss.Left, m.renderTabBar(), m.palette.View(), body)
	}
	return screen
}

func (m Model) renderWelcome() string {
	banner := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Pathora"),
		theme.Muted.Render("Your personalized learning path, in the terminal."),
		"",
		theme.Muted.Render("press any key to begin"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, banner)
}

func (m Model) renderTabBar() string {
	var cells []string
	for t := tabDashboard; t < tabCount; t++ {
		label := " " + t.String() + " "
		if t == m.tab {
			cells = append(cells, theme.Hot.Render(label))
		} else {
			cells = append(cells, theme.Muted.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderStatusBar() string {
	left := theme.Muted.Render(m.session.FullName)
	if m.data.Selected.Title != "" {
		left += theme.Muted.Render(" · ") + theme.Title.Render(m.data.Selected.Title)
	}
	right := theme.Muted.Render(":: palette · tab: switch · ctrl+c: quit")
	if m.status != "" {
		style := theme.Good
		if m.statusBad {
			style = theme.Bad
		}
		right = style.Render(m.status)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) setStatus(text string, bad bool) {
	m.status = text
	m.statusBad = bad
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.ports.Account.Current(context.Background())
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m Model) authenticateCmd(submit auth.SubmitMsg) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if submit.Register {
			session, err := m.ports.Account.Register(ctx, accountdto.RegisterInput{
				FullName: submit.FullName,
				Email:    submit.Email,
				Phone:    submit.Phone,
				Password: submit.Password,
			})
			return authDoneMsg{session: session, err: err}
		}
		session, err := m.ports.Account.Login(ctx, accountdto.LoginInput{
			Identifier: submit.Identifier,
			Password:   submit.Password,
		})
		return authDoneMsg{session: session, err: err}
	}
}

func (m Model) finishOnboardingCmd(answers accountdto.OnboardingInput) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := m.ports.Account.UpdateProfile(ctx, accountdto.ProfileUpdateInput{
			CareerGoal:      answers.CareerGoal,
			ExperienceLevel: answers.ExperienceLevel,
			WeeklyHours:     strconv.Itoa(answers.WeeklyHours),
		}); err != nil {
			return onboardingDoneMsg{err: err}
		}
		if _, err := m.ports.Assistant.GeneratePath(ctx, assistantdto.GeneratePathInput{
			Topic:        answers.Topic,
			Difficulty:   answers.ExperienceLevel,
			Weeks:        answers.DurationWeeks,
			HoursPerWeek: answers.WeeklyHours,
		}); err != nil {
			return onboardingDoneMsg{err: err}
		}
		return onboardingDoneMsg{err: m.ports.Account.CompleteOnboarding(ctx)}
	}
}

func (m Model) loadInitialCmd(opts curriculumdto.LoadOptions) tea.Cmd {
	return func() tea.Msg {
		data, err := m.ports.Curriculum.LoadInitialData(context.Background(), opts)
		return initialDataMsg{data: data, err: err}
	}
}

func (m Model) pathProgressCmd(pathID int) tea.Cmd {
	userID := m.session.UserID
	return func() tea.Msg {
		pp, err := m.ports.Progress.PathProgress(context.Background(), pathID, userID)
		return pathProgressMsg{progress: pp, err: err}
	}
}

func (m Model) completeCmd(skill curriculumdto.SkillOutput, minutes int) tea.Cmd {
	userID := m.session.UserID
	pathTitle := m.data.Selected.Title
	return func() tea.Msg {
		overview, err := m.ports.Progress.CompleteSkill(context.Background(), userID, progressdto.CompleteSkillInput{
			SkillID:    skill.ID,
			SkillTitle: skill.Title,
			PathTitle:  pathTitle,
			Minutes:    minutes,
		})
		return skillCompletedMsg{overview: overview, err: err}
	}
}

func (m Model) startSkillCmd(skill curriculumdto.SkillOutput) tea.Cmd {
	return func() tea.Msg {
		err := m.ports.Curriculum.StartSkill(context.Background(), skill.ID)
		return skillStartedMsg{title: skill.Title, err: err}
	}
}

func (m Model) searchSkillsCmd(query string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.ports.Curriculum.SearchSkills(context.Background(), query)
		return skillSearchMsg{query: query, skills: found, err: err}
	}
}

func (m Model) generatePathCmd(in assistantdto.GeneratePathInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Assistant.GeneratePath(context.Background(), in)
		return pathGeneratedMsg{out: out, err: err}
	}
}

func (m Model) quizCmd(in assistantdto.GenerateQuizInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Assistant.GenerateQuiz(context.Background(), in)
		return quizReadyMsg{quiz: out, err: err}
	}
}

func (m Model) checkoutCmd(projectID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Workspace.Checkout(context.Background(), projectID)
		return checkoutDoneMsg{projectID: projectID, dir: out.Dir, err: err}
	}
}

func (m Model) watchCmd(projectID int) tea.Cmd {
	return func() tea.Msg {
		edits, err := m.ports.Workspace.WatchCheckout(context.Background(), projectID)
		if err != nil {
			m.log.Warn("checkout watch failed", zap.Int("project_id", projectID), zap.Error(err))
			return nil
		}
		return watchStartedMsg{projectID: projectID, edits: edits}
	}
}

func waitEditsCmd(projectID int, edits <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-edits; !ok {
			return nil
		}
		return editsDetectedMsg{projectID: projectID, edits: edits}
	}
}

func (m Model) workspaceActionCmd(action string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return workspaceActionMsg{action: action, err: fn(context.Background())}
	}
}

func (m Model) runCmd(in workspacedto.RunCommandInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.ports.Workspace.RunCommand(context.Background(), in)
		return runDoneMsg{result: out, err: err}
	}
}

func (m Model) openResourceCmd(resourceID int) tea.Cmd {
	return func() tea.Msg {
		return resourceOpenedMsg{err: m.ports.Resources.Open(context.Background(), resourceID)}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.ports.Account.Logout(context.Background())}
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func argInt(args []string, idx int) (int, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("missing argument %d", idx)
	}
	return strconv.Atoi(args[idx])
}

func loginFailureText(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Wrong email/phone or password."
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "Please fill in every field."
	default:
		return "Could not reach the server: " + err.Error()
	}
}
