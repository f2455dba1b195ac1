package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	accountdto "pathora/internal/modules/account/dto"
	assistantdto "pathora/internal/modules/assistant/dto"
	curriculumdto "pathora/internal/modules/curriculum/dto"
	progressdto "pathora/internal/modules/progress/dto"
	resourcesdto "pathora/internal/modules/resources/dto"
	workspacedto "pathora/internal/modules/workspace/dto"
	apperrors "pathora/internal/platform/errors"
)

// ─── fakes ───────────────────────────────────────────────────────────────────

type fakeAccount struct {
	session accountdto.SessionOutput
	current error
	logouts int
}

func (f *fakeAccount) Login(context.Context, accountdto.LoginInput) (accountdto.SessionOutput, error) {
	return f.session, nil
}

func (f *fakeAccount) Register(context.Context, accountdto.RegisterInput) (accountdto.SessionOutput, error) {
	return f.session, nil
}

func (f *fakeAccount) Logout(context.Context) error {
	f.logouts++
	return nil
}

func (f *fakeAccount) Current(context.Context) (accountdto.SessionOutput, error) {
	if f.current != nil {
		return accountdto.SessionOutput{}, f.current
	}
	return f.session, nil
}

func (f *fakeAccount) CompleteOnboarding(context.Context) error { return nil }

func (f *fakeAccount) Profile(context.Context) (accountdto.ProfileOutput, error) {
	return accountdto.ProfileOutput{}, nil
}

func (f *fakeAccount) UpdateProfile(context.Context, accountdto.ProfileUpdateInput) (accountdto.ProfileOutput, error) {
	return accountdto.ProfileOutput{}, nil
}

func (f *fakeAccount) Token() string { return "tok" }

type fakeCurriculum struct {
	data  curriculumdto.InitialData
	err   error
	loads int
}

func (f *fakeCurriculum) LoadInitialData(context.Context, curriculumdto.LoadOptions) (curriculumdto.InitialData, error) {
	f.loads++
	return f.data, f.err
}

func (f *fakeCurriculum) Paths(context.Context) ([]curriculumdto.PathOutput, error) { return nil, nil }

func (f *fakeCurriculum) SelectPath(context.Context, int) error { return nil }

func (f *fakeCurriculum) Skills(context.Context, int) ([]curriculumdto.SkillOutput, error) {
	return f.data.Skills, nil
}

func (f *fakeCurriculum) Skill(context.Context, int) (curriculumdto.SkillOutput, error) {
	return curriculumdto.SkillOutput{}, nil
}

func (f *fakeCurriculum) SearchSkills(context.Context, string) ([]curriculumdto.SkillOutput, error) {
	return nil, nil
}
func (f *fakeCurriculum) StartSkill(context.Context, int) error { return nil }

func (f *fakeCurriculum) Reindex(context.Context) error { return nil }

type fakeProgress struct{}

func (fakeProgress) Overview(context.Context, int) (progressdto.OverviewOutput, error) {
	return progressdto.OverviewOutput{}, nil
}

func (fakeProgress) PathProgress(context.Context, int, int) (progressdto.PathProgressOutput, error) {
	return progressdto.PathProgressOutput{}, nil
}

func (fakeProgress) CompleteSkill(context.Context, int, progressdto.CompleteSkillInput) (progressdto.OverviewOutput, error) {
	return progressdto.OverviewOutput{}, nil
}

type fakeAssistant struct{}

func (fakeAssistant) GeneratePath(context.Context, assistantdto.GeneratePathInput) (assistantdto.GeneratedPathOutput, error) {
	return assistantdto.GeneratedPathOutput{PathID: 1, Title: "Go"}, nil
}

func (fakeAssistant) GenerateLessonContent(context.Context, int) (string, error) { return "", nil }

func (fakeAssistant) GenerateQuiz(context.Context, assistantdto.GenerateQuizInput) (assistantdto.QuizOutput, error) {
	return assistantdto.QuizOutput{}, nil
}

func (fakeAssistant) Chat(context.Context, string, []assistantdto.ChatTurnOutput) (string, error) {
	return "hi", nil
}

type fakeWorkspace struct{}

func (fakeWorkspace) Projects(context.Context) ([]workspacedto.ProjectOutput, error) {
	return nil, nil
}

func (fakeWorkspace) Project(context.Context, int) (workspacedto.ProjectOutput, error) {
	return workspacedto.ProjectOutput{}, nil
}

func (fakeWorkspace) CreateProject(context.Context, workspacedto.CreateProjectInput) (workspacedto.ProjectOutput, error) {
	return workspacedto.ProjectOutput{}, nil
}

func (fakeWorkspace) Checkout(context.Context, int) (workspacedto.CheckoutOutput, error) {
	return workspacedto.CheckoutOutput{}, nil
}

func (fakeWorkspace) Sync(context.Context, int) error { return nil }

func (fakeWorkspace) CloseCheckout(context.Context, int) error { return nil }

func (fakeWorkspace) WatchCheckout(context.Context, int) (<-chan struct{}, error) {
	return nil, nil
}

func (fakeWorkspace) SetStatus(context.Context, int, string) error { return nil }

func (fakeWorkspace) Runners(context.Context) ([]workspacedto.RunnerOutput, error) {
	return nil, nil
}

func (fakeWorkspace) RunCommand(context.Context, workspacedto.RunCommandInput) (workspacedto.RunResultOutput, error) {
	return workspacedto.RunResultOutput{}, nil
}

type fakeResources struct{}

func (fakeResources) Resources(context.Context, string, string) ([]resourcesdto.ResourceOutput, error) {
	return nil, nil
}

func (fakeResources) Open(context.Context, int) error { return nil }

func (fakeResources) ReadPDFPage(context.Context, int, int) (resourcesdto.PageOutput, error) {
	return resourcesdto.PageOutput{}, nil
}

func newTestModel(account *fakeAccount, curriculum *fakeCurriculum) Model {
	return New(Ports{
		Account:    account,
		Curriculum: curriculum,
		Progress:   fakeProgress{},
		Assistant:  fakeAssistant{},
		Workspace:  fakeWorkspace{},
		Resources:  fakeResources{},
	}, zap.NewNop())
}

func drain(t *testing.T, m tea.Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return m.(Model), nil
	}
	msg := cmd()
	if msg == nil {
		return m.(Model), nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m, _ = drainOne(m, c)
		}
		return m.(Model), nil
	}
	next, nextCmd := m.Update(msg)
	return next.(Model), nextCmd
}

func drainOne(m tea.Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	msg := cmd()
	if msg == nil {
		return m, nil
	}
	return m.Update(msg)
}

// boot drains the background session load, then dismisses the welcome
// banner with a key press the way a user would.
func boot(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, _ := drain(t, m, m.Init())
	model, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(Model), cmd
}

// ─── tests ───────────────────────────────────────────────────────────────────

func TestWelcomeHoldsUntilKeyPress(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, Onboarded: true}}
	m := newTestModel(account, &fakeCurriculum{})

	next, _ := drain(t, m, m.Init())
	if next.state != stateWelcome {
		t.Fatalf("a finished session load must not skip the welcome banner, got %v", next.state)
	}

	model, _ := next.Update(tea.KeyMsg{Type: tea.KeySpace})
	if got := model.(Model).state; got != stateActive {
		t.Fatalf("any key must dismiss welcome and route the session, got %v", got)
	}
}

func TestBootWithoutSessionLandsOnAuth(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{current: apperrors.ErrNotAuthenticated}
	m := newTestModel(account, &fakeCurriculum{})

	next, _ := boot(t, m)
	if next.state != stateAuth {
		t.Fatalf("expected auth state, got %v", next.state)
	}
}

func TestBootWithUnonboardedSessionLandsOnOnboarding(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, FullName: "Ada"}}
	m := newTestModel(account, &fakeCurriculum{})

	next, _ := boot(t, m)
	if next.state != stateOnboarding {
		t.Fatalf("expected onboarding state, got %v", next.state)
	}
}

func TestBootWithOnboardedSessionLoadsInitialData(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, FullName: "Ada", Onboarded: true}}
	curriculum := &fakeCurriculum{data: curriculumdto.InitialData{
		Selected: curriculumdto.PathOutput{ID: 3, Title: "Backend Engineering"},
	}}
	m := newTestModel(account, curriculum)

	next, cmd := boot(t, m)
	if next.state != stateActive {
		t.Fatalf("expected active state, got %v", next.state)
	}
	next, _ = drain(t, next, cmd)
	if curriculum.loads != 1 {
		t.Fatalf("expected one initial load, got %d", curriculum.loads)
	}
	if next.data.Selected.ID != 3 {
		t.Fatalf("initial data not applied: %+v", next.data.Selected)
	}
}

func TestMissingPathsSurfacesHintInsteadOfCrashing(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, Onboarded: true}}
	curriculum := &fakeCurriculum{err: apperrors.ErrNoLearningPaths}
	m := newTestModel(account, curriculum)

	next, cmd := boot(t, m)
	next, _ = drain(t, next, cmd)
	if next.state != stateActive {
		t.Fatalf("load failure must not leave the active screen, got %v", next.state)
	}
	if !next.statusBad || next.status == "" {
		t.Fatalf("expected an error hint in the status bar, got %q", next.status)
	}
}

func TestLogoutReturnsToAuth(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, Onboarded: true}}
	m := newTestModel(account, &fakeCurriculum{})

	next, cmd := boot(t, m)
	next, _ = drain(t, next, cmd)

	next, _ = drain(t, next, next.logoutCmd())
	if next.state != stateAuth {
		t.Fatalf("expected auth after logout, got %v", next.state)
	}
	if account.logouts != 1 {
		t.Fatalf("expected one logout call, got %d", account.logouts)
	}
	if next.session.UserID != 0 || next.data.Selected.ID != 0 {
		t.Fatalf("logout must clear session and data")
	}
}

func TestTabCyclingWraps(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, Onboarded: true}}
	m := newTestModel(account, &fakeCurriculum{})
	next, cmd := boot(t, m)
	next, _ = drain(t, next, cmd)

	for i := 0; i < int(tabCount); i++ {
		model, _ := next.Update(tea.KeyMsg{Type: tea.KeyTab})
		next = model.(Model)
	}
	if next.tab != tabDashboard {
		t.Fatalf("cycling through all tabs must wrap to dashboard, got %v", next.tab)
	}

	model, _ := next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next = model.(Model)
	if next.tab != tabChat {
		t.Fatalf("shift+tab from the first tab must wrap to the last, got %v", next.tab)
	}
}

func TestPaletteUnknownCommandReportsError(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{session: accountdto.SessionOutput{UserID: 7, Onboarded: true}}
	m := newTestModel(account, &fakeCurriculum{})
	next, cmd := boot(t, m)
	next, _ = drain(t, next, cmd)

	model, _ := next.executePalette("frobnicate")
	next = model.(Model)
	if !next.statusBad {
		t.Fatalf("unknown palette command must flag the status bar")
	}
}
