package service_test

import (
	"context"
	"errors"
	"testing"

	"pathora/internal/modules/workspace/domain"
	"pathora/internal/modules/workspace/service"
	apperrors "pathora/internal/platform/errors"
)

type fakeProjectAPI struct {
	projects map[int]domain.Project
	updated  []domain.Project
	statuses map[int]string
}

func newFakeProjectAPI(projects ...domain.Project) *fakeProjectAPI {
	api := &fakeProjectAPI{projects: make(map[int]domain.Project), statuses: make(map[int]string)}
	for _, p := range projects {
		api.projects[p.ID] = p
	}
	return api
}

func (a *fakeProjectAPI) ListProjects(context.Context, int) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range a.projects {
		out = append(out, p)
	}
	return out, nil
}

func (a *fakeProjectAPI) Project(_ context.Context, id int) (domain.Project, error) {
	p, ok := a.projects[id]
	if !ok {
		return domain.Project{}, apperrors.ErrNotFound
	}
	return p, nil
}

func (a *fakeProjectAPI) CreateProject(_ context.Context, userID int, p domain.Project) (domain.Project, error) {
	p.ID = len(a.projects) + 1
	p.UserID = userID
	a.projects[p.ID] = p
	return p, nil
}

func (a *fakeProjectAPI) UpdateProject(_ context.Context, p domain.Project) (domain.Project, error) {
	a.updated = append(a.updated, p)
	a.projects[p.ID] = p
	return p, nil
}

func (a *fakeProjectAPI) UpdateStatus(_ context.Context, id int, status string) error {
	a.statuses[id] = status
	return nil
}

type fakeCheckout struct {
	collected map[string]string
	removed   bool
}

func (c *fakeCheckout) Checkout(_ context.Context, p domain.Project) (string, error) {
	return c.Dir(p.ID), nil
}

func (c *fakeCheckout) Collect(context.Context, int) (map[string]string, error) {
	return c.collected, nil
}

func (c *fakeCheckout) Dir(projectID int) string { return "/tmp/checkouts/project-1" }

func (c *fakeCheckout) Remove(context.Context, int) error {
	c.removed = true
	return nil
}

type fakeManifests struct {
	manifests []domain.Manifest
}

func (m *fakeManifests) Load(context.Context) ([]domain.Manifest, error) {
	return m.manifests, nil
}

type fakeHost struct {
	metaErr error
	result  domain.RunResult
	runs    []domain.RunRequest
}

func (h *fakeHost) Metadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	if h.metaErr != nil {
		return domain.Metadata{}, h.metaErr
	}
	return domain.Metadata{Name: m.Name, Version: "1.0.0"}, nil
}

func (h *fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return nil, nil
}

func (h *fakeHost) Run(_ context.Context, _ domain.Manifest, req domain.RunRequest) (domain.RunResult, error) {
	h.runs = append(h.runs, req)
	return h.result, nil
}

func TestCreateProjectFillsDefaults(t *testing.T) {
	t.Parallel()
	api := newFakeProjectAPI()
	svc := service.NewWorkspaceService(api, &fakeCheckout{}, &fakeManifests{}, &fakeHost{}, nil, nil)

	created, err := svc.CreateProject(context.Background(), 3, domain.Project{Title: "Inventory API"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusPlanning {
		t.Fatalf("status should default to planning, got %q", created.Status)
	}
	if created.Difficulty != "beginner" {
		t.Fatalf("difficulty should default to beginner, got %q", created.Difficulty)
	}
}

func TestSyncPushesCollectedFiles(t *testing.T) {
	t.Parallel()
	api := newFakeProjectAPI(domain.Project{ID: 1, Title: "API", Files: map[string]string{"old.go": "old"}})
	checkout := &fakeCheckout{collected: map[string]string{"new.go": "new"}}
	svc := service.NewWorkspaceService(api, checkout, &fakeManifests{}, &fakeHost{}, nil, nil)

	if err := svc.Sync(context.Background(), 1); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(api.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(api.updated))
	}
	if api.updated[0].Files["new.go"] != "new" {
		t.Fatalf("local files must replace the server copy: %v", api.updated[0].Files)
	}
}

func TestCloseCheckoutSyncsBeforeRemoving(t *testing.T) {
	t.Parallel()
	api := newFakeProjectAPI(domain.Project{ID: 1, Title: "API", Files: map[string]string{"old.go": "old"}})
	checkout := &fakeCheckout{collected: map[string]string{"new.go": "new"}}
	svc := service.NewWorkspaceService(api, checkout, &fakeManifests{}, &fakeHost{}, nil, nil)

	if err := svc.CloseCheckout(context.Background(), 1); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(api.updated) != 1 {
		t.Fatalf("close must push edits first, got %d updates", len(api.updated))
	}
	if !checkout.removed {
		t.Fatalf("close must delete the local checkout")
	}
}

func TestCloseCheckoutKeepsFilesWhenSyncFails(t *testing.T) {
	t.Parallel()
	checkout := &fakeCheckout{collected: map[string]string{"new.go": "new"}}
	svc := service.NewWorkspaceService(newFakeProjectAPI(), checkout, &fakeManifests{}, &fakeHost{}, nil, nil)

	if err := svc.CloseCheckout(context.Background(), 404); err == nil {
		t.Fatalf("expected error")
	}
	if checkout.removed {
		t.Fatalf("a failed sync must leave the checkout on disk")
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	svc := service.NewWorkspaceService(newFakeProjectAPI(), &fakeCheckout{}, &fakeManifests{}, &fakeHost{}, nil, nil)
	if err := svc.SetStatus(context.Background(), 1, "paused"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRunnersSkipsDeadBinaries(t *testing.T) {
	t.Parallel()
	manifests := &fakeManifests{manifests: []domain.Manifest{{Name: "alive", Binary: "/x"}, {Name: "dead", Binary: "/y"}}}
	host := &fakeHost{}
	svc := service.NewWorkspaceService(newFakeProjectAPI(), &fakeCheckout{}, manifests, host, nil, nil)

	runners, err := svc.Runners(context.Background())
	if err != nil {
		t.Fatalf("runners: %v", err)
	}
	if len(runners) != 2 {
		t.Fatalf("expected both runners when host answers, got %d", len(runners))
	}

	host.metaErr = errors.New("no such binary")
	runners, err = svc.Runners(context.Background())
	if err != nil {
		t.Fatalf("runners with dead host: %v", err)
	}
	if len(runners) != 0 {
		t.Fatalf("dead runners must be skipped, got %v", runners)
	}
}

func TestRunCommandResolvesCheckoutDir(t *testing.T) {
	t.Parallel()
	manifests := &fakeManifests{manifests: []domain.Manifest{{Name: "go-runner", Binary: "/x"}}}
	host := &fakeHost{result: domain.RunResult{ExitCode: 0, Stdout: "ok"}}
	svc := service.NewWorkspaceService(newFakeProjectAPI(), &fakeCheckout{}, manifests, host, nil, nil)

	req := domain.RunRequest{CommandID: "test", Context: domain.RunContext{ProjectID: 1}}
	result, err := svc.RunCommand(context.Background(), "go-runner", req)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Stdout != "ok" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(host.runs) != 1 || host.runs[0].Context.ProjectDir != "/tmp/checkouts/project-1" {
		t.Fatalf("checkout dir must be injected: %+v", host.runs)
	}
}

func TestRunCommandUnknownRunner(t *testing.T) {
	t.Parallel()
	svc := service.NewWorkspaceService(newFakeProjectAPI(), &fakeCheckout{}, &fakeManifests{}, &fakeHost{}, nil, nil)
	if _, err := svc.RunCommand(context.Background(), "ghost", domain.RunRequest{}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
