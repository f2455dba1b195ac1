// Package bootstrap assembles the application graph: config, logging, the
// REST client, every module's adapters, services, and interactors.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	accountadapter "pathora/internal/modules/account/adapter/out"
	accountportin "pathora/internal/modules/account/port/in"
	accountservice "pathora/internal/modules/account/service"
	accountusecase "pathora/internal/modules/account/usecase"
	assistantadapter "pathora/internal/modules/assistant/adapter/out"
	assistantportin "pathora/internal/modules/assistant/port/in"
	assistantservice "pathora/internal/modules/assistant/service"
	assistantusecase "pathora/internal/modules/assistant/usecase"
	curriculumadapter "pathora/internal/modules/curriculum/adapter/out"
	curriculumportin "pathora/internal/modules/curriculum/port/in"
	curriculumservice "pathora/internal/modules/curriculum/service"
	curriculumusecase "pathora/internal/modules/curriculum/usecase"
	progressadapter "pathora/internal/modules/progress/adapter/out"
	progressportin "pathora/internal/modules/progress/port/in"
	progressservice "pathora/internal/modules/progress/service"
	progressusecase "pathora/internal/modules/progress/usecase"
	resourcesadapter "pathora/internal/modules/resources/adapter/out"
	resourcesportin "pathora/internal/modules/resources/port/in"
	resourcesservice "pathora/internal/modules/resources/service"
	resourcesusecase "pathora/internal/modules/resources/usecase"
	workspaceadapter "pathora/internal/modules/workspace/adapter/out"
	workspaceportin "pathora/internal/modules/workspace/port/in"
	workspaceservice "pathora/internal/modules/workspace/service"
	workspaceusecase "pathora/internal/modules/workspace/usecase"
	"pathora/internal/platform/clock"
	"pathora/internal/platform/config"
	"pathora/internal/platform/logging"
	"pathora/internal/platform/rest"
)

// App holds the wired module boundaries plus the shared infrastructure.
type App struct {
	Config config.Config
	Log    *zap.Logger

	Account    accountportin.Usecase
	Curriculum curriculumportin.Usecase
	Progress   progressportin.Usecase
	Assistant  assistantportin.Usecase
	Workspace  workspaceportin.Usecase
	Resources  resourcesportin.Usecase

	projector *curriculumadapter.SQLiteSkillProjector
}

// New builds the full graph. stateDir may be empty to use ~/.pathora.
func New(stateDir, logLevel string) (*App, error) {
	cfg, err := config.New(stateDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	log, err := logging.New(cfg.LogPath, logLevel)
	if err != nil {
		return nil, err
	}

	clk := clock.System{}

	// The REST client reads the token straight from the credential store so
	// the account module can depend on the client without a cycle.
	creds := accountadapter.NewFileCredentialStore(cfg.SessionPath)
	client := rest.NewClient(cfg.APIBaseURL, func() string {
		session, err := creds.Load(context.Background())
		if err != nil {
			return ""
		}
		return session.Token
	}, log.Named("rest"))

	prefs := curriculumadapter.NewFilePreferenceStore(cfg.PrefsPath)

	accountSvc := accountservice.NewAccountService(
		creds,
		accountadapter.NewHTTPAuthAPI(client),
		prefs,
		clk,
		log.Named("account"),
	)
	account := accountusecase.NewInteractor(accountSvc, clk)

	progressSvc := progressservice.NewProgressService(
		progressadapter.NewHTTPProgressAPI(client),
		progressadapter.NewMarkdownJournalStore(cfg.JournalDir),
		clk,
		log.Named("progress"),
	)
	progress := progressusecase.NewInteractor(progressSvc)

	projector, err := curriculumadapter.NewSQLiteSkillProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open skill index: %w", err)
	}
	curriculumSvc := curriculumservice.NewCurriculumService(
		curriculumadapter.NewHTTPPathAPI(client),
		prefs,
		projector,
		projector,
		log.Named("curriculum"),
	)
	curriculum := curriculumusecase.NewInteractor(curriculumSvc, account, progress, cfg.LoadTimeout)

	assistantSvc := assistantservice.NewAssistantService(
		assistantadapter.NewHTTPAssistantAPI(client),
		log.Named("assistant"),
	)
	assistant := assistantusecase.NewInteractor(assistantSvc, account)

	workspaceSvc := workspaceservice.NewWorkspaceService(
		workspaceadapter.NewHTTPProjectAPI(client),
		workspaceadapter.NewDirCheckoutStore(filepath.Join(cfg.StateDir, "projects")),
		workspaceadapter.NewYAMLRunnerStore(cfg.RunnersPath),
		workspaceadapter.NewGRPCRunnerHost(),
		workspaceadapter.NewCheckoutWatcher(log.Named("watch")),
		log.Named("workspace"),
	)
	workspace := workspaceusecase.NewInteractor(workspaceSvc, account)

	resourcesSvc := resourcesservice.NewResourcesService(
		resourcesadapter.NewHTTPCatalogAPI(client),
		resourcesadapter.NewOSExternalLauncher(),
		resourcesadapter.NewHTTPFileFetcher(filepath.Join(cfg.StateDir, "cache")),
		resourcesadapter.NewLocalPDFReader(),
		log.Named("resources"),
	)
	resources := resourcesusecase.NewInteractor(resourcesSvc)

	return &App{
		Config:     cfg,
		Log:        log,
		Account:    account,
		Curriculum: curriculum,
		Progress:   progress,
		Assistant:  assistant,
		Workspace:  workspace,
		Resources:  resources,
		projector:  projector,
	}, nil
}

// Close releases the skill index and flushes the logger.
func (a *App) Close() {
	if err := a.projector.Close(); err != nil {
		a.Log.Warn("close skill index", zap.Error(err))
	}
	_ = a.Log.Sync()
}
