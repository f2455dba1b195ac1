// Package service implements project checkouts and runner dispatch.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pathora/internal/modules/workspace/domain"
	portout "pathora/internal/modules/workspace/port/out"
	apperrors "pathora/internal/platform/errors"
)

type WorkspaceService struct {
	api      portout.ProjectAPI
	checkout portout.CheckoutStore
	runners  portout.ManifestStore
	host     portout.RunnerHost
	watcher  portout.EditWatcher
	log      *zap.Logger
}

func NewWorkspaceService(
	api portout.ProjectAPI,
	checkout portout.CheckoutStore,
	runners portout.ManifestStore,
	host portout.RunnerHost,
	watcher portout.EditWatcher,
	log *zap.Logger,
) *WorkspaceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorkspaceService{api: api, checkout: checkout, runners: runners, host: host, watcher: watcher, log: log}
}

func (s *WorkspaceService) Projects(ctx context.Context, userID int) ([]domain.Project, error) {
	return s.api.ListProjects(ctx, userID)
}

func (s *WorkspaceService) Project(ctx context.Context, projectID int) (domain.Project, error) {
	return s.api.Project(ctx, projectID)
}

func (s *WorkspaceService) CreateProject(ctx context.Context, userID int, project domain.Project) (domain.Project, error) {
	if project.Status == "" {
		project.Status = domain.StatusPlanning
	}
	if project.Difficulty == "" {
		project.Difficulty = "beginner"
	}
	if err := project.Validate(); err != nil {
		return domain.Project{}, err
	}
	return s.api.CreateProject(ctx, userID, project)
}

func (s *WorkspaceService) Checkout(ctx context.Context, projectID int) (domain.Project, string, error) {
	project, err := s.api.Project(ctx, projectID)
	if err != nil {
		return domain.Project{}, "", err
	}
	dir, err := s.checkout.Checkout(ctx, project)
	if err != nil {
		return domain.Project{}, "", fmt.Errorf("checkout project %d: %w", projectID, err)
	}
	s.log.Info("project checked out", zap.Int("project_id", projectID), zap.String("dir", dir))
	return project, dir, nil
}

// WatchCheckout watches the project's checkout directory for local edits.
func (s *WorkspaceService) WatchCheckout(ctx context.Context, projectID int) (<-chan struct{}, error) {
	return s.watcher.Watch(ctx, s.checkout.Dir(projectID))
}

// Sync reads the local checkout back and pushes the file set to the server.
// The server copy is replaced wholesale; there is no merge.
func (s *WorkspaceService) Sync(ctx context.Context, projectID int) error {
	project, err := s.api.Project(ctx, projectID)
	if err != nil {
		return err
	}
	files, err := s.checkout.Collect(ctx, projectID)
	if err != nil {
		return fmt.Errorf("collect checkout %d: %w", projectID, err)
	}
	project.Files = files
	if _, err := s.api.UpdateProject(ctx, project); err != nil {
		return fmt.Errorf("push project %d: %w", projectID, err)
	}
	s.log.Info("project synced", zap.Int("project_id", projectID), zap.Int("files", len(files)))
	return nil
}

// CloseCheckout syncs the checkout back one last time and deletes the local
// copy. Sync failure aborts the close so edits are never dropped.
func (s *WorkspaceService) CloseCheckout(ctx context.Context, projectID int) error {
	if err := s.Sync(ctx, projectID); err != nil {
		return err
	}
	if err := s.checkout.Remove(ctx, projectID); err != nil {
		return err
	}
	s.log.Info("project checkout closed", zap.Int("project_id", projectID))
	return nil
}

func (s *WorkspaceService) SetStatus(ctx context.Context, projectID int, status string) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("%w: unknown project status %q", apperrors.ErrInvalidInput, status)
	}
	return s.api.UpdateStatus(ctx, projectID, status)
}

// Runners probes every configured manifest and returns the ones that
// answered. A dead binary is logged and skipped, not fatal.
func (s *WorkspaceService) Runners(ctx context.Context) ([]domain.Metadata, error) {
	manifests, err := s.runners.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Metadata
	for _, manifest := range manifests {
		meta, err := s.host.Metadata(ctx, manifest)
		if err != nil {
			s.log.Warn("runner unavailable", zap.String("runner", manifest.Name), zap.Error(err))
			continue
		}
		meta.Description = manifest.Description
		out = append(out, meta)
	}
	return out, nil
}

func (s *WorkspaceService) RunCommand(ctx context.Context, runnerName string, req domain.RunRequest) (domain.RunResult, error) {
	manifest, err := s.findRunner(ctx, runnerName)
	if err != nil {
		return domain.RunResult{}, err
	}
	req.Context.ProjectDir = s.checkout.Dir(req.Context.ProjectID)
	result, err := s.host.Run(ctx, manifest, req)
	if err != nil {
		return domain.RunResult{}, err
	}
	s.log.Info("runner command finished",
		zap.String("runner", runnerName),
		zap.String("command", req.CommandID),
		zap.Int("exit_code", result.ExitCode),
	)
	return result, nil
}

func (s *WorkspaceService) findRunner(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := s.runners.Load(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, manifest := range manifests {
		if manifest.Name == name {
			return manifest, nil
		}
	}
	return domain.Manifest{}, fmt.Errorf("%w: runner %q", apperrors.ErrNotFound, name)
}
