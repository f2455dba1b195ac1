// Package service implements path resolution and the local skill index.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pathora/internal/modules/curriculum/domain"
	portout "pathora/internal/modules/curriculum/port/out"
	progressdomain "pathora/internal/modules/progress/domain"
)

type CurriculumService struct {
	api       portout.PathAPI
	prefs     portout.PreferenceStore
	projector portout.SkillProjector
	pathCache portout.PathCache
	log       *zap.Logger
}

func NewCurriculumService(
	api portout.PathAPI,
	prefs portout.PreferenceStore,
	projector portout.SkillProjector,
	pathCache portout.PathCache,
	log *zap.Logger,
) *CurriculumService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CurriculumService{api: api, prefs: prefs, projector: projector, pathCache: pathCache, log: log}
}

func (s *CurriculumService) ListPaths(ctx context.Context, userID int) ([]domain.Path, error) {
	return s.api.ListPaths(ctx, userID)
}

// Resolve picks the active path from the fetched list, layering the stored
// selection under the caller's request, and remembers the winner.
func (s *CurriculumService) Resolve(ctx context.Context, paths []domain.Path, sel domain.Selection) (domain.Path, error) {
	if sel.StoredID == 0 {
		stored, err := s.prefs.SelectedPathID(ctx)
		if err != nil {
			return domain.Path{}, fmt.Errorf("read stored selection: %w", err)
		}
		sel.StoredID = stored
	}

	path, err := domain.SelectPath(paths, sel)
	if err != nil {
		return domain.Path{}, err
	}
	if err := s.prefs.SaveSelectedPath(ctx, path.ID); err != nil {
		return domain.Path{}, fmt.Errorf("remember selection: %w", err)
	}
	return path, nil
}

// Project flattens the path and rebuilds its slice of the skill index.
func (s *CurriculumService) Project(ctx context.Context, path domain.Path) ([]domain.Skill, error) {
	skills := domain.Flatten(path)
	if err := s.projector.Reset(ctx, path.ID); err != nil {
		return nil, fmt.Errorf("reset skill index: %w", err)
	}
	if err := s.projector.Upsert(ctx, skills); err != nil {
		return nil, fmt.Errorf("update skill index: %w", err)
	}
	s.log.Debug("skill index rebuilt", zap.Int("path_id", path.ID), zap.Int("skills", len(skills)))
	return skills, nil
}

func (s *CurriculumService) SkillsByPath(ctx context.Context, pathID int) ([]domain.Skill, error) {
	return s.projector.ByPath(ctx, pathID)
}

func (s *CurriculumService) SearchSkills(ctx context.Context, query string) ([]domain.Skill, error) {
	return s.projector.Search(ctx, query)
}

// MarkSkillStarted flips a skill to in-progress in the local index. The
// server has no start endpoint; starting is a client-side fact until the
// skill is completed. The transition goes through the status reducer, so a
// completed skill can never drop back to in-progress.
func (s *CurriculumService) MarkSkillStarted(ctx context.Context, skillID int) error {
	pathID, err := s.prefs.SelectedPathID(ctx)
	if err != nil {
		return fmt.Errorf("read stored selection: %w", err)
	}
	if pathID == 0 {
		return domain.ErrNoSelection
	}

	skills, err := s.projector.ByPath(ctx, pathID)
	if err != nil {
		return fmt.Errorf("read skill index: %w", err)
	}
	statuses := progressdomain.NewStatusSet()
	for _, skill := range skills {
		switch skill.Status {
		case domain.StatusCompleted:
			statuses.Complete(skill.ID)
		case domain.StatusInProgress:
			statuses.Start(skill.ID)
		}
	}
	statuses.Start(skillID)
	if !statuses.InProgress(skillID) {
		return fmt.Errorf("skill %d is already completed", skillID)
	}

	if err := s.projector.SetStatus(ctx, pathID, skillID, domain.StatusInProgress); err != nil {
		return err
	}
	s.log.Debug("skill started", zap.Int("path_id", pathID), zap.Int("skill_id", skillID))
	return nil
}

func (s *CurriculumService) SelectPath(ctx context.Context, pathID int) error {
	return s.prefs.SaveSelectedPath(ctx, pathID)
}

// CachePathList refreshes the offline path listing. The cache is
// best-effort: a write failure is logged, never surfaced.
func (s *CurriculumService) CachePathList(ctx context.Context, paths []domain.Path) {
	summaries := make([]domain.PathSummary, 0, len(paths))
	for _, p := range paths {
		summaries = append(summaries, domain.Summarize(p))
	}
	if err := s.pathCache.UpsertPaths(ctx, summaries); err != nil {
		s.log.Warn("path cache refresh failed", zap.Error(err))
	}
}

func (s *CurriculumService) CachedPaths(ctx context.Context) ([]domain.PathSummary, error) {
	return s.pathCache.CachedPaths(ctx)
}

func (s *CurriculumService) StoredSelection(ctx context.Context) (int, error) {
	return s.prefs.SelectedPathID(ctx)
}

func (s *CurriculumService) RefreshPath(ctx context.Context, pathID, userID int) (domain.Path, error) {
	return s.api.PathDetail(ctx, pathID, userID)
}
