// Package service implements progress aggregation and skill completion.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pathora/internal/modules/progress/domain"
	portout "pathora/internal/modules/progress/port/out"
	"pathora/internal/platform/clock"
	apperrors "pathora/internal/platform/errors"
)

type ProgressService struct {
	api     portout.ProgressAPI
	journal portout.JournalStore
	clock   clock.Clock
	log     *zap.Logger
}

func NewProgressService(api portout.ProgressAPI, journal portout.JournalStore, clk clock.Clock, log *zap.Logger) *ProgressService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProgressService{api: api, journal: journal, clock: clk, log: log}
}

func (s *ProgressService) Overview(ctx context.Context, userID int) (domain.Overview, error) {
	if userID == 0 {
		return domain.Overview{}, apperrors.ErrNotAuthenticated
	}
	overview, err := s.api.Overview(ctx, userID)
	if err != nil {
		return domain.Overview{}, err
	}
	return overview.Normalize(), nil
}

func (s *ProgressService) PathProgress(ctx context.Context, pathID, userID int) (domain.PathProgress, error) {
	progress, err := s.api.PathProgress(ctx, pathID, userID)
	if err != nil {
		return domain.PathProgress{}, err
	}
	progress.Percent = domain.CompletionPercentage(progress.CompletedLessons, progress.TotalLessons)
	return progress, nil
}

// CompleteSkill posts the completion and re-fetches the overview, so the
// caller always ends up with the server's view. Minutes are the journal's
// unit; the wire wants hours. The journal write happens after the server
// accepted the completion; a journal failure is logged but does not undo
// the completion.
func (s *ProgressService) CompleteSkill(ctx context.Context, userID int, entry domain.JournalEntry) (domain.Overview, error) {
	hours := float64(entry.Minutes) / 60
	if err := s.api.CompleteLesson(ctx, entry.SkillID, userID, hours); err != nil {
		return domain.Overview{}, fmt.Errorf("record completion: %w", err)
	}

	entry.When = s.clock.Now()
	if err := s.journal.Append(ctx, entry); err != nil {
		s.log.Warn("journal write failed", zap.Int("skill_id", entry.SkillID), zap.Error(err))
	}

	return s.Overview(ctx, userID)
}
