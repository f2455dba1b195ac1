// Package usecase wires the curriculum service to its inbound port and
// implements the initial-data load that the dashboard blocks on.
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	accountportin "pathora/internal/modules/account/port/in"
	"pathora/internal/modules/curriculum/domain"
	"pathora/internal/modules/curriculum/dto"
	portin "pathora/internal/modules/curriculum/port/in"
	"pathora/internal/modules/curriculum/service"
	progressdomain "pathora/internal/modules/progress/domain"
	progressdto "pathora/internal/modules/progress/dto"
	progressportin "pathora/internal/modules/progress/port/in"
	apperrors "pathora/internal/platform/errors"
)

type Interactor struct {
	svc         *service.CurriculumService
	account     accountportin.Usecase
	progress    progressportin.Usecase
	loadTimeout time.Duration
}

var _ portin.Usecase = (*Interactor)(nil)

func NewInteractor(
	svc *service.CurriculumService,
	account accountportin.Usecase,
	progress progressportin.Usecase,
	loadTimeout time.Duration,
) *Interactor {
	return &Interactor{svc: svc, account: account, progress: progress, loadTimeout: loadTimeout}
}

// LoadInitialData fetches the path list and the progress overview in
// parallel under one deadline. Either failure fails the load as a whole;
// nothing is persisted or projected until both fetches succeed, so a failed
// load leaves the previous state untouched.
func (i *Interactor) LoadInitialData(ctx context.Context, opts dto.LoadOptions) (dto.InitialData, error) {
	session, err := i.account.Current(ctx)
	if err != nil {
		return dto.InitialData{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, i.loadTimeout)
	defer cancel()

	var (
		paths    []domain.Path
		overview progressdto.OverviewOutput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		paths, err = i.svc.ListPaths(gctx, session.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		overview, err = i.progress.Overview(gctx, session.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.InitialData{}, err
	}
	i.svc.CachePathList(ctx, paths)

	selected, err := i.svc.Resolve(ctx, paths, domain.Selection{
		RequestedID: opts.RequestedPathID,
		ForceLatest: opts.ForceLatest,
	})
	if err != nil {
		return dto.InitialData{}, err
	}

	skills, err := i.svc.Project(ctx, selected)
	if err != nil {
		return dto.InitialData{}, err
	}

	out := dto.InitialData{
		Selected: toPathOutput(selected),
		Overview: overview,
	}
	for _, p := range paths {
		out.Paths = append(out.Paths, toPathOutput(p))
	}
	skillIDs := make([]string, 0, len(skills))
	for _, s := range skills {
		out.Skills = append(out.Skills, toSkillOutput(s))
		skillIDs = append(skillIDs, strconv.Itoa(s.ID))
	}
	out.Completion = progressdomain.SkillCompletionPercentage(overview.CompletedSkillIDs, skillIDs)
	return out, nil
}

func (i *Interactor) Paths(ctx context.Context) ([]dto.PathOutput, error) {
	session, err := i.account.Current(ctx)
	if err != nil {
		return nil, err
	}
	paths, err := i.svc.ListPaths(ctx, session.UserID)
	if err != nil {
		// Degrade to the cached listing when the API is unreachable.
		cached, cacheErr := i.svc.CachedPaths(ctx)
		if cacheErr != nil || len(cached) == 0 {
			return nil, err
		}
		out := make([]dto.PathOutput, 0, len(cached))
		for _, p := range cached {
			out = append(out, summaryToOutput(p))
		}
		return out, nil
	}
	i.svc.CachePathList(ctx, paths)
	out := make([]dto.PathOutput, 0, len(paths))
	for _, p := range paths {
		out = append(out, toPathOutput(p))
	}
	return out, nil
}

func (i *Interactor) SelectPath(ctx context.Context, pathID int) error {
	return i.svc.SelectPath(ctx, pathID)
}

func (i *Interactor) Skills(ctx context.Context, pathID int) ([]dto.SkillOutput, error) {
	skills, err := i.svc.SkillsByPath(ctx, pathID)
	if err != nil {
		return nil, err
	}
	return toSkillOutputs(skills), nil
}

func (i *Interactor) SearchSkills(ctx context.Context, query string) ([]dto.SkillOutput, error) {
	skills, err := i.svc.SearchSkills(ctx, query)
	if err != nil {
		return nil, err
	}
	return toSkillOutputs(skills), nil
}

func (i *Interactor) Skill(ctx context.Context, skillID int) (dto.SkillOutput, error) {
	pathID, err := i.svc.StoredSelection(ctx)
	if err != nil {
		return dto.SkillOutput{}, err
	}
	if pathID == 0 {
		return dto.SkillOutput{}, domain.ErrNoSelection
	}
	skills, err := i.svc.SkillsByPath(ctx, pathID)
	if err != nil {
		return dto.SkillOutput{}, err
	}
	for _, s := range skills {
		if s.ID == skillID {
			return toSkillOutput(s), nil
		}
	}
	return dto.SkillOutput{}, fmt.Errorf("%w: skill %d", apperrors.ErrNotFound, skillID)
}

func (i *Interactor) StartSkill(ctx context.Context, skillID int) error {
	return i.svc.MarkSkillStarted(ctx, skillID)
}

// Reindex re-fetches the active path and rebuilds its slice of the index.
func (i *Interactor) Reindex(ctx context.Context) error {
	session, err := i.account.Current(ctx)
	if err != nil {
		return err
	}
	pathID, err := i.svc.StoredSelection(ctx)
	if err != nil {
		return err
	}
	if pathID == 0 {
		paths, err := i.svc.ListPaths(ctx, session.UserID)
		if err != nil {
			return err
		}
		selected, err := i.svc.Resolve(ctx, paths, domain.Selection{})
		if err != nil {
			return err
		}
		pathID = selected.ID
	}

	path, err := i.svc.RefreshPath(ctx, pathID, session.UserID)
	if err != nil {
		return err
	}
	_, err = i.svc.Project(ctx, path)
	return err
}

func toPathOutput(p domain.Path) dto.PathOutput {
	return summaryToOutput(domain.Summarize(p))
}

func summaryToOutput(p domain.PathSummary) dto.PathOutput {
	return dto.PathOutput{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  p.Difficulty,
		ModuleCount: p.ModuleCount,
		SkillCount:  p.SkillCount,
	}
}

func toSkillOutputs(skills []domain.Skill) []dto.SkillOutput {
	out := make([]dto.SkillOutput, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillOutput(s))
	}
	return out
}

func toSkillOutput(s domain.Skill) dto.SkillOutput {
	out := dto.SkillOutput{
		ID:            s.ID,
		PathID:        s.PathID,
		Title:         s.Title,
		Category:      s.Category,
		Content:       s.Content,
		Difficulty:    s.Difficulty,
		EstimatedTime: s.EstimatedTime,
		WhyItMatters:  s.WhyItMatters,
		WhatYouLearn:  s.WhatYouLearn,
		Status:        s.Status,
		Prerequisites: s.Prerequisites,
		Locked:        s.Locked,
		Position:      s.Position,
	}
	for _, r := range s.AIResources {
		out.AIResources = append(out.AIResources, dto.ResourceOutput{Title: r.Title, URL: r.URL, Kind: r.Kind})
	}
	return out
}
