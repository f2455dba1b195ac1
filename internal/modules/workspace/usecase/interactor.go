// Package usecase adapts the workspace service to the inbound port.
package usecase

import (
	"context"

	accountportin "pathora/internal/modules/account/port/in"
	"pathora/internal/modules/workspace/domain"
	"pathora/internal/modules/workspace/dto"
	portin "pathora/internal/modules/workspace/port/in"
	"pathora/internal/modules/workspace/service"
)

type Interactor struct {
	svc     *service.WorkspaceService
	account accountportin.Usecase
}

var _ portin.Usecase = (*Interactor)(nil)

func NewInteractor(svc *service.WorkspaceService, account accountportin.Usecase) *Interactor {
	return &Interactor{svc: svc, account: account}
}

func (i *Interactor) Projects(ctx context.Context) ([]dto.ProjectOutput, error) {
	session, err := i.account.Current(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := i.svc.Projects(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectOutput, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectOutput(p))
	}
	return out, nil
}

func (i *Interactor) Project(ctx context.Context, projectID int) (dto.ProjectOutput, error) {
	if _, err := i.account.Current(ctx); err != nil {
		return dto.ProjectOutput{}, err
	}
	project, err := i.svc.Project(ctx, projectID)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toProjectOutput(project), nil
}

func (i *Interactor) CreateProject(ctx context.Context, in dto.CreateProjectInput) (dto.ProjectOutput, error) {
	session, err := i.account.Current(ctx)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	project, err := i.svc.CreateProject(ctx, session.UserID, domain.Project{
		Title:          in.Title,
		Description:    in.Description,
		Difficulty:     in.Difficulty,
		Technologies:   in.Technologies,
		EstimatedHours: in.EstimatedHours,
	})
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toProjectOutput(project), nil
}

func (i *Interactor) Checkout(ctx context.Context, projectID int) (dto.CheckoutOutput, error) {
	if _, err := i.account.Current(ctx); err != nil {
		return dto.CheckoutOutput{}, err
	}
	project, dir, err := i.svc.Checkout(ctx, projectID)
	if err != nil {
		return dto.CheckoutOutput{}, err
	}
	return dto.CheckoutOutput{Project: toProjectOutput(project), Dir: dir}, nil
}

func (i *Interactor) Sync(ctx context.Context, projectID int) error {
	if _, err := i.account.Current(ctx); err != nil {
		return err
	}
	return i.svc.Sync(ctx, projectID)
}

func (i *Interactor) CloseCheckout(ctx context.Context, projectID int) error {
	if _, err := i.account.Current(ctx); err != nil {
		return err
	}
	return i.svc.CloseCheckout(ctx, projectID)
}

func (i *Interactor) WatchCheckout(ctx context.Context, projectID int) (<-chan struct{}, error) {
	return i.svc.WatchCheckout(ctx, projectID)
}

func (i *Interactor) SetStatus(ctx context.Context, projectID int, status string) error {
	if _, err := i.account.Current(ctx); err != nil {
		return err
	}
	return i.svc.SetStatus(ctx, projectID, status)
}

func (i *Interactor) Runners(ctx context.Context) ([]dto.RunnerOutput, error) {
	metas, err := i.svc.Runners(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RunnerOutput, 0, len(metas))
	for _, meta := range metas {
		out = append(out, dto.RunnerOutput{Name: meta.Name, Version: meta.Version, Description: meta.Description})
	}
	return out, nil
}

func (i *Interactor) RunCommand(ctx context.Context, in dto.RunCommandInput) (dto.RunResultOutput, error) {
	if _, err := i.account.Current(ctx); err != nil {
		return dto.RunResultOutput{}, err
	}
	result, err := i.svc.RunCommand(ctx, in.Runner, domain.RunRequest{
		CommandID: in.CommandID,
		InputJSON: in.InputJSON,
		Context:   domain.RunContext{ProjectID: in.ProjectID},
	})
	if err != nil {
		return dto.RunResultOutput{}, err
	}
	return dto.RunResultOutput{Stdout: result.Stdout, Stderr: result.Stderr, ExitCode: result.ExitCode}, nil
}

func toProjectOutput(p domain.Project) dto.ProjectOutput {
	return dto.ProjectOutput{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Status:         p.Status,
		Difficulty:     p.Difficulty,
		Technologies:   p.Technologies,
		FileCount:      len(p.Files),
		StartDate:      p.StartDate,
		EstimatedHours: p.EstimatedHours,
	}
}
