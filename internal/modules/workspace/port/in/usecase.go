// Package portin declares the inbound boundary of the workspace module.
package portin

import (
	"context"

	"pathora/internal/modules/workspace/dto"
)

type Usecase interface {
	Projects(ctx context.Context) ([]dto.ProjectOutput, error)
	Project(ctx context.Context, projectID int) (dto.ProjectOutput, error)
	CreateProject(ctx context.Context, in dto.CreateProjectInput) (dto.ProjectOutput, error)
	// Checkout materializes the project's files under the workspace dir and
	// returns where they landed.
	Checkout(ctx context.Context, projectID int) (dto.CheckoutOutput, error)
	// Sync pushes local file edits back to the server copy.
	Sync(ctx context.Context, projectID int) error
	// CloseCheckout syncs, then deletes the local checkout.
	CloseCheckout(ctx context.Context, projectID int) error
	// WatchCheckout ticks when files under the project's checkout change.
	WatchCheckout(ctx context.Context, projectID int) (<-chan struct{}, error)
	SetStatus(ctx context.Context, projectID int, status string) error
	// Runners lists the configured runner binaries that answered a metadata
	// probe.
	Runners(ctx context.Context) ([]dto.RunnerOutput, error)
	RunCommand(ctx context.Context, in dto.RunCommandInput) (dto.RunResultOutput, error)
}
