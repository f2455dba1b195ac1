// Package portout declares the outbound dependencies of the workspace module.
package portout

import (
	"context"

	"pathora/internal/modules/workspace/domain"
)

type ProjectAPI interface {
	ListProjects(ctx context.Context, userID int) ([]domain.Project, error)
	Project(ctx context.Context, projectID int) (domain.Project, error)
	CreateProject(ctx context.Context, userID int, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateStatus(ctx context.Context, projectID int, status string) error
}

// CheckoutStore maps a project's file set to and from a local directory.
type CheckoutStore interface {
	Checkout(ctx context.Context, project domain.Project) (string, error)
	// Collect reads the checkout back into the wire file map. Paths are
	// relative, forward-slashed.
	Collect(ctx context.Context, projectID int) (map[string]string, error)
	Dir(projectID int) string
	// Remove deletes the local checkout. Idempotent.
	Remove(ctx context.Context, projectID int) error
}

// ManifestStore loads the configured runner manifests.
type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// EditWatcher reports local edits under a checkout directory. The channel
// ticks once per settled burst of changes and closes when ctx is done.
type EditWatcher interface {
	Watch(ctx context.Context, dir string) (<-chan struct{}, error)
}

// RunnerHost starts a runner binary and speaks the runner protocol to it.
type RunnerHost interface {
	Metadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListCommands(ctx context.Context, manifest domain.Manifest) ([]domain.CommandDescriptor, error)
	Run(ctx context.Context, manifest domain.Manifest, req domain.RunRequest) (domain.RunResult, error)
}
