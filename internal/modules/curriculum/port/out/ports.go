// Package portout declares the outbound dependencies of the curriculum module.
package portout

import (
	"context"

	"pathora/internal/modules/curriculum/domain"
)

type PathAPI interface {
	ListPaths(ctx context.Context, userID int) ([]domain.Path, error)
	PathDetail(ctx context.Context, pathID, userID int) (domain.Path, error)
}

// PreferenceStore persists small per-user settings across runs.
type PreferenceStore interface {
	// SelectedPathID returns 0 when nothing is remembered.
	SelectedPathID(ctx context.Context) (int, error)
	SaveSelectedPath(ctx context.Context, pathID int) error
	ClearSelectedPath(ctx context.Context) error
	Theme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}

// PathCache keeps path summaries so listing degrades to cached data when
// the API is unreachable.
type PathCache interface {
	UpsertPaths(ctx context.Context, paths []domain.PathSummary) error
	CachedPaths(ctx context.Context) ([]domain.PathSummary, error)
}

// SkillProjector maintains a queryable local index of the flattened skills.
type SkillProjector interface {
	Reset(ctx context.Context, pathID int) error
	Upsert(ctx context.Context, skills []domain.Skill) error
	ByPath(ctx context.Context, pathID int) ([]domain.Skill, error)
	Search(ctx context.Context, query string) ([]domain.Skill, error)
	// SetStatus updates one indexed skill's status in place.
	SetStatus(ctx context.Context, pathID, skillID int, status string) error
}
