// Package portin declares the inbound boundary of the curriculum module.
package portin

import (
	"context"

	"pathora/internal/modules/curriculum/dto"
)

type Usecase interface {
	// LoadInitialData fetches paths and the progress overview concurrently,
	// resolves the active path, and rebuilds the skill index. On failure the
	// caller's current view stays as it was.
	LoadInitialData(ctx context.Context, opts dto.LoadOptions) (dto.InitialData, error)
	Paths(ctx context.Context) ([]dto.PathOutput, error)
	// SelectPath remembers the given path for future loads.
	SelectPath(ctx context.Context, pathID int) error
	Skills(ctx context.Context, pathID int) ([]dto.SkillOutput, error)
	// Skill returns one skill of the active path from the local index.
	Skill(ctx context.Context, skillID int) (dto.SkillOutput, error)
	// SearchSkills queries the local skill index by title or category.
	SearchSkills(ctx context.Context, query string) ([]dto.SkillOutput, error)
	// StartSkill marks a skill of the active path as in-progress in the
	// local index. Completion is the progress module's job.
	StartSkill(ctx context.Context, skillID int) error
	// Reindex rebuilds the local skill index for the active path.
	Reindex(ctx context.Context) error
}
