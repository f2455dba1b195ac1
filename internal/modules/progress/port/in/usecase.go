// Package portin declares the inbound boundary of the progress module.
package portin

import (
	"context"

	"pathora/internal/modules/progress/dto"
)

type Usecase interface {
	Overview(ctx context.Context, userID int) (dto.OverviewOutput, error)
	PathProgress(ctx context.Context, pathID, userID int) (dto.PathProgressOutput, error)
	// CompleteSkill records the completion server-side, appends a journal
	// entry, and returns the refreshed overview.
	CompleteSkill(ctx context.Context, userID int, in dto.CompleteSkillInput) (dto.OverviewOutput, error)
}
