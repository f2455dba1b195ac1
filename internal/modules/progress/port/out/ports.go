// Package portout declares the outbound dependencies of the progress module.
package portout

import (
	"context"

	"pathora/internal/modules/progress/domain"
)

type ProgressAPI interface {
	Overview(ctx context.Context, userID int) (domain.Overview, error)
	PathProgress(ctx context.Context, pathID, userID int) (domain.PathProgress, error)
	CompleteLesson(ctx context.Context, lessonID, userID int, timeSpentHours float64) error
}

// JournalStore appends completion records to the local markdown journal.
type JournalStore interface {
	Append(ctx context.Context, entry domain.JournalEntry) error
}
