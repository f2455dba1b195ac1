// Package portin declares the inbound boundary of the assistant module.
package portin

import (
	"context"

	"pathora/internal/modules/assistant/dto"
)

type Usecase interface {
	// GeneratePath asks the backend to build a new learning path. The caller
	// follows up with a forced-latest reload to surface it.
	GeneratePath(ctx context.Context, in dto.GeneratePathInput) (dto.GeneratedPathOutput, error)
	// GenerateLessonContent fills in a lesson's markdown body on demand.
	GenerateLessonContent(ctx context.Context, lessonID int) (string, error)
	GenerateQuiz(ctx context.Context, in dto.GenerateQuizInput) (dto.QuizOutput, error)
	// Chat sends one message plus the running history and returns the reply.
	Chat(ctx context.Context, message string, history []dto.ChatTurnOutput) (string, error)
}
