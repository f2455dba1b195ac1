// Package portout declares the outbound dependencies of the assistant module.
package portout

import (
	"context"

	"pathora/internal/modules/assistant/domain"
)

type AssistantAPI interface {
	GeneratePath(ctx context.Context, userID int, req domain.PathRequest) (domain.GeneratedPath, error)
	GenerateLessonContent(ctx context.Context, lessonID int) (string, error)
	GenerateQuiz(ctx context.Context, req domain.QuizRequest) (domain.Quiz, error)
	Chat(ctx context.Context, message string, history []domain.ChatTurn) (string, error)
}
