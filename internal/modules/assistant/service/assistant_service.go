// Package service implements the assistant module's request flow.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pathora/internal/modules/assistant/domain"
	portout "pathora/internal/modules/assistant/port/out"
	apperrors "pathora/internal/platform/errors"
)

type AssistantService struct {
	api portout.AssistantAPI
	log *zap.Logger
}

func NewAssistantService(api portout.AssistantAPI, log *zap.Logger) *AssistantService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistantService{api: api, log: log}
}

func (s *AssistantService) GeneratePath(ctx context.Context, userID int, req domain.PathRequest) (domain.GeneratedPath, error) {
	if err := domain.CheckRequest(req); err != nil {
		return domain.GeneratedPath{}, err
	}
	generated, err := s.api.GeneratePath(ctx, userID, req)
	if err != nil {
		return domain.GeneratedPath{}, err
	}
	s.log.Info("path generated", zap.Int("path_id", generated.PathID), zap.String("title", generated.Title))
	return generated, nil
}

func (s *AssistantService) GenerateLessonContent(ctx context.Context, lessonID int) (string, error) {
	if lessonID <= 0 {
		return "", apperrors.ErrInvalidInput
	}
	return s.api.GenerateLessonContent(ctx, lessonID)
}

func (s *AssistantService) GenerateQuiz(ctx context.Context, req domain.QuizRequest) (domain.Quiz, error) {
	if err := domain.CheckRequest(req); err != nil {
		return domain.Quiz{}, err
	}
	return s.api.GenerateQuiz(ctx, req)
}

func (s *AssistantService) Chat(ctx context.Context, message string, history []domain.ChatTurn) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.ErrInvalidInput
	}
	return s.api.Chat(ctx, message, history)
}
