// Package usecase adapts the assistant service to the inbound port.
package usecase

import (
	"context"

	accountportin "pathora/internal/modules/account/port/in"
	"pathora/internal/modules/assistant/domain"
	"pathora/internal/modules/assistant/dto"
	portin "pathora/internal/modules/assistant/port/in"
	"pathora/internal/modules/assistant/service"
)

type Interactor struct {
	svc     *service.AssistantService
	account accountportin.Usecase
}

var _ portin.Usecase = (*Interactor)(nil)

func NewInteractor(svc *service.AssistantService, account accountportin.Usecase) *Interactor {
	return &Interactor{svc: svc, account: account}
}

func (i *Interactor) GeneratePath(ctx context.Context, in dto.GeneratePathInput) (dto.GeneratedPathOutput, error) {
	session, err := i.account.Current(ctx)
	if err != nil {
		return dto.GeneratedPathOutput{}, err
	}
	generated, err := i.svc.GeneratePath(ctx, session.UserID, domain.PathRequest{
		Topic:        in.Topic,
		Difficulty:   in.Difficulty,
		Weeks:        in.Weeks,
		HoursPerWeek: in.HoursPerWeek,
	})
	if err != nil {
		return dto.GeneratedPathOutput{}, err
	}
	return dto.GeneratedPathOutput{PathID: generated.PathID, Title: generated.Title, Message: generated.Message}, nil
}

func (i *Interactor) GenerateLessonContent(ctx context.Context, lessonID int) (string, error) {
	if _, err := i.account.Current(ctx); err != nil {
		return "", err
	}
	return i.svc.GenerateLessonContent(ctx, lessonID)
}

func (i *Interactor) GenerateQuiz(ctx context.Context, in dto.GenerateQuizInput) (dto.QuizOutput, error) {
	if _, err := i.account.Current(ctx); err != nil {
		return dto.QuizOutput{}, err
	}
	quiz, err := i.svc.GenerateQuiz(ctx, domain.QuizRequest{
		Topic:         in.Topic,
		Difficulty:    in.Difficulty,
		QuestionCount: in.QuestionCount,
	})
	if err != nil {
		return dto.QuizOutput{}, err
	}

	out := dto.QuizOutput{Title: quiz.Title}
	for _, q := range quiz.Questions {
		out.Questions = append(out.Questions, dto.QuestionOutput{
			ID:           q.ID,
			Prompt:       q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	return out, nil
}

func (i *Interactor) Chat(ctx context.Context, message string, history []dto.ChatTurnOutput) (string, error) {
	if _, err := i.account.Current(ctx); err != nil {
		return "", err
	}
	turns := make([]domain.ChatTurn, 0, len(history))
	for _, turn := range history {
		turns = append(turns, domain.ChatTurn{Text: turn.Text, FromUser: turn.FromUser})
	}
	return i.svc.Chat(ctx, message, turns)
}
