// Package domain models the AI assistant's requests and replies.
package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "pathora/internal/platform/errors"
)

type PathRequest struct {
	Topic        string `validate:"required"`
	Difficulty   string `validate:"required,oneof=beginner intermediate advanced"`
	Weeks        int    `validate:"required,min=1,max=52"`
	HoursPerWeek int    `validate:"required,min=1,max=80"`
}

type GeneratedPath struct {
	PathID  int
	Title   string
	Message string
}

type QuizRequest struct {
	Topic         string `validate:"required"`
	Difficulty    string `validate:"required,oneof=beginner intermediate advanced"`
	QuestionCount int    `validate:"required,min=1,max=20"`
}

type Quiz struct {
	Title     string
	Questions []Question
}

type Question struct {
	ID           int
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Score counts correct answers. Unanswered questions (index out of range)
// count as wrong.
func (q Quiz) Score(answers map[int]int) (correct int) {
	for _, question := range q.Questions {
		if answer, ok := answers[question.ID]; ok && answer == question.CorrectIndex {
			correct++
		}
	}
	return correct
}

// ChatTurn is one message of the conversation, kept client-side and replayed
// to the backend with every request.
type ChatTurn struct {
	Text     string
	FromUser bool
}

var validate = validator.New()

func CheckRequest(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}
