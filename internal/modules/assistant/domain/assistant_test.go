package domain_test

import (
	"errors"
	"testing"

	"pathora/internal/modules/assistant/domain"
	apperrors "pathora/internal/platform/errors"
)

func TestQuizScore(t *testing.T) {
	t.Parallel()
	quiz := domain.Quiz{Questions: []domain.Question{
		{ID: 1, CorrectIndex: 2},
		{ID: 2, CorrectIndex: 0},
		{ID: 3, CorrectIndex: 1},
	}}

	answers := map[int]int{1: 2, 2: 3}
	if got := quiz.Score(answers); got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
	if got := quiz.Score(nil); got != 0 {
		t.Fatalf("no answers should score 0, got %d", got)
	}
}

func TestPathRequestValidation(t *testing.T) {
	t.Parallel()
	ok := domain.PathRequest{Topic: "Go", Difficulty: "beginner", Weeks: 4, HoursPerWeek: 5}
	if err := domain.CheckRequest(ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := ok
	bad.Difficulty = "impossible"
	if err := domain.CheckRequest(bad); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
