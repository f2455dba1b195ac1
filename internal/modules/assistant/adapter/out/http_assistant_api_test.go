package adapterout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	adapterout "pathora/internal/modules/assistant/adapter/out"
	"pathora/internal/modules/assistant/domain"
	"pathora/internal/platform/rest"
)

func TestChatSendsHistoryInWireShape(t *testing.T) {
	t.Parallel()
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"reply":"hello back"}`))
	}))
	defer srv.Close()

	api := adapterout.NewHTTPAssistantAPI(rest.NewClient(srv.URL, func() string { return "t" }, nil))
	reply, err := api.Chat(context.Background(), "hi", []domain.ChatTurn{{Text: "earlier", FromUser: true}})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "hello back" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	history, ok := captured["history"].([]any)
	if !ok || len(history) != 1 {
		t.Fatalf("history missing from request: %v", captured)
	}
	turn := history[0].(map[string]any)
	if turn["isUser"] != true {
		t.Fatalf("history turn must use the isUser key: %v", turn)
	}
}

func TestGenerateQuizDecodesQuestions(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"title": "Go Basics",
			"questions": [
				{"id": 1, "question": "What is a goroutine?", "options": ["a", "b"], "correct_index": 1, "explanation": "because"}
			]
		}`))
	}))
	defer srv.Close()

	api := adapterout.NewHTTPAssistantAPI(rest.NewClient(srv.URL, func() string { return "t" }, nil))
	quiz, err := api.GenerateQuiz(context.Background(), domain.QuizRequest{Topic: "Go", Difficulty: "beginner", QuestionCount: 1})
	if err != nil {
		t.Fatalf("generate quiz: %v", err)
	}
	if quiz.Title != "Go Basics" || len(quiz.Questions) != 1 {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}
	q := quiz.Questions[0]
	if q.Prompt != "What is a goroutine?" || q.CorrectIndex != 1 {
		t.Fatalf("unexpected question: %+v", q)
	}
}
