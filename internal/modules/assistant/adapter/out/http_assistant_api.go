package adapterout

import (
	"context"

	"pathora/internal/modules/assistant/domain"
	portout "pathora/internal/modules/assistant/port/out"
	"pathora/internal/platform/rest"
)

// HTTPAssistantAPI implements the assistant port over /ai. The chat history
// travels with every request; the backend holds no conversation state.
type HTTPAssistantAPI struct {
	client *rest.Client
}

var _ portout.AssistantAPI = (*HTTPAssistantAPI)(nil)

func NewHTTPAssistantAPI(client *rest.Client) *HTTPAssistantAPI {
	return &HTTPAssistantAPI{client: client}
}

type generatePathRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	Weeks        int    `json:"weeks"`
	HoursPerWeek int    `json:"hours_per_week"`
	UserID       int    `json:"user_id"`
}

type generatePathResponse struct {
	Message string `json:"message"`
	PathID  int    `json:"path_id"`
	Title   string `json:"title"`
}

func (a *HTTPAssistantAPI) GeneratePath(ctx context.Context, userID int, req domain.PathRequest) (domain.GeneratedPath, error) {
	var resp generatePathResponse
	err := a.client.Post(ctx, "/ai/generate-path", generatePathRequest{
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		Weeks:        req.Weeks,
		HoursPerWeek: req.HoursPerWeek,
		UserID:       userID,
	}, &resp)
	if err != nil {
		return domain.GeneratedPath{}, err
	}
	return domain.GeneratedPath{PathID: resp.PathID, Title: resp.Title, Message: resp.Message}, nil
}

func (a *HTTPAssistantAPI) GenerateLessonContent(ctx context.Context, lessonID int) (string, error) {
	var resp struct {
		Message string `json:"message"`
		Content string `json:"content"`
	}
	body := map[string]int{"lesson_id": lessonID}
	if err := a.client.Post(ctx, "/ai/generate-lesson-content", body, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

type generateQuizRequest struct {
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

type quizResponse struct {
	Title     string `json:"title"`
	Questions []struct {
		ID           int      `json:"id"`
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

func (a *HTTPAssistantAPI) GenerateQuiz(ctx context.Context, req domain.QuizRequest) (domain.Quiz, error) {
	var resp quizResponse
	err := a.client.Post(ctx, "/ai/generate-quiz", generateQuizRequest{
		Topic:         req.Topic,
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
	}, &resp)
	if err != nil {
		return domain.Quiz{}, err
	}

	quiz := domain.Quiz{Title: resp.Title}
	for _, q := range resp.Questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:           q.ID,
			Prompt:       q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	return quiz, nil
}

type chatRequest struct {
	Message string     `json:"message"`
	History []chatTurn `json:"history"`
}

type chatTurn struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

func (a *HTTPAssistantAPI) Chat(ctx context.Context, message string, history []domain.ChatTurn) (string, error) {
	req := chatRequest{Message: message, History: make([]chatTurn, 0, len(history))}
	for _, turn := range history {
		req.History = append(req.History, chatTurn{Text: turn.Text, IsUser: turn.FromUser})
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := a.client.Post(ctx, "/ai/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}
