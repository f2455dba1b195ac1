package dto

type GeneratePathInput struct {
	Topic        string
	Difficulty   string
	Weeks        int
	HoursPerWeek int
}

type GeneratedPathOutput struct {
	PathID  int
	Title   string
	Message string
}

type GenerateQuizInput struct {
	Topic         string
	Difficulty    string
	QuestionCount int
}

type QuizOutput struct {
	Title     string
	Questions []QuestionOutput
}

type QuestionOutput struct {
	ID           int
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

type ChatTurnOutput struct {
	Text     string
	FromUser bool
}
