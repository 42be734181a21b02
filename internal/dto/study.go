package dto

// GenerateContentRequest is the body of the plain generation proxy endpoint.
type GenerateContentRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateContentResponse carries the model's raw text output.
type GenerateContentResponse struct {
	Text string `json:"text"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// TextContentRequest is the JSON body accepted by study endpoints when the
// source material is raw text rather than an uploaded file.
type TextContentRequest struct {
	Text string `json:"text"`
}

// SummarizeResponse carries a summary. Degraded marks a placeholder
// substituted after a generation failure.
type SummarizeResponse struct {
	Summary  string `json:"summary"`
	Degraded bool   `json:"degraded"`
}

// QuizQuestionResponse is one generated question.
type QuizQuestionResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
	Type     string   `json:"type"`
}

// QuizResponse carries generated quiz questions.
type QuizResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
	Degraded  bool                   `json:"degraded"`
}

// FlashcardResponse is one generated flashcard.
type FlashcardResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// FlashcardsResponse carries generated flashcards.
type FlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
	Degraded   bool                `json:"degraded"`
}

// CreateChatResponse returns the id of a freshly created chat session.
type CreateChatResponse struct {
	SessionID string `json:"session_id"`
}

// ChatMessageRequest is one user turn sent to an existing session.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatMessageResponse is the model's reply to one user turn.
type ChatMessageResponse struct {
	Reply string `json:"reply"`
}
