package service

import (
	"context"
	"encoding/json"
	"fmt"

	"studykit/internal/domain"
	"studykit/internal/logger"

	"go.uber.org/zap"
)

// StudyService is the prompt orchestrator: it shapes prompts and response
// schemas for the four study operations and degrades to placeholder values
// when the model service fails. The boolean returned alongside each result
// reports whether a placeholder was substituted.
type StudyService interface {
	// Summarize produces a summary of the given length. On any failure it
	// returns a fixed apology string with degraded=true; errors are logged,
	// never propagated. Empty content short-circuits without a network call.
	Summarize(ctx context.Context, content domain.Content, targetLength string) (string, bool)

	// InitChat creates a document-grounded chat session. It returns
	// (nil, nil) for empty content. Session creation failures propagate
	// to the caller.
	InitChat(ctx context.Context, content domain.Content) (domain.ChatSession, error)

	// GenerateQuiz returns a best-effort sequence of count questions of
	// the given type. The result is never empty for non-empty content:
	// when all generation tiers fail it holds a single sentinel question
	// with an empty answer and the requested type.
	GenerateQuiz(ctx context.Context, content domain.Content, questionType domain.QuestionType, count int) ([]domain.QuizQuestion, bool)

	// GenerateFlashcards returns a best-effort sequence of count
	// flashcards. On any failure it holds a single sentinel card with
	// term "Error".
	GenerateFlashcards(ctx context.Context, content domain.Content, count int) ([]domain.Flashcard, bool)
}

type studyService struct {
	client    domain.ModelClient
	summaries *SummaryCache // optional; nil disables caching
}

// NewStudyService creates the orchestrator. summaries may be nil.
func NewStudyService(client domain.ModelClient, summaries *SummaryCache) StudyService {
	return &studyService{client: client, summaries: summaries}
}

// buildRequest attaches the source material to an instruction prompt: raw
// text is appended inline, a file rides along as an inline part.
func buildRequest(content domain.Content, prompt string) domain.GenerateRequest {
	req := domain.GenerateRequest{Prompt: prompt, File: content.File}
	if content.Text != "" {
		req.Prompt = prompt + "\n\n" + content.Text
	}
	return req
}

func (s *studyService) Summarize(ctx context.Context, content domain.Content, targetLength string) (string, bool) {
	if content.IsEmpty() {
		return summaryApology, true
	}

	generate := func(ctx context.Context) (string, error) {
		return s.client.GenerateText(ctx, buildRequest(content, summaryPrompt(targetLength)))
	}

	var (
		text string
		err  error
	)
	if s.summaries != nil {
		text, err = s.summaries.GetOrGenerate(ctx, content, targetLength, generate)
	} else {
		text, err = generate(ctx)
	}
	if err != nil {
		logger.Get().Error("summary generation failed", zap.Error(err))
		return summaryApology, true
	}
	return text, false
}

func (s *studyService) InitChat(ctx context.Context, content domain.Content) (domain.ChatSession, error) {
	if content.IsEmpty() {
		return nil, nil
	}

	userTurn := domain.ChatTurn{Role: domain.RoleUser, File: content.File, Text: chatPrimingInstruction}
	if content.Text != "" {
		userTurn.Text = content.Text + "\n\n" + chatPrimingInstruction
	}
	cfg := domain.ChatConfig{
		System: chatSystemInstruction,
		History: []domain.ChatTurn{
			userTurn,
			{Role: domain.RoleModel, Text: chatAcknowledgment},
		},
	}

	// Creation failures propagate uncaught; there is no placeholder
	// session to degrade to.
	return s.client.StartChat(ctx, cfg)
}

func (s *studyService) GenerateQuiz(ctx context.Context, content domain.Content, questionType domain.QuestionType, count int) ([]domain.QuizQuestion, bool) {
	if content.IsEmpty() {
		return nil, false
	}

	// Tier 1: schema-constrained JSON.
	questions, err := s.generateQuizStructured(ctx, content, questionType, count)
	if err == nil {
		return questions, false
	}
	logger.Get().Warn("structured quiz generation failed, trying free-text fallback",
		zap.Error(err),
		zap.String("question_type", string(questionType)),
	)

	// Tier 2: unstructured request recovered by the line-based parser.
	// The two calls are strictly sequential, never concurrent.
	questions, err = s.generateQuizFreeText(ctx, content, questionType, count)
	if err == nil {
		return questions, false
	}
	logger.Get().Error("quiz generation failed on all tiers",
		zap.Error(err),
		zap.String("question_type", string(questionType)),
	)

	// Tier 3: sentinel entry so callers always receive a non-empty
	// sequence, tagged with the originally requested type.
	return []domain.QuizQuestion{{
		Question: quizFailureText,
		Answer:   "",
		Type:     questionType,
	}}, true
}

func (s *studyService) generateQuizStructured(ctx context.Context, content domain.Content, questionType domain.QuestionType, count int) ([]domain.QuizQuestion, error) {
	raw, err := s.client.GenerateStructured(ctx,
		buildRequest(content, quizPrompt(questionType, count)),
		domain.QuizSchema(questionType),
	)
	if err != nil {
		return nil, err
	}

	var parsed []domain.QuizQuestion
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse structured quiz response: %w", err)
	}

	questions := make([]domain.QuizQuestion, 0, len(parsed))
	for _, q := range parsed {
		if !validQuestion(q, questionType) {
			logger.Get().Warn("dropping malformed quiz question", zap.String("question", q.Question))
			continue
		}
		q.Type = questionType
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("structured response contained no usable questions")
	}
	return questions, nil
}

// validQuestion checks the per-question shape contract. Multiple-choice
// questions must carry exactly four options; the fill-in-the-blank marker is
// a best-effort content contract and is not enforced here.
func validQuestion(q domain.QuizQuestion, questionType domain.QuestionType) bool {
	if q.Question == "" || q.Answer == "" {
		return false
	}
	if questionType == domain.QuestionTypeMultipleChoice && len(q.Options) != domain.MultipleChoiceOptionCount {
		return false
	}
	return true
}

func (s *studyService) generateQuizFreeText(ctx context.Context, content domain.Content, questionType domain.QuestionType, count int) ([]domain.QuizQuestion, error) {
	raw, err := s.client.GenerateText(ctx, buildRequest(content, quizFreeTextPrompt(questionType, count)))
	if err != nil {
		return nil, err
	}
	questions := parseQuizText(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("free-text response contained no parseable questions")
	}
	return questions, nil
}

func (s *studyService) GenerateFlashcards(ctx context.Context, content domain.Content, count int) ([]domain.Flashcard, bool) {
	if content.IsEmpty() {
		return nil, false
	}

	cards, err := s.generateFlashcards(ctx, content, count)
	if err != nil {
		// No free-text tier for flashcards; degrade straight to the
		// sentinel card.
		logger.Get().Error("flashcard generation failed", zap.Error(err))
		return []domain.Flashcard{{Term: "Error", Definition: flashcardApology}}, true
	}
	return cards, false
}

func (s *studyService) generateFlashcards(ctx context.Context, content domain.Content, count int) ([]domain.Flashcard, error) {
	raw, err := s.client.GenerateStructured(ctx,
		buildRequest(content, flashcardPrompt(count)),
		domain.FlashcardSchema(),
	)
	if err != nil {
		return nil, err
	}

	var parsed []domain.Flashcard
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse flashcard response: %w", err)
	}

	cards := make([]domain.Flashcard, 0, len(parsed))
	for _, card := range parsed {
		if card.Term == "" || card.Definition == "" {
			logger.Get().Warn("dropping incomplete flashcard", zap.String("term", card.Term))
			continue
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("flashcard response contained no usable cards")
	}
	return cards, nil
}
