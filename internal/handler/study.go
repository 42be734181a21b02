package handler

import (
	"strconv"

	"studykit/internal/domain"
	"studykit/internal/dto"
	"studykit/internal/service"
	"studykit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultGeneratedItems = 5

// StudyHandler exposes the prompt orchestrator over HTTP: summaries, quizzes
// and flashcards generated from uploaded or pasted source material.
type StudyHandler struct {
	service   service.StudyService
	validator *validation.Validator
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(svc service.StudyService) *StudyHandler {
	return &StudyHandler{
		service:   svc,
		validator: validation.NewValidator(),
	}
}

// contentFromRequest extracts the source material from either a multipart
// upload (field "file", encoded in memory before any model request), a form
// field "text", or a JSON body {"text": ...}. An empty Content is not an
// error here; each operation defines its own empty-content behavior.
func contentFromRequest(c *fiber.Ctx) (domain.Content, error) {
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return domain.Content{}, domain.NewInvalidInputError("Could not read the uploaded file")
		}
		defer f.Close()

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		part, err := domain.EncodeFile(f, mimeType)
		if err != nil {
			return domain.Content{}, domain.NewInternalError("Failed to encode the uploaded file", err)
		}
		return domain.NewFileContent(part), nil
	}

	if text := c.FormValue("text"); text != "" {
		return domain.NewTextContent(text), nil
	}

	var body dto.TextContentRequest
	if err := c.BodyParser(&body); err == nil && body.Text != "" {
		return domain.NewTextContent(body.Text), nil
	}

	return domain.Content{}, nil
}

// formOrQuery reads a request parameter from the form body first, then the
// query string, so both multipart and JSON clients can pass parameters.
func formOrQuery(c *fiber.Ctx, key string) string {
	if v := c.FormValue(key); v != "" {
		return v
	}
	return c.Query(key)
}

func countParam(c *fiber.Ctx) (int, domain.ValidationErrors) {
	raw := formOrQuery(c, "count")
	if raw == "" {
		return defaultGeneratedItems, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("count", raw)}
	}
	return count, nil
}

// Summarize handles POST /api/summarize
func (h *StudyHandler) Summarize(c *fiber.Ctx) error {
	content, err := contentFromRequest(c)
	if err != nil {
		return err
	}

	length, errs := h.validator.NormalizeTargetLength(formOrQuery(c, "length"))
	if len(errs) > 0 {
		return errs
	}

	summary, degraded := h.service.Summarize(c.UserContext(), content, length)
	return c.JSON(dto.SummarizeResponse{Summary: summary, Degraded: degraded})
}

// GenerateQuiz handles POST /api/quiz
func (h *StudyHandler) GenerateQuiz(c *fiber.Ctx) error {
	content, err := contentFromRequest(c)
	if err != nil {
		return err
	}

	questionType := formOrQuery(c, "type")
	count, errs := countParam(c)
	if len(errs) > 0 {
		return errs
	}
	if errs := h.validator.ValidateQuizRequest(questionType, count); len(errs) > 0 {
		return errs
	}

	questions, degraded := h.service.GenerateQuiz(c.UserContext(), content, domain.QuestionType(questionType), count)

	resp := dto.QuizResponse{
		Questions: make([]dto.QuizQuestionResponse, 0, len(questions)),
		Degraded:  degraded,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			Question: q.Question,
			Options:  q.Options,
			Answer:   q.Answer,
			Type:     string(q.Type),
		})
	}
	return c.JSON(resp)
}

// GenerateFlashcards handles POST /api/flashcards
func (h *StudyHandler) GenerateFlashcards(c *fiber.Ctx) error {
	content, err := contentFromRequest(c)
	if err != nil {
		return err
	}

	count, errs := countParam(c)
	if len(errs) > 0 {
		return errs
	}
	if errs := h.validator.ValidateFlashcardRequest(count); len(errs) > 0 {
		return errs
	}

	cards, degraded := h.service.GenerateFlashcards(c.UserContext(), content, count)

	resp := dto.FlashcardsResponse{
		Flashcards: make([]dto.FlashcardResponse, 0, len(cards)),
		Degraded:   degraded,
	}
	for _, card := range cards {
		resp.Flashcards = append(resp.Flashcards, dto.FlashcardResponse{
			Term:       card.Term,
			Definition: card.Definition,
		})
	}
	return c.JSON(resp)
}
