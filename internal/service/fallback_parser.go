package service

import (
	"regexp"
	"strings"

	"studykit/internal/domain"
)

var (
	blockSeparator = regexp.MustCompile(`\n\s*\n`)
	optionPrefix   = regexp.MustCompile(`^(-\s+|[A-D][.)]\s+)`)
)

// parseQuizText recovers quiz questions from a free-form model response. It
// is deliberately naive: blocks are separated by blank lines and only lines
// literally prefixed "Question:" and "Answer:" are honored. Option lines may
// appear between them as "- ..." or "A) ...". Entries whose shape fits no
// richer type default to short-answer.
func parseQuizText(raw string) []domain.QuizQuestion {
	var questions []domain.QuizQuestion
	for _, block := range blockSeparator.Split(raw, -1) {
		var q domain.QuizQuestion
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "Question:"):
				q.Question = strings.TrimSpace(strings.TrimPrefix(line, "Question:"))
			case strings.HasPrefix(line, "Answer:"):
				q.Answer = strings.TrimSpace(strings.TrimPrefix(line, "Answer:"))
			case optionPrefix.MatchString(line):
				q.Options = append(q.Options, strings.TrimSpace(optionPrefix.ReplaceAllString(line, "")))
			}
		}
		if q.Question == "" {
			continue
		}
		q.Type = classifyParsedQuestion(q)
		questions = append(questions, q)
	}
	return questions
}

func classifyParsedQuestion(q domain.QuizQuestion) domain.QuestionType {
	switch {
	case len(q.Options) == domain.MultipleChoiceOptionCount:
		return domain.QuestionTypeMultipleChoice
	case strings.Contains(q.Question, domain.BlankMarker):
		return domain.QuestionTypeFillInBlank
	default:
		return domain.QuestionTypeShortAnswer
	}
}
