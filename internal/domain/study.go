package domain

// QuestionType tags the shape of a generated quiz question.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeFillInBlank    QuestionType = "fill_in_blank"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeFillInBlank, QuestionTypeShortAnswer:
		return true
	}
	return false
}

// BlankMarker is the literal token fill-in-the-blank questions use for the
// gap. The schema cannot enforce its presence; it is a best-effort content
// contract carried by the prompt.
const BlankMarker = "____"

// MultipleChoiceOptionCount is the number of answer options every
// multiple-choice question must carry.
const MultipleChoiceOptionCount = 4

// QuizQuestion is one generated question. Options is populated only for
// multiple-choice questions.
type QuizQuestion struct {
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
	Answer   string       `json:"answer"`
	Type     QuestionType `json:"type"`
}

// Flashcard is a single term/definition pair. It has no identity and no
// relationship to other entities.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}
