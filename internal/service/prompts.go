package service

import (
	"fmt"

	"studykit/internal/domain"
)

// User-facing placeholder values substituted when generation fails. Callers
// can tell a placeholder from a real result via the degraded flag.
const (
	summaryApology   = "Sorry, I couldn't generate a summary right now. Please try again."
	quizFailureText  = "Could not generate quiz questions. Please try again."
	flashcardApology = "Sorry, I couldn't generate flashcards right now. Please try again."
)

// Chat seed material. Grounding the chat in the document is a prompt-level
// instruction to the model, not an enforced property.
const (
	chatSystemInstruction = "You are a study assistant. Answer questions using only the information " +
		"in the document the user has provided. If the answer is not in the document, say so instead " +
		"of guessing."
	chatPrimingInstruction = "Here is the document I want to study. Answer my questions based only on this document."
	chatAcknowledgment     = "Understood. I have read the document and I'm ready to answer questions about it."
)

var questionTypeNames = map[domain.QuestionType]string{
	domain.QuestionTypeMultipleChoice: "multiple-choice",
	domain.QuestionTypeFillInBlank:    "fill-in-the-blank",
	domain.QuestionTypeShortAnswer:    "short-answer",
}

func summaryPrompt(targetLength string) string {
	return fmt.Sprintf("Provide a %s summary of the following content. Respond with the summary text only, no preamble.", targetLength)
}

func quizTypeRules(questionType domain.QuestionType) string {
	switch questionType {
	case domain.QuestionTypeMultipleChoice:
		return fmt.Sprintf("Each question must have exactly %d answer options, and the answer must exactly match one of them.", domain.MultipleChoiceOptionCount)
	case domain.QuestionTypeFillInBlank:
		return fmt.Sprintf("Each question must contain the blank marker %q where the missing word or phrase belongs, and the answer is the missing word or phrase.", domain.BlankMarker)
	default:
		return "Each answer should be a concise sentence or two."
	}
}

func quizPrompt(questionType domain.QuestionType, count int) string {
	return fmt.Sprintf(
		"Generate exactly %d %s quiz questions about the provided content. %s",
		count, questionTypeNames[questionType], quizTypeRules(questionType),
	)
}

// quizFreeTextPrompt asks for a plain-text rendition the fallback parser can
// recover: blank-line-separated blocks with literal "Question:"/"Answer:"
// prefixes.
func quizFreeTextPrompt(questionType domain.QuestionType, count int) string {
	prompt := fmt.Sprintf(
		"Generate exactly %d %s quiz questions about the provided content. %s\n\n"+
			"Format every question as plain text:\n\n"+
			"Question: <question text>\n"+
			"Answer: <answer>\n\n"+
			"Separate questions with a blank line.",
		count, questionTypeNames[questionType], quizTypeRules(questionType),
	)
	if questionType == domain.QuestionTypeMultipleChoice {
		prompt += "\n\nList the four options on separate lines between the question and the answer, each prefixed with \"- \"."
	}
	return prompt
}

func flashcardPrompt(count int) string {
	return fmt.Sprintf(
		"Generate exactly %d flashcards from the provided content. "+
			"Each flashcard is a term paired with a clear, self-contained definition.",
		count,
	)
}
