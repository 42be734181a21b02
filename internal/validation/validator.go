package validation

import (
	"strings"

	"studykit/internal/domain"
)

const (
	// MinGeneratedItems and MaxGeneratedItems bound the count parameter of
	// quiz and flashcard generation.
	MinGeneratedItems = 1
	MaxGeneratedItems = 20

	// MaxChatMessageLength bounds a single chat turn.
	MaxChatMessageLength = 2000

	// DefaultTargetLength is used when a summarize request names no length.
	DefaultTargetLength = "medium"
)

var targetLengths = map[string]bool{
	"short":  true,
	"medium": true,
	"long":   true,
}

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizRequest validates quiz generation parameters.
func (v *Validator) ValidateQuizRequest(questionType string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(questionType) == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	} else if !domain.QuestionType(questionType).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("type", questionType))
	}

	if count < MinGeneratedItems || count > MaxGeneratedItems {
		errors = append(errors, domain.NewOutOfRangeError("count", count, MinGeneratedItems, MaxGeneratedItems))
	}

	return errors
}

// ValidateFlashcardRequest validates flashcard generation parameters.
func (v *Validator) ValidateFlashcardRequest(count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if count < MinGeneratedItems || count > MaxGeneratedItems {
		errors = append(errors, domain.NewOutOfRangeError("count", count, MinGeneratedItems, MaxGeneratedItems))
	}

	return errors
}

// NormalizeTargetLength validates the summary length parameter and applies
// the default for an empty value.
func (v *Validator) NormalizeTargetLength(length string) (string, domain.ValidationErrors) {
	if strings.TrimSpace(length) == "" {
		return DefaultTargetLength, nil
	}
	if !targetLengths[length] {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError("length", length)}
	}
	return length, nil
}

// ValidateChatMessage validates one chat turn.
func (v *Validator) ValidateChatMessage(message string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(message) > MaxChatMessageLength {
		errors = append(errors, domain.NewOutOfRangeError("message", len(message), 1, MaxChatMessageLength))
	}

	return errors
}
