package gemini

import (
	"context"
	"encoding/base64"
	"testing"

	"studykit/internal/domain"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestNewClientValidation(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, "", "gemini-2.5-flash")
	assert.Error(t, err)

	_, err = NewClient(ctx, "key", "")
	assert.Error(t, err)
}

func TestBuildParts(t *testing.T) {
	t.Run("TextOnly", func(t *testing.T) {
		parts, err := buildParts("summarize this", nil)
		assert.NoError(t, err)
		assert.Len(t, parts, 1)
		assert.Equal(t, "summarize this", parts[0].Text)
	})

	t.Run("TextAndFile", func(t *testing.T) {
		raw := []byte("%PDF-1.4 fake")
		file := &domain.FilePart{
			MIMEType: "application/pdf",
			Data:     base64.StdEncoding.EncodeToString(raw),
		}

		parts, err := buildParts("summarize this", file)

		assert.NoError(t, err)
		assert.Len(t, parts, 2)
		assert.NotNil(t, parts[1].InlineData)
		assert.Equal(t, "application/pdf", parts[1].InlineData.MIMEType)
		assert.Equal(t, raw, parts[1].InlineData.Data)
	})

	t.Run("InvalidBase64Fails", func(t *testing.T) {
		file := &domain.FilePart{MIMEType: "text/plain", Data: "not base64!!!"}

		_, err := buildParts("", file)

		assert.Error(t, err)
	})

	t.Run("NoContentFails", func(t *testing.T) {
		_, err := buildParts("", nil)
		assert.Error(t, err)
	})
}

func TestToGenaiSchema(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, toGenaiSchema(nil))
	})

	t.Run("QuizSchemaShape", func(t *testing.T) {
		out := toGenaiSchema(domain.QuizSchema(domain.QuestionTypeMultipleChoice))

		assert.Equal(t, genai.TypeArray, out.Type)
		item := out.Items
		assert.Equal(t, genai.TypeObject, item.Type)
		assert.Contains(t, item.Required, "question")
		assert.Contains(t, item.Required, "answer")
		assert.Contains(t, item.Required, "options")

		options := item.Properties["options"]
		assert.Equal(t, genai.TypeArray, options.Type)
		assert.Equal(t, genai.TypeString, options.Items.Type)

		qtype := item.Properties["type"]
		assert.Equal(t, genai.TypeString, qtype.Type)
		assert.Contains(t, qtype.Enum, string(domain.QuestionTypeMultipleChoice))
	})

	t.Run("NonMultipleChoiceOmitsOptions", func(t *testing.T) {
		out := toGenaiSchema(domain.QuizSchema(domain.QuestionTypeShortAnswer))

		item := out.Items
		assert.NotContains(t, item.Required, "options")
		_, hasOptions := item.Properties["options"]
		assert.False(t, hasOptions)
	})

	t.Run("FlashcardSchemaShape", func(t *testing.T) {
		out := toGenaiSchema(domain.FlashcardSchema())

		assert.Equal(t, genai.TypeArray, out.Type)
		item := out.Items
		assert.Equal(t, genai.TypeObject, item.Type)
		assert.Contains(t, item.Required, "term")
		assert.Contains(t, item.Required, "definition")
	})
}
