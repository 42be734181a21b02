package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studykit/internal/dto"
	"studykit/internal/handler"
	"studykit/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// MockTextGenerator
type MockTextGenerator struct {
	GenerateFromPromptFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockTextGenerator) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFromPromptFunc != nil {
		return m.GenerateFromPromptFunc(ctx, prompt)
	}
	panic("MockTextGenerator.GenerateFromPromptFunc not implemented")
}

func newGenerateTestApp(generator *MockTextGenerator) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewGenerateHandler(generator)
	app.Post("/api/generate-content", h.GenerateContent)
	return app
}

// postJSON sends a JSON POST through the fiber test harness and returns the
// response plus its fully read body.
func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp, respBody
}

func TestGenerateContent(t *testing.T) {
	t.Run("MissingPromptReturns400", func(t *testing.T) {
		app := newGenerateTestApp(&MockTextGenerator{})

		resp, body := postJSON(t, app, "/api/generate-content", map[string]string{})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var errBody dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(body, &errBody))
		assert.Equal(t, "Prompt is required", errBody.Error)
	})

	t.Run("WhitespacePromptReturns400", func(t *testing.T) {
		app := newGenerateTestApp(&MockTextGenerator{})

		resp, _ := postJSON(t, app, "/api/generate-content", dto.GenerateContentRequest{Prompt: "   "})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("SuccessReturnsModelText", func(t *testing.T) {
		generator := &MockTextGenerator{
			GenerateFromPromptFunc: func(ctx context.Context, prompt string) (string, error) {
				assert.Equal(t, "x", prompt)
				return "model output", nil
			},
		}
		app := newGenerateTestApp(generator)

		resp, body := postJSON(t, app, "/api/generate-content", dto.GenerateContentRequest{Prompt: "x"})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var okBody dto.GenerateContentResponse
		assert.NoError(t, json.Unmarshal(body, &okBody))
		assert.Equal(t, "model output", okBody.Text)
	})

	t.Run("UpstreamFailureReturns500", func(t *testing.T) {
		generator := &MockTextGenerator{
			GenerateFromPromptFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		app := newGenerateTestApp(generator)

		resp, body := postJSON(t, app, "/api/generate-content", dto.GenerateContentRequest{Prompt: "x"})

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		var errBody dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(body, &errBody))
		assert.Equal(t, "Failed to generate content", errBody.Error)
	})
}
