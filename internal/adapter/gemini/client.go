package gemini

import (
	"context"
	"fmt"

	"studykit/internal/domain"

	"google.golang.org/genai"
)

// Client implements domain.ModelClient against the Gemini API. One Client is
// constructed at process startup and shared by all requests; it holds no
// per-request state.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed model client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// GenerateText issues a plain generation request.
func (c *Client) GenerateText(ctx context.Context, req domain.GenerateRequest) (string, error) {
	return c.generate(ctx, req, &genai.GenerateContentConfig{})
}

// GenerateStructured issues a generation request constrained to emit JSON
// matching schema and returns the raw JSON document.
func (c *Client) GenerateStructured(ctx context.Context, req domain.GenerateRequest, schema *domain.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	}
	return c.generate(ctx, req, cfg)
}

func (c *Client) generate(ctx context.Context, req domain.GenerateRequest, cfg *genai.GenerateContentConfig) (string, error) {
	parts, err := buildParts(req.Prompt, req.File)
	if err != nil {
		return "", err
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return text, nil
}

// StartChat creates a chat session seeded with cfg's system instruction and
// priming history. The genai SDK owns the conversation state from here on.
func (c *Client) StartChat(ctx context.Context, cfg domain.ChatConfig) (domain.ChatSession, error) {
	history := make([]*genai.Content, 0, len(cfg.History))
	for _, turn := range cfg.History {
		parts, err := buildParts(turn.Text, turn.File)
		if err != nil {
			return nil, err
		}
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		history = append(history, genai.NewContentFromParts(parts, role))
	}

	gcfg := &genai.GenerateContentConfig{}
	if cfg.System != "" {
		gcfg.SystemInstruction = genai.NewContentFromText(cfg.System, genai.RoleUser)
	}

	chat, err := c.client.Chats.Create(ctx, c.model, gcfg, history)
	if err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}
	return &chatSession{chat: chat}, nil
}

// buildParts assembles request parts from prompt text and an optional inline
// file. The file's base64 payload is decoded back to raw bytes for the SDK,
// which handles wire encoding itself.
func buildParts(text string, file *domain.FilePart) ([]*genai.Part, error) {
	var parts []*genai.Part
	if text != "" {
		parts = append(parts, genai.NewPartFromText(text))
	}
	if file != nil {
		raw, err := file.Bytes()
		if err != nil {
			return nil, fmt.Errorf("decode file part: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(raw, file.MIMEType))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("request carries no content")
	}
	return parts, nil
}

func toGenaiSchema(s *domain.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Required: s.Required,
		Enum:     s.Enum,
		Items:    toGenaiSchema(s.Items),
	}
	switch s.Type {
	case domain.TypeString:
		out.Type = genai.TypeString
	case domain.TypeObject:
		out.Type = genai.TypeObject
	case domain.TypeArray:
		out.Type = genai.TypeArray
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

type chatSession struct {
	chat *genai.Chat
}

func (s *chatSession) SendMessage(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("send chat message: %w", err)
	}
	return resp.Text(), nil
}

// Static assertions that the adapter satisfies the domain ports.
var (
	_ domain.ModelClient = (*Client)(nil)
	_ domain.ChatSession = (*chatSession)(nil)
)
