package domain

import "context"

// ChatRole identifies which side of a chat a turn belongs to.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// GenerateRequest is a single non-conversational generation request. Prompt
// and File may both be set; File rides along as an inline attachment.
type GenerateRequest struct {
	Prompt string
	File   *FilePart
	System string
}

// ChatTurn is one turn of seed history for a chat session.
type ChatTurn struct {
	Role ChatRole
	Text string
	File *FilePart
}

// ChatConfig seeds a new chat session with a system instruction and priming
// history.
type ChatConfig struct {
	System  string
	History []ChatTurn
}

// ChatSession is the capability exposed by a live chat. The handle is opaque;
// the underlying provider owns all conversation state.
type ChatSession interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// ModelClient is the port to the hosted generative model. A single client is
// constructed at process startup and injected into every operation, so test
// doubles can stand in for the real provider.
type ModelClient interface {
	// GenerateText issues a plain generation request and returns the
	// model's text output.
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)

	// GenerateStructured issues a generation request constrained to emit
	// JSON matching schema, and returns the raw JSON document.
	GenerateStructured(ctx context.Context, req GenerateRequest, schema *Schema) (string, error)

	// StartChat creates a chat session seeded with cfg's system
	// instruction and priming turns.
	StartChat(ctx context.Context, cfg ChatConfig) (ChatSession, error)
}

// TextGenerator is the minimal client shape used by the generation proxy
// endpoint: a literal prompt in, raw text out. It is deliberately independent
// of ModelClient; the two entry points use different client shapes and model
// identifiers.
type TextGenerator interface {
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}
