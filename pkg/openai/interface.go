package openai

import "context"

// IOpenAI is the client for OpenAI and OpenAI-compatible endpoints.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// CreateResponse calls POST /responses.
	CreateResponse(ctx context.Context, req *Request) (*Response, error)

	// CreateChatCompletion calls POST /chat/completions.
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
