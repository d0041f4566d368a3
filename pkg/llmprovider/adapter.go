package llmprovider

import (
	"context"
	"fmt"

	"smart-task-analyzer/pkg/openai"
)

// API flavours an OpenAIAdapter can speak.
const (
	APIResponses       = "responses"
	APIChatCompletions = "chat_completions"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
	api    string
}

// NewOpenAIAdapter creates a new adapter. api selects between the Responses
// API and chat/completions.
func NewOpenAIAdapter(client openai.IOpenAI, name, api string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name, api: api}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: a.name, Err: ErrInvalidRequest}
	}

	oReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	var (
		resp *openai.Response
		err  error
	)
	switch a.api {
	case APIChatCompletions:
		resp, err = a.client.CreateChatCompletion(ctx, oReq)
	case APIResponses:
		resp, err = a.client.CreateResponse(ctx, oReq)
	default:
		err = fmt.Errorf("unsupported api %q", a.api)
	}
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Text:         resp.OutputText,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// convertToOpenAIMessages puts the system instruction first, as a
// role-tagged message, followed by the conversation.
func convertToOpenAIMessages(req *Request) []openai.Message {
	msgs := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, openai.Message{Role: openai.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" {
			role = openai.RoleUser
		}
		msgs = append(msgs, openai.Message{Role: role, Content: m.Text})
	}
	return msgs
}
