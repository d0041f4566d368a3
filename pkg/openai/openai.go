package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// CreateResponse sends the messages to the Responses API and returns the
// aggregated output_text.
func (o *openAIImpl) CreateResponse(ctx context.Context, req *Request) (*Response, error) {
	body := responsesRequest{
		Model:           o.model,
		Input:           make([]responsesInput, len(req.Messages)),
		Temperature:     temperature(req.Temperature),
		MaxOutputTokens: req.MaxTokens,
	}
	for i, m := range req.Messages {
		body.Input[i] = responsesInput{Role: m.Role, Content: m.Content}
	}

	var out responsesResponse
	if err := o.post(ctx, "/responses", body, &out); err != nil {
		return nil, err
	}

	return &Response{
		ID:         out.ID,
		OutputText: outputText(out.Output),
		Usage: Usage{
			InputTokens:  out.Usage.InputTokens,
			OutputTokens: out.Usage.OutputTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

// CreateChatCompletion sends the messages to /chat/completions. Used for
// OpenAI-compatible providers (DeepSeek, Qwen) that lack the Responses API.
func (o *openAIImpl) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	body := chatRequest{
		Model:       o.model,
		Messages:    make([]chatMessage, len(req.Messages)),
		Temperature: temperature(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	for i, m := range req.Messages {
		body.Messages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	var out chatResponse
	if err := o.post(ctx, "/chat/completions", body, &out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("openai: response has no choices")
	}

	return &Response{
		ID:         out.ID,
		OutputText: out.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

func (o *openAIImpl) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("openai: failed to decode response: %w", err)
	}
	return nil
}

func parseAPIError(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}

	var errResp errorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
		apiErr.Type = errResp.Error.Type
		if errResp.Error.Code != nil {
			apiErr.Code = fmt.Sprint(errResp.Error.Code)
		}
	}
	return apiErr
}

// outputText concatenates every output_text part of every assistant message,
// mirroring the SDK's response.output_text convenience property.
func outputText(outputs []responsesOutput) string {
	var sb strings.Builder
	for _, item := range outputs {
		if item.Type != outputTypeMessage {
			continue
		}
		for _, c := range item.Content {
			if c.Type == contentTypeText {
				sb.WriteString(c.Text)
			}
		}
	}
	return sb.String()
}

// temperature leaves the field out when unset so the model default applies.
func temperature(t float64) *float64 {
	if t <= 0 {
		return nil
	}
	return &t
}
