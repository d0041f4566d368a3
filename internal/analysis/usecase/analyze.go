package usecase

import (
	"context"
	"time"

	"smart-task-analyzer/internal/analysis"
	"smart-task-analyzer/internal/analysis/schema"
	"smart-task-analyzer/pkg/llmprovider"
)

// Analyze turns free text into a validated TaskAnalysis with exactly one
// collaborator call and no retries.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if input.Text == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrEmptyText
	}
	if uc.llm == nil {
		analysesTotal.WithLabelValues(outcomeMisconfigured).Inc()
		uc.l.Error(ctx, "analysis.usecase.Analyze: no collaborator credential configured")
		return analysis.AnalyzeOutput{}, analysis.ErrMisconfigured
	}

	uc.l.Infof(ctx, "analysis.usecase.Analyze: provider=%s input_length=%d", uc.llm.Name(), len(input.Text))

	// Step 1: collaborator call
	text, err := uc.generate(ctx, input.Text)
	if err != nil {
		analysesTotal.WithLabelValues(outcomeGateway).Inc()
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: collaborator call failed: %v", err)
		return analysis.AnalyzeOutput{}, &analysis.GatewayError{Kind: analysis.ErrCollaborator, Err: err}
	}
	uc.l.Debugf(ctx, "analysis.usecase.Analyze: raw collaborator output: %s", text)

	// Step 2: generic JSON decode
	raw, err := schema.Decode(text)
	if err != nil {
		analysesTotal.WithLabelValues(outcomeInvalidJSON).Inc()
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: invalid JSON from model: %v raw=%q", err, text)
		return analysis.AnalyzeOutput{}, &analysis.GatewayError{Kind: analysis.ErrInvalidJSON, Err: err}
	}

	// Step 3: defaults, then strict schema
	result, err := schema.Validate(schema.ApplyDefaults(raw))
	if err != nil {
		analysesTotal.WithLabelValues(outcomeSchema).Inc()
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	// Step 4: due_date semantics
	if result.DueDate != nil {
		if _, err := schema.ParseDateTime(*result.DueDate); err != nil {
			analysesTotal.WithLabelValues(outcomeDueDate).Inc()
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: %v", err)
			return analysis.AnalyzeOutput{}, &analysis.DueDateError{Value: *result.DueDate, Err: err}
		}
	}

	analysesTotal.WithLabelValues(outcomeSuccess).Inc()
	return analysis.AnalyzeOutput{Analysis: result}, nil
}

// generate issues the single collaborator call and returns its text output.
func (uc *implUseCase) generate(ctx context.Context, text string) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: buildSystemPrompt(uc.now().In(uc.location)),
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Text: text},
		},
		Temperature: uc.temperature,
	}

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, req)
	collaboratorDuration.WithLabelValues(uc.llm.Name(), uc.llm.Model()).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	if resp.Usage != nil {
		uc.l.Debugf(ctx, "analysis.usecase.Analyze: tokens in=%d out=%d", resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	return resp.Text, nil
}
