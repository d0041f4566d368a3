package analysis

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze extracts a TaskAnalysis from free text with exactly one
	// collaborator call.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
