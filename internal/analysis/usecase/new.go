package usecase

import (
	"time"

	"smart-task-analyzer/internal/analysis"
	"smart-task-analyzer/pkg/llmprovider"
	pkgLog "smart-task-analyzer/pkg/log"
)

// Config tunes the collaborator request. Zero values are valid.
type Config struct {
	Temperature float64
	Location    *time.Location
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l           pkgLog.Logger
	llm         llmprovider.Provider
	temperature float64
	location    *time.Location
	now         func() time.Time
}

// New creates a new analysis UseCase. A nil llm means no credential is
// configured: every Analyze call then fails with analysis.ErrMisconfigured
// without any outbound call.
func New(l pkgLog.Logger, llm llmprovider.Provider, cfg Config) analysis.UseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		temperature: cfg.Temperature,
		location:    loc,
		now:         now,
	}
}
