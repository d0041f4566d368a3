package llmprovider_test

import (
	"errors"
	"testing"

	"smart-task-analyzer/config"
	"smart-task-analyzer/pkg/llmprovider"
	"smart-task-analyzer/pkg/openai"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LLMConfig
		wantName  string
		wantModel string
		wantErr   error
	}{
		{
			name:      "Default is OpenAI",
			cfg:       config.LLMConfig{APIKey: "k"},
			wantName:  "openai",
			wantModel: openai.DefaultModel,
		},
		{
			name:      "DeepSeek defaults",
			cfg:       config.LLMConfig{Provider: "DeepSeek", APIKey: "k"},
			wantName:  "deepseek",
			wantModel: "deepseek-chat",
		},
		{
			name:      "Qwen explicit model",
			cfg:       config.LLMConfig{Provider: "qwen", APIKey: "k", Model: "qwen-max"},
			wantName:  "qwen",
			wantModel: "qwen-max",
		},
		{
			name:      "Alibaba is an alias of Qwen",
			cfg:       config.LLMConfig{Provider: "alibaba", APIKey: "k"},
			wantName:  "qwen",
			wantModel: "qwen-plus",
		},
		{
			name:    "Missing key",
			cfg:     config.LLMConfig{Provider: "openai"},
			wantErr: openai.ErrMissingAPIKey,
		},
		{
			name:    "Unknown provider",
			cfg:     config.LLMConfig{Provider: "llama", APIKey: "k"},
			wantErr: llmprovider.ErrUnknownProvider,
		},
		{
			name:    "Generic compatible name is not a provider",
			cfg:     config.LLMConfig{Provider: "openai-compatible", APIKey: "k"},
			wantErr: llmprovider.ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := llmprovider.NewProvider(tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name() != tt.wantName || p.Model() != tt.wantModel {
				t.Errorf("got %s/%s, want %s/%s", p.Name(), p.Model(), tt.wantName, tt.wantModel)
			}
		})
	}
}
