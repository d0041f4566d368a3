package llmprovider

import (
	"fmt"
	"net/http"
	"strings"

	"smart-task-analyzer/config"
	"smart-task-analyzer/pkg/openai"
)

// Supported provider names.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderAlibaba  = "alibaba" // alias of ProviderQwen
)

const (
	deepSeekBaseURL = "https://api.deepseek.com/v1"
	deepSeekModel   = "deepseek-chat"
	qwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	qwenModel       = "qwen-plus"
)

// NewProvider creates the single Provider described by cfg.
// Returns openai.ErrMissingAPIKey when no API key is configured.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" {
		name = ProviderOpenAI
	}

	oCfg := openai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	}
	if cfg.Timeout > 0 {
		oCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	api := APIChatCompletions
	switch name {
	case ProviderOpenAI:
		api = APIResponses
	case ProviderDeepSeek:
		oCfg.BaseURL = orDefault(oCfg.BaseURL, deepSeekBaseURL)
		oCfg.Model = orDefault(oCfg.Model, deepSeekModel)
	case ProviderQwen, ProviderAlibaba:
		name = ProviderQwen
		oCfg.BaseURL = orDefault(oCfg.BaseURL, qwenBaseURL)
		oCfg.Model = orDefault(oCfg.Model, qwenModel)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}

	client, err := openai.New(oCfg)
	if err != nil {
		return nil, err
	}
	return NewOpenAIAdapter(client, name, api), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
