package ai

import (
	"fmt"

	"wedding-planner-backend/pkg/claude"
	"wedding-planner-backend/pkg/config"
	"wedding-planner-backend/pkg/openai"
)

// NewCompleter creates a text-generation provider based on the config.
// Switch providers by changing AI_PROVIDER.
func NewCompleter(cfg *config.Config) (Completer, error) {
	switch ProviderType(cfg.AIProvider) {
	case ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the claude provider")
		}
		return claude.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil

	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil

	default:
		// Default to Claude if its key is configured, otherwise OpenAI.
		if cfg.AnthropicAPIKey != "" {
			return claude.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
		}
		if cfg.OpenAIAPIKey != "" {
			return openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
		}
		return nil, fmt.Errorf("no AI provider configured")
	}
}
