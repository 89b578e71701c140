package imagegen

import (
	"context"

	"github.com/krishkalaria12/chrono-snap/config"
)

// New builds the editor for the configured provider. It returns a nil
// Editor without error when the provider credential is missing.
func New(ctx context.Context, cfg config.ImageConfig) (Editor, error) {
	if cfg.APIKey() == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		e, err := NewGeminiEditor(ctx, cfg.GeminiKey, cfg.GeminiBaseURL, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return e, nil
	case config.ProviderOpenAI:
		return NewOpenAIEditor(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	default:
		return nil, config.ErrUnknownProvider
	}
}
