// Package llm provides the gateway to the configured text-completion
// provider. Provider failures never surface to callers: the gateway logs the
// failure and returns the safe empty value for the caller's expected shape.
package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/config"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// completionModel is the slice of the LangchainGo client surface the gateway
// uses; both the openai and ollama clients satisfy it.
type completionModel interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// Gateway implements domain.TextGenerator on top of one of the two supported
// providers, selected by configuration.
type Gateway struct {
	model     completionModel
	provider  string
	modelName string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger
}

// NewGateway builds a Gateway for the configured provider. An unknown
// provider name is a hard configuration error.
func NewGateway(cfg config.LLMConfig, logger *zap.Logger) (*Gateway, error) {
	var model completionModel

	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, domain.NewInvalidInputError("openai API key cannot be empty")
		}
		client, err := openai.New(
			openai.WithToken(cfg.OpenAI.APIKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, domain.NewInternalError("failed to create OpenAI client", err)
		}
		model = client
	case "ollama":
		if cfg.Ollama.ServerURL == "" {
			return nil, domain.NewInvalidInputError("ollama server URL cannot be empty")
		}
		httpClient := &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     10 * time.Second,
			},
		}
		client, err := ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, domain.NewInternalError("failed to create Ollama client", err)
		}
		model = client
	default:
		return nil, domain.NewUnsupportedProviderError(cfg.Provider)
	}

	logger.Info("Initialized LLM gateway",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.Int("max_tokens", cfg.MaxTokens))

	return &Gateway{
		model:     model,
		provider:  cfg.Provider,
		modelName: cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		logger:    logger,
	}, nil
}

// Complete returns the raw completion text, or "" on any provider failure.
func (g *Gateway) Complete(ctx context.Context, prompt string) string {
	return g.call(ctx, prompt, "")
}

// CompleteArray is Complete for array-shaped responses; it returns "[]" on
// any provider failure so downstream decoding yields an empty list.
func (g *Gateway) CompleteArray(ctx context.Context, prompt string) string {
	return g.call(ctx, prompt, "[]")
}

func (g *Gateway) call(ctx context.Context, prompt, fallback string) string {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.Info("Calling LLM provider",
		zap.String("provider", g.provider),
		zap.String("model", g.modelName),
		zap.Int("prompt_chars", len(prompt)))

	opts := []llms.CallOption{llms.WithTemperature(0.7)}
	if g.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(g.maxTokens))
	}

	response, err := g.model.Call(callCtx, prompt, opts...)
	if err != nil {
		g.logger.Warn("LLM call failed, returning empty result",
			zap.String("provider", g.provider),
			zap.String("model", g.modelName),
			zap.Error(err))
		return fallback
	}
	return strings.TrimSpace(response)
}

var _ domain.TextGenerator = (*Gateway)(nil)
